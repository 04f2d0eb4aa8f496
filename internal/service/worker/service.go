package worker

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/google/uuid"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
	defaults   config.DefaultsConfig
}

func NewWorkerService(workerRepo worker.WorkerRepository, defaults config.DefaultsConfig) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		defaults:   defaults,
	}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	baseHours := s.defaults.BaseHours
	if req.BaseHours != nil {
		baseHours = *req.BaseHours
	}

	status := worker.StatusActive
	if req.Status != nil {
		status = worker.Status(*req.Status)
	}

	newWorker := worker.Worker{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Trade:         req.Trade,
		BaseHours:     baseHours,
		MonthlySalary: req.MonthlySalary,
		Status:        status,
	}

	created, err := s.workerRepo.Create(ctx, newWorker)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var status *worker.Status
	if filter.Status != nil {
		st := worker.Status(*filter.Status)
		status = &st
	}

	workers, err := s.workerRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapToWorkerResponse(w))
	}

	return result, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	current, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Trade != nil {
		current.Trade = req.Trade
	}
	if req.BaseHours != nil {
		current.BaseHours = *req.BaseHours
	}
	if req.MonthlySalary != nil {
		current.MonthlySalary = *req.MonthlySalary
	}
	if req.Status != nil {
		current.Status = worker.Status(*req.Status)
	}

	if err := s.workerRepo.Update(ctx, current); err != nil {
		return worker.WorkerResponse{}, err
	}

	current.UpdatedAt = time.Now()
	return mapToWorkerResponse(current), nil
}

// Delete removes the worker; past attendance entries are preserved.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}

func mapToWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		Trade:         w.Trade,
		BaseHours:     w.BaseHours,
		MonthlySalary: w.MonthlySalary,
		DailyRate:     w.DailyRate().Round(2),
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     w.UpdatedAt.Format(time.RFC3339),
	}
}
