package http

import (
	"net/http"
	"strconv"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payroll"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyAll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Monthly implements PayrollHandler. Returns one worker's summary for
// the requested month.
func (h *payrollHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := payroll.MonthlySummaryRequest{
		WorkerID: r.URL.Query().Get("worker_id"),
		Month:    parseIntParam(r, "month"),
		Year:     parseIntParam(r, "year"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyAll implements PayrollHandler. Returns summaries for every
// active worker in the requested month.
func (h *payrollHandlerImpl) MonthlyAll(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodRequest{
		Month: parseIntParam(r, "month"),
		Year:  parseIntParam(r, "year"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.AllMonthlySummaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func parseIntParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
