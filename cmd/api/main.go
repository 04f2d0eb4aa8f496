package main

import (
	"fmt"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	appHTTP "github.com/crewpay/crewpay-backend-go/internal/handler/http"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/sheets"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/crewpay/crewpay-backend-go/internal/service/attendance"
	payrollService "github.com/crewpay/crewpay-backend-go/internal/service/payroll"
	syncService "github.com/crewpay/crewpay-backend-go/internal/service/sync"
	workerService "github.com/crewpay/crewpay-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)

	calculator := payrollService.NewCalculator()

	// Sheet sync is optional; without an endpoint URL the sync routes
	// answer with a configuration error.
	var sheetClient *sheets.Client
	if cfg.Sheet.URL != "" {
		sheetClient = sheets.NewClient(cfg.Sheet.URL, cfg.Sheet.Timeout)
	}

	workerSvc := workerService.NewWorkerService(workerRepo, cfg.Defaults)
	entrySvc := attendanceService.NewEntryService(entryRepo, workerRepo, calculator, cfg.Defaults)
	payrollSvc := payrollService.NewPayrollService(db, workerRepo, entryRepo, calculator)
	syncSvc := syncService.NewSyncService(sheetClient, entryRepo)

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	entryHandler := appHTTP.NewEntryHandler(entrySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	syncHandler := appHTTP.NewSyncHandler(syncSvc)

	router := appHTTP.NewRouter(
		workerHandler,
		entryHandler,
		payrollHandler,
		syncHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
