package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwise-hr/timeclock-backend-go/internal/handler/http"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/cron"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/timeclock-backend-go/internal/repository/postgresql"
	assignmentService "github.com/clockwise-hr/timeclock-backend-go/internal/service/assignment"
	attendanceService "github.com/clockwise-hr/timeclock-backend-go/internal/service/attendance"
	notificationService "github.com/clockwise-hr/timeclock-backend-go/internal/service/notification"
	payrollInputService "github.com/clockwise-hr/timeclock-backend-go/internal/service/payrollinput"
	shiftService "github.com/clockwise-hr/timeclock-backend-go/internal/service/shift"
	exceptionService "github.com/clockwise-hr/timeclock-backend-go/internal/service/timeexception"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	latenessRuleRepo := postgresql.NewLatenessRuleRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	notificationSvc := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	exceptionSvc := exceptionService.NewExceptionService(exceptionRepo, notificationSvc, cfg.Sweep.PayrollCutoffDay)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		latenessRuleRepo,
		assignmentRepo,
		shiftRepo,
		exceptionSvc,
	)
	assignmentSvc := assignmentService.NewAssignmentService(
		assignmentRepo,
		employeeRepo,
		shiftRepo,
		notificationSvc,
	)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	payrollInputSvc := payrollInputService.NewPayrollInputService(attendanceRepo, exceptionRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	exceptionHandler := appHTTP.NewExceptionHandler(exceptionSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	payrollInputHandler := appHTTP.NewPayrollInputHandler(payrollInputSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		attendanceHandler,
		exceptionHandler,
		assignmentHandler,
		shiftHandler,
		notificationHandler,
		payrollInputHandler,
	)

	scheduler := cron.NewScheduler()
	jobs := cron.NewTimeclockJobs(assignmentSvc, exceptionSvc, cfg.Sweep.Interval, cfg.Sweep.ExpiryWarning)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	scheduler.Stop()
	notificationSvc.Stop()
	slog.Info("Shutdown complete")
}
