package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
)

// TimeclockJobs wires the periodic sweeps to the scheduler. The jobs are
// orchestration only: the decision logic (which records qualify, whether the
// payroll cutoff has passed) lives in the services.
type TimeclockJobs struct {
	assignmentSvc assignment.AssignmentService
	exceptionSvc  timeexception.ExceptionService

	sweepInterval time.Duration
	expiryWarning time.Duration
}

func NewTimeclockJobs(
	assignmentSvc assignment.AssignmentService,
	exceptionSvc timeexception.ExceptionService,
	sweepInterval time.Duration,
	expiryWarning time.Duration,
) *TimeclockJobs {
	if sweepInterval <= 0 {
		sweepInterval = 24 * time.Hour
	}
	if expiryWarning <= 0 {
		expiryWarning = 7 * 24 * time.Hour
	}
	return &TimeclockJobs{
		assignmentSvc: assignmentSvc,
		exceptionSvc:  exceptionSvc,
		sweepInterval: sweepInterval,
		expiryWarning: expiryWarning,
	}
}

func (j *TimeclockJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_lapsed_assignments", j.sweepInterval, j.ExpireLapsedAssignments)
	scheduler.AddJob("escalate_stalled_exceptions", j.sweepInterval, j.EscalateStalledExceptions)
	scheduler.AddJob("warn_expiring_assignments", j.sweepInterval, j.WarnExpiringAssignments)
}

// ExpireLapsedAssignments transitions APPROVED assignments whose end date
// has passed to EXPIRED.
func (j *TimeclockJobs) ExpireLapsedAssignments(ctx context.Context) error {
	report, err := j.assignmentSvc.ExpireAssignments(ctx)
	if err != nil {
		return err
	}
	if report.Eligible > 0 {
		slog.Info("Sweep: expired lapsed assignments",
			"expired", report.Transitioned,
			"eligible", report.Eligible)
	}
	return nil
}

// EscalateStalledExceptions escalates PENDING exceptions once the payroll
// cutoff for the current month has passed. Before the cutoff it is a no-op.
func (j *TimeclockJobs) EscalateStalledExceptions(ctx context.Context) error {
	report, err := j.exceptionSvc.EscalateStalled(ctx, time.Now())
	if err != nil {
		return err
	}
	if report.Eligible > 0 {
		slog.Info("Sweep: escalated stalled exceptions",
			"escalated", report.Escalated,
			"eligible", report.Eligible)
	}
	return nil
}

// WarnExpiringAssignments emits advance-warning notifications for APPROVED
// assignments ending within the look-ahead window. No state transition.
func (j *TimeclockJobs) WarnExpiringAssignments(ctx context.Context) error {
	report, err := j.assignmentSvc.NotifyExpiringSoon(ctx, j.expiryWarning)
	if err != nil {
		return err
	}
	if report.Eligible > 0 {
		slog.Info("Sweep: warned about expiring assignments", "notified", report.Transitioned)
	}
	return nil
}
