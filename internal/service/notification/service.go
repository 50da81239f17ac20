package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

// Config holds notification service configuration
type Config struct {
	WorkerCount  int           // default: 2
	QueueSize    int           // default: 1000
	WriteTimeout time.Duration // default: 10 seconds
}

type service struct {
	repo   notification.Repository
	config Config

	queue    chan notification.Notification
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewNotificationService creates a sink writer with background workers.
// Writes are best-effort: failures are logged and never propagate, because
// the mutation that triggered the notification has already been persisted.
func NewNotificationService(repo notification.Repository, cfg Config) notification.Service {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	s := &service{
		repo:   repo,
		config: cfg,
		queue:  make(chan notification.Notification, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	slog.Info("Notification service started",
		"workers", cfg.WorkerCount,
		"queue_size", cfg.QueueSize)

	return s
}

func (s *service) worker() {
	defer s.wg.Done()

	for {
		select {
		case n := <-s.queue:
			s.append(n)
		case <-s.stopCh:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case n := <-s.queue:
					s.append(n)
				default:
					return
				}
			}
		}
	}
}

func (s *service) append(n notification.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
	defer cancel()

	if err := s.repo.Append(ctx, n); err != nil {
		slog.Error("Failed to append notification",
			"employee_id", n.EmployeeID,
			"type", n.Type,
			"error", err)
	}
}

// Notify queues a sink entry for async write. When the queue is full the
// entry is written synchronously instead of being dropped.
func (s *service) Notify(_ context.Context, employeeID string, t notification.NotificationType, message string) {
	n := notification.Notification{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       t,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	select {
	case s.queue <- n:
	default:
		s.append(n)
	}
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByEmployee(ctx, employeeID, limit)
}

// Stop flushes the queue and stops the workers.
func (s *service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		slog.Info("Notification service stopped")
	})
}
