package reminderService

import (
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	"HealthcareGolang/internal/entity"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Notifier delivers one fired reminder. Delivery is fire-and-forget: the
// scheduler removes the reminder whether or not delivery succeeded.
type Notifier interface {
	Notify(ctx context.Context, rem entity.Reminder) error
}

type logNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(_ context.Context, rem entity.Reminder) error {
	n.log.WithFields(logrus.Fields{
		"type":       rem.Type,
		"identifier": rem.Identifier,
		"due_at":     rem.DueAt.Format(time.RFC3339),
	}).Info("REMINDER: " + rem.Details)
	return nil
}

type Scheduler struct {
	log      *logrus.Logger
	repo     reminderRepository.Repository
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
}

func NewScheduler(log *logrus.Logger, repo reminderRepository.Repository, notifier Notifier) *Scheduler {
	return &Scheduler{
		log:      log,
		repo:     repo,
		notifier: notifier,
		interval: time.Minute,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

func NewSchedulerWithClock(log *logrus.Logger, repo reminderRepository.Repository, notifier Notifier, interval time.Duration, now func() time.Time) *Scheduler {
	return &Scheduler{
		log:      log,
		repo:     repo,
		notifier: notifier,
		interval: interval,
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Start runs the check loop on its own goroutine until Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

// RunOnce fires every due reminder exactly once and removes it. There is no
// retry for failed deliveries. It returns the number of reminders fired.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	due, err := s.repo.Due(ctx, s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to read due reminders")
		return 0
	}

	fired := 0
	for _, rem := range due {
		if err := s.notifier.Notify(ctx, rem); err != nil {
			s.log.WithFields(logrus.Fields{
				"type":       rem.Type,
				"identifier": rem.Identifier,
				"error":      err.Error(),
			}).Warn("Reminder delivery failed")
		}

		if err := s.repo.Remove(ctx, rem); err != nil {
			s.log.WithFields(logrus.Fields{
				"type":  rem.Type,
				"error": err.Error(),
			}).Error("Failed to remove fired reminder")
			continue
		}
		fired++
	}

	return fired
}
