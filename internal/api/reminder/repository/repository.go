package reminderRepository

import (
	"HealthcareGolang/internal/entity"
	"time"

	"golang.org/x/net/context"
)

// Repository is the pending-reminder set. Due returns every reminder whose
// due time is at or before now; the scheduler removes reminders after firing
// them once.
type Repository interface {
	Add(ctx context.Context, rem entity.Reminder) error
	Due(ctx context.Context, now time.Time) ([]entity.Reminder, error)
	Remove(ctx context.Context, rem entity.Reminder) error
}
