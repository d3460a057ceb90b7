package reminderRepository

import (
	"HealthcareGolang/internal/entity"
	"sync"
	"time"

	"golang.org/x/net/context"
)

type memoryRepository struct {
	mu      sync.Mutex
	pending []entity.Reminder
}

// NewMemoryRepository is the default driver. Pending reminders are lost on
// restart; use the redis driver when that matters.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Add(_ context.Context, rem entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, rem)
	return nil
}

func (r *memoryRepository) Due(_ context.Context, now time.Time) ([]entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []entity.Reminder
	for _, rem := range r.pending {
		if rem.Due(now) {
			due = append(due, rem)
		}
	}
	return due, nil
}

func (r *memoryRepository) Remove(_ context.Context, rem entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.pending {
		if p == rem {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return nil
		}
	}
	return nil
}
