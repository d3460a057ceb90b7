package appointmentRepository

import (
	"HealthcareGolang/internal/entity"

	"golang.org/x/net/context"
)

// Repository persists the whole appointment list as one document. Every
// mutation rewrites the full list; Load is only called once at startup to
// hydrate the in-memory store.
type Repository interface {
	Load(ctx context.Context) ([]entity.AppointmentRecord, error)
	Save(ctx context.Context, records []entity.AppointmentRecord) error
}
