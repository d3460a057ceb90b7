package recordsRepository

import (
	"HealthcareGolang/internal/entity"

	"golang.org/x/net/context"
)

// Repository persists medical histories and medication lists as two whole
// documents, mirroring the appointment store's rewrite-on-mutation contract.
type Repository interface {
	LoadHistories(ctx context.Context) ([]entity.MedicalHistory, error)
	SaveHistories(ctx context.Context, histories []entity.MedicalHistory) error
	LoadMedications(ctx context.Context) ([]entity.MedicationList, error)
	SaveMedications(ctx context.Context, medications []entity.MedicationList) error
}
