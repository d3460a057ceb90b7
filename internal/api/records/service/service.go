package recordsService

import (
	recordsRepository "HealthcareGolang/internal/api/records/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/entity"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IRecordsService interface {
	AddHistoryEntry(ctx context.Context, identifier string, entry entity.MedicalHistoryEntry) (entity.MedicalHistory, error)
	GetHistory(ctx context.Context, identifier string) (entity.MedicalHistory, error)
	AddMedication(ctx context.Context, identifier string, med entity.Medication) (entity.MedicationList, error)
	GetMedications(ctx context.Context, identifier string) (entity.MedicationList, error)
}

// recordsService keeps both document collections in memory behind one mutex
// and rewrites the backing file on every mutation, the same discipline as the
// appointment store.
type recordsService struct {
	log               *logrus.Logger
	recordsRepository recordsRepository.Repository
	reminderService   reminderService.IReminderService
	now               func() time.Time

	mu          sync.Mutex
	histories   []entity.MedicalHistory
	medications []entity.MedicationList
}

func New(
	log *logrus.Logger,
	rr recordsRepository.Repository,
	rs reminderService.IReminderService,
) (IRecordsService, error) {
	return NewWithClock(log, rr, rs, time.Now)
}

func NewWithClock(
	log *logrus.Logger,
	rr recordsRepository.Repository,
	rs reminderService.IReminderService,
	now func() time.Time,
) (IRecordsService, error) {
	histories, err := rr.LoadHistories(context.Background())
	if err != nil {
		return nil, err
	}
	medications, err := rr.LoadMedications(context.Background())
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"histories":   len(histories),
		"medications": len(medications),
	}).Info("Medical records loaded")

	return &recordsService{
		log:               log,
		recordsRepository: rr,
		reminderService:   rs,
		now:               now,
		histories:         histories,
		medications:       medications,
	}, nil
}
