package reminderService

import (
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	"HealthcareGolang/internal/entity"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReminderService interface {
	Set(ctx context.Context, rem entity.Reminder) error
	SetAppointmentReminder(ctx context.Context, rec entity.AppointmentRecord) error
	SetMedicationReminder(ctx context.Context, identifier string, med entity.Medication) error
}

type reminderService struct {
	log                *logrus.Logger
	reminderRepository reminderRepository.Repository
	now                func() time.Time
}

func New(log *logrus.Logger, rr reminderRepository.Repository) IReminderService {
	return NewWithClock(log, rr, time.Now)
}

func NewWithClock(log *logrus.Logger, rr reminderRepository.Repository, now func() time.Time) IReminderService {
	return &reminderService{
		log:                log,
		reminderRepository: rr,
		now:                now,
	}
}
