package appointmentService

import (
	"HealthcareGolang/internal/api/appointment"
	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/utils"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAppointmentService interface {
	Book(ctx context.Context, req appointment.BookAppointmentRequest, doctor entity.Doctor) (entity.AppointmentRecord, error)
	BookRecord(ctx context.Context, rec entity.AppointmentRecord) error
	Lookup(ctx context.Context, email, phone string) []entity.AppointmentRecord
	Cancel(ctx context.Context, email, phone string, index int) (entity.AppointmentRecord, []entity.AppointmentRecord, error)
	RemoveRecord(ctx context.Context, rec entity.AppointmentRecord) error
	AttachMedicalHistory(ctx context.Context, req appointment.UploadMedicalHistoryRequest) (entity.AppointmentRecord, []entity.AppointmentRecord, error)
	MedicalHistoryFilePath(fileName string) (string, error)
	ByDoctor(ctx context.Context, doctorID, doctorName string) []entity.AppointmentRecord
	AvailableSlots(ctx context.Context) map[string][]string
	AvailableDates() []string
	AvailableTimes(date string) []string
}

// appointmentService owns the appointment list and the slot calendar. One
// mutex guards both, so a slot can never be consumed without its record
// landing in the list in the same critical section.
type appointmentService struct {
	log                   *logrus.Logger
	appointmentRepository appointmentRepository.Repository
	reminderService       reminderService.IReminderService
	utils                 utils.IUtils

	mu      sync.Mutex
	records []entity.AppointmentRecord
	slots   entity.SlotCalendar
}

func New(
	log *logrus.Logger,
	ar appointmentRepository.Repository,
	rs reminderService.IReminderService,
	utils utils.IUtils,
) (IAppointmentService, error) {
	return NewWithClock(log, ar, rs, utils, time.Now)
}

func NewWithClock(
	log *logrus.Logger,
	ar appointmentRepository.Repository,
	rs reminderService.IReminderService,
	utils utils.IUtils,
	now func() time.Time,
) (IAppointmentService, error) {
	records, err := ar.Load(context.Background())
	if err != nil {
		return nil, err
	}

	svc := &appointmentService{
		log:                   log,
		appointmentRepository: ar,
		reminderService:       rs,
		utils:                 utils,
		records:               records,
		slots:                 entity.NewSlotCalendar(now()),
	}

	// Slots already taken by persisted bookings stay unavailable after a
	// restart.
	for _, rec := range records {
		svc.slots.Consume(rec.AppointmentDate, rec.AppointmentTime)
	}

	log.WithFields(logrus.Fields{
		"records": len(records),
	}).Info("Appointment store loaded")

	return svc, nil
}
