package reminderService

import (
	"HealthcareGolang/internal/api/reminder"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *reminderService) Set(ctx context.Context, rem entity.Reminder) error {
	requestID := contextPkg.GetRequestID(ctx)

	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = s.now()
	}

	if err := s.reminderRepository.Add(ctx, rem); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       rem.Type,
			"error":      err.Error(),
		}).Error("Failed to store reminder")
		return reminder.ErrPersistReminder
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"type":       rem.Type,
		"due_at":     rem.DueAt.Format(time.RFC3339),
	}).Debug("Reminder stored")

	return nil
}

// SetAppointmentReminder schedules a notification one day before the
// appointment date. Unparseable dates are skipped; a missing reminder never
// blocks a booking.
func (s *reminderService) SetAppointmentReminder(ctx context.Context, rec entity.AppointmentRecord) error {
	date, err := time.Parse("2006-01-02", rec.AppointmentDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"date":       rec.AppointmentDate,
		}).Warn("Skipping appointment reminder with unparseable date")
		return nil
	}

	return s.Set(ctx, entity.Reminder{
		Type:       entity.ReminderAppointment,
		Identifier: rec.Email,
		DueAt:      date.AddDate(0, 0, -1),
		Details: fmt.Sprintf("Appointment with %s on %s at %s",
			rec.Doctor, rec.AppointmentDate, rec.AppointmentTime),
		CreatedAt: s.now(),
	})
}

// SetMedicationReminder fires for recurring intake schedules. Frequencies
// containing "daily" or "once" get a reminder due the next day; anything else
// is left to the patient.
func (s *reminderService) SetMedicationReminder(ctx context.Context, identifier string, med entity.Medication) error {
	freq := strings.ToLower(med.Frequency)
	if !strings.Contains(freq, "daily") && !strings.Contains(freq, "once") {
		return nil
	}

	details := "Take " + med.Name
	if med.Dosage != "" {
		details += " " + med.Dosage
	}

	return s.Set(ctx, entity.Reminder{
		Type:       entity.ReminderMedication,
		Identifier: identifier,
		DueAt:      s.now().AddDate(0, 0, 1),
		Details:    details,
		CreatedAt:  s.now(),
	})
}
