package appointmentService

import (
	"HealthcareGolang/internal/api/appointment"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func medicalHistoryDir() string {
	if dir := os.Getenv("MEDICAL_HISTORY_DIR"); dir != "" {
		return dir
	}
	return "./storage/medical_history_files"
}

// Book is the direct (non-conversational) booking path. The doctor is already
// resolved by the caller; the record snapshots its display string and id.
func (s *appointmentService) Book(ctx context.Context, req appointment.BookAppointmentRequest, doctor entity.Doctor) (entity.AppointmentRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)

	rec := entity.AppointmentRecord{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		Gender:          req.Gender,
		Reason:          req.Reason,
		Doctor:          doctor.Display(),
		DoctorID:        doctor.ID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
	}

	if req.MedicalHistoryFile != nil {
		stored, err := s.utils.SaveBase64File(medicalHistoryDir(), req.MedicalHistoryFile.FileName, req.MedicalHistoryFile.FileContent)
		if err != nil {
			// The booking goes through without the attachment.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to store medical history file")
		} else {
			rec.MedicalHistoryFile = stored
		}
	}

	if err := s.BookRecord(ctx, rec); err != nil {
		return entity.AppointmentRecord{}, err
	}

	return rec, nil
}

// BookRecord consumes the slot, appends the record and persists, all under the
// store mutex. When persisting fails both the append and the slot consumption
// are rolled back. A date outside the rolling window is accepted as-is; slot
// exclusivity only applies inside the window.
func (s *appointmentService) BookRecord(ctx context.Context, rec entity.AppointmentRecord) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := rec.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejecting incomplete appointment record")
		return appointment.ErrInvalidAppointment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	consumed := false
	if s.slots.Contains(rec.AppointmentDate) {
		if !s.slots.Consume(rec.AppointmentDate, rec.AppointmentTime) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       rec.AppointmentDate,
				"time":       rec.AppointmentTime,
			}).Warn("Slot already taken")
			return appointment.ErrSlotNotAvailable
		}
		consumed = true
	}

	s.records = append(s.records, rec)

	if err := s.appointmentRepository.Save(ctx, s.records); err != nil {
		s.records = s.records[:len(s.records)-1]
		if consumed {
			s.slots.Release(rec.AppointmentDate, rec.AppointmentTime)
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist appointments, booking rolled back")
		return appointment.ErrPersistAppointments
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"doctor":     rec.Doctor,
		"date":       rec.AppointmentDate,
		"time":       rec.AppointmentTime,
	}).Info("Appointment booked")

	if err := s.reminderService.SetAppointmentReminder(ctx, rec); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to schedule appointment reminder")
	}

	return nil
}

func (s *appointmentService) Lookup(ctx context.Context, email, phone string) []entity.AppointmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []entity.AppointmentRecord
	for _, rec := range s.records {
		if rec.Matches(email, phone) {
			matches = append(matches, rec)
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"matches":    len(matches),
	}).Debug("Appointment lookup")

	return matches
}

// Cancel removes the appointment matching (email|phone). With several matches
// the caller must disambiguate with a 1-based index; index zero then returns
// ErrMultipleAppointments together with the candidate list.
func (s *appointmentService) Cancel(ctx context.Context, email, phone string, index int) (entity.AppointmentRecord, []entity.AppointmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []entity.AppointmentRecord
	for _, rec := range s.records {
		if rec.Matches(email, phone) {
			matches = append(matches, rec)
		}
	}

	switch {
	case len(matches) == 0:
		return entity.AppointmentRecord{}, nil, appointment.ErrAppointmentNotFound
	case len(matches) > 1 && index == 0:
		return entity.AppointmentRecord{}, matches, appointment.ErrMultipleAppointments
	}

	target := matches[0]
	if index != 0 {
		if index < 1 || index > len(matches) {
			return entity.AppointmentRecord{}, matches, appointment.ErrInvalidSelection
		}
		target = matches[index-1]
	}

	if err := s.removeLocked(ctx, target); err != nil {
		return entity.AppointmentRecord{}, nil, err
	}

	return target, nil, nil
}

// RemoveRecord deletes one exact record. The conversational cancel path uses
// it after the visitor picked from the candidate list.
func (s *appointmentService) RemoveRecord(ctx context.Context, rec entity.AppointmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, rec)
}

// removeLocked assumes the store mutex is held. Cancelling releases the slot
// back to the calendar when the date is still inside the window; on persist
// failure both list and calendar are restored.
func (s *appointmentService) removeLocked(ctx context.Context, rec entity.AppointmentRecord) error {
	requestID := contextPkg.GetRequestID(ctx)

	idx := -1
	for i, r := range s.records {
		if r == rec {
			idx = i
			break
		}
	}
	if idx == -1 {
		return appointment.ErrAppointmentNotFound
	}

	prevRecords := append([]entity.AppointmentRecord(nil), s.records...)
	prevSlots := s.slots.Clone()

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.slots.Release(rec.AppointmentDate, rec.AppointmentTime)

	if err := s.appointmentRepository.Save(ctx, s.records); err != nil {
		s.records = prevRecords
		s.slots = prevSlots
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist appointments, cancellation rolled back")
		return appointment.ErrPersistAppointments
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"doctor":     rec.Doctor,
		"date":       rec.AppointmentDate,
		"time":       rec.AppointmentTime,
	}).Info("Appointment cancelled")

	return nil
}

// AttachMedicalHistory stores an uploaded file and links it to an existing
// appointment. Disambiguation works like Cancel: with several matches the
// caller retries with a 1-based index, otherwise ErrMultipleAppointments
// carries the candidate list. A later upload replaces the stored reference.
func (s *appointmentService) AttachMedicalHistory(ctx context.Context, req appointment.UploadMedicalHistoryRequest) (entity.AppointmentRecord, []entity.AppointmentRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []int
	for i, rec := range s.records {
		if rec.Matches(req.Email, req.Phone) {
			matched = append(matched, i)
		}
	}

	switch {
	case len(matched) == 0:
		return entity.AppointmentRecord{}, nil, appointment.ErrAppointmentNotFound
	case len(matched) > 1 && req.Index == 0:
		return entity.AppointmentRecord{}, s.recordsAt(matched), appointment.ErrMultipleAppointments
	}

	target := matched[0]
	if req.Index != 0 {
		if req.Index < 1 || req.Index > len(matched) {
			return entity.AppointmentRecord{}, s.recordsAt(matched), appointment.ErrInvalidSelection
		}
		target = matched[req.Index-1]
	}

	stored, err := s.utils.SaveBase64File(medicalHistoryDir(), req.FileName, req.FileContent)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to store medical history file")
		return entity.AppointmentRecord{}, nil, appointment.ErrStoreMedicalFile
	}

	prev := s.records[target].MedicalHistoryFile
	s.records[target].MedicalHistoryFile = stored

	if err := s.appointmentRepository.Save(ctx, s.records); err != nil {
		s.records[target].MedicalHistoryFile = prev
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist appointments, upload rolled back")
		return entity.AppointmentRecord{}, nil, appointment.ErrPersistAppointments
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"file":       filepath.Base(stored),
		"date":       s.records[target].AppointmentDate,
	}).Info("Medical history file attached")

	return s.records[target], nil, nil
}

// recordsAt assumes the store mutex is held.
func (s *appointmentService) recordsAt(indexes []int) []entity.AppointmentRecord {
	out := make([]entity.AppointmentRecord, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, s.records[i])
	}
	return out
}

// MedicalHistoryFilePath resolves a stored file by its base name. The name is
// reduced to its base first, so path segments cannot escape the storage
// directory.
func (s *appointmentService) MedicalHistoryFilePath(fileName string) (string, error) {
	base := filepath.Base(fileName)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", appointment.ErrMedicalFileNotFound
	}

	path := filepath.Join(medicalHistoryDir(), base)
	if _, err := os.Stat(path); err != nil {
		return "", appointment.ErrMedicalFileNotFound
	}

	return path, nil
}

// ByDoctor matches either the snapshotted doctor id or the doctor's name
// inside the display string, so records booked before ids were stored still
// show up.
func (s *appointmentService) ByDoctor(ctx context.Context, doctorID, doctorName string) []entity.AppointmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []entity.AppointmentRecord
	for _, rec := range s.records {
		if (doctorID != "" && rec.DoctorID == doctorID) ||
			(doctorName != "" && containsName(rec.Doctor, doctorName)) {
			matches = append(matches, rec)
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"doctor_id":  doctorID,
		"matches":    len(matches),
	}).Debug("Appointments by doctor")

	return matches
}

func containsName(display, name string) bool {
	return strings.Contains(strings.ToLower(display), strings.ToLower(name))
}

func (s *appointmentService) AvailableSlots(_ context.Context) map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slots.Clone()
}

func (s *appointmentService) AvailableDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slots.Dates()
}

func (s *appointmentService) AvailableTimes(date string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slots.Times(date)
}
