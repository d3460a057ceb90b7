package recordsService

import (
	"HealthcareGolang/internal/api/records"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *recordsService) AddHistoryEntry(ctx context.Context, identifier string, entry entity.MedicalHistoryEntry) (entity.MedicalHistory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if entry.Date == "" {
		entry.Date = s.now().Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := append([]entity.MedicalHistory(nil), s.histories...)

	idx := -1
	for i, h := range s.histories {
		if h.Identifier == identifier {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.histories = append(s.histories, entity.MedicalHistory{Identifier: identifier})
		idx = len(s.histories) - 1
	}
	s.histories[idx].Entries = append(s.histories[idx].Entries, entry)

	if err := s.recordsRepository.SaveHistories(ctx, s.histories); err != nil {
		s.histories = prev
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist medical histories, entry rolled back")
		return entity.MedicalHistory{}, records.ErrPersistRecords
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"condition":  entry.Condition,
	}).Info("Medical history entry added")

	return s.histories[idx], nil
}

func (s *recordsService) GetHistory(ctx context.Context, identifier string) (entity.MedicalHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.histories {
		if h.Identifier == identifier {
			return h, nil
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
	}).Debug("No medical history for identifier")

	return entity.MedicalHistory{}, records.ErrHistoryNotFound
}

func (s *recordsService) AddMedication(ctx context.Context, identifier string, med entity.Medication) (entity.MedicationList, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if med.StartDate == "" {
		med.StartDate = s.now().Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := append([]entity.MedicationList(nil), s.medications...)

	idx := -1
	for i, m := range s.medications {
		if m.Identifier == identifier {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.medications = append(s.medications, entity.MedicationList{Identifier: identifier})
		idx = len(s.medications) - 1
	}
	s.medications[idx].Medications = append(s.medications[idx].Medications, med)

	if err := s.recordsRepository.SaveMedications(ctx, s.medications); err != nil {
		s.medications = prev
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist medications, entry rolled back")
		return entity.MedicationList{}, records.ErrPersistRecords
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"medication": med.Name,
	}).Info("Medication added")

	if err := s.reminderService.SetMedicationReminder(ctx, identifier, med); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to schedule medication reminder")
	}

	return s.medications[idx], nil
}

func (s *recordsService) GetMedications(ctx context.Context, identifier string) (entity.MedicationList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.medications {
		if m.Identifier == identifier {
			return m, nil
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
	}).Debug("No medications for identifier")

	return entity.MedicationList{}, records.ErrMedicationsNotFound
}
