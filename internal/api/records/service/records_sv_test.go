package recordsService_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"HealthcareGolang/internal/api/records"
	recordsRepository "HealthcareGolang/internal/api/records/repository"
	recordsService "HealthcareGolang/internal/api/records/service"
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordsService(t *testing.T) (recordsService.IRecordsService, reminderRepository.Repository) {
	t.Helper()

	logger := log.NewLogger()
	dir := t.TempDir()
	repo := recordsRepository.NewFileRepository(
		filepath.Join(dir, "medical_history.json"),
		filepath.Join(dir, "medications.json"),
		logger,
	)
	reminderRepo := reminderRepository.NewMemoryRepository()

	svc, err := recordsService.New(logger, repo, reminderService.New(logger, reminderRepo))
	require.NoError(t, err)
	return svc, reminderRepo
}

func TestAddHistoryEntryCreatesRecord(t *testing.T) {
	svc, _ := newRecordsService(t)

	history, err := svc.AddHistoryEntry(context.Background(), "jane@example.com", entity.MedicalHistoryEntry{
		Condition: "Appendectomy",
		Date:      "2020-06-15",
		Details:   "No complications",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", history.Identifier)
	require.Len(t, history.Entries, 1)
	assert.Equal(t, "Appendectomy", history.Entries[0].Condition)
}

func TestAddHistoryEntryDefaultsDate(t *testing.T) {
	svc, _ := newRecordsService(t)

	history, err := svc.AddHistoryEntry(context.Background(), "jane@example.com", entity.MedicalHistoryEntry{
		Condition: "Sprained ankle",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, history.Entries[0].Date)
}

func TestAddHistoryEntryAppendsToExisting(t *testing.T) {
	svc, _ := newRecordsService(t)

	_, err := svc.AddHistoryEntry(context.Background(), "jane@example.com", entity.MedicalHistoryEntry{Condition: "Asthma"})
	require.NoError(t, err)
	history, err := svc.AddHistoryEntry(context.Background(), "jane@example.com", entity.MedicalHistoryEntry{Condition: "Migraine"})
	require.NoError(t, err)

	assert.Len(t, history.Entries, 2)
}

func TestGetHistoryUnknownIdentifier(t *testing.T) {
	svc, _ := newRecordsService(t)

	_, err := svc.GetHistory(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, records.ErrHistoryNotFound)
}

func TestAddMedicationSchedulesReminderForRecurring(t *testing.T) {
	svc, reminderRepo := newRecordsService(t)

	list, err := svc.AddMedication(context.Background(), "jane@example.com", entity.Medication{
		Name:      "Metformin",
		Dosage:    "500mg",
		Frequency: "twice daily",
	})
	require.NoError(t, err)
	require.Len(t, list.Medications, 1)

	due, err := reminderRepo.Due(context.Background(), time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestAddMedicationSkipsReminderForAsNeeded(t *testing.T) {
	svc, reminderRepo := newRecordsService(t)

	_, err := svc.AddMedication(context.Background(), "jane@example.com", entity.Medication{
		Name:      "Ibuprofen",
		Dosage:    "200mg",
		Frequency: "as needed",
	})
	require.NoError(t, err)

	due, err := reminderRepo.Due(context.Background(), time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestGetMedicationsUnknownIdentifier(t *testing.T) {
	svc, _ := newRecordsService(t)

	_, err := svc.GetMedications(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, records.ErrMedicationsNotFound)
}
