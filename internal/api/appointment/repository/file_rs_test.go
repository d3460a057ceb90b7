package appointmentRepository_test

import (
	"context"
	"path/filepath"
	"testing"

	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryLoadMissingFile(t *testing.T) {
	repo := appointmentRepository.NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"), log.NewLogger())

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestFileRepositorySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	repo := appointmentRepository.NewFileRepository(path, log.NewLogger())

	records := []entity.AppointmentRecord{
		{
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			Phone:           "9876543210",
			Age:             "30",
			Gender:          "Female",
			Reason:          "Routine checkup",
			Doctor:          "John Smith (Cardiologist)",
			DoctorID:        "1",
			AppointmentDate: "2026-03-11",
			AppointmentTime: "09:00",
		},
		{
			Name:            "Raj Patel",
			Email:           "raj@example.com",
			Phone:           "9123456780",
			Doctor:          "Asha Rao (Dermatologist)",
			DoctorID:        "2",
			AppointmentDate: "2026-03-12",
			AppointmentTime: "14:00",
		},
	}

	require.NoError(t, repo.Save(context.Background(), records))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestFileRepositorySaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	repo := appointmentRepository.NewFileRepository(path, log.NewLogger())

	first := []entity.AppointmentRecord{{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "9876543210",
		Doctor:          "John Smith (Cardiologist)",
		AppointmentDate: "2026-03-11",
		AppointmentTime: "09:00",
	}}
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), nil))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
