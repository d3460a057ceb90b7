package doctorHandler_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"HealthcareGolang/internal/api/appointment"
	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	"HealthcareGolang/internal/api/doctor"
	doctorHandler "HealthcareGolang/internal/api/doctor/handler"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/config"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/internal/middleware"
	"HealthcareGolang/pkg/bcrypt"
	"HealthcareGolang/pkg/log"
	"HealthcareGolang/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, doctorService.IDoctorService, appointmentService.IAppointmentService) {
	t.Helper()

	logger := log.NewLogger()
	bc := bcrypt.New()
	hash, err := bc.HashPassword("s3cret")
	require.NoError(t, err)

	doctors := doctorService.NewWithCatalog(logger, []entity.Doctor{
		{ID: "1", Name: "John Smith", Specialty: "Cardiologist", PasswordHash: hash},
	}, bc)

	repo := appointmentRepository.NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"), logger)
	reminders := reminderService.New(logger, reminderRepository.NewMemoryRepository())
	appointments, err := appointmentService.New(logger, repo, reminders, utils.New())
	require.NoError(t, err)

	app := config.NewFiber(logger)
	handler := doctorHandler.New(logger, config.NewValidator(), middleware.New(logger), doctors, appointments)
	handler.Start(app.Group("/api/v1"))

	return app, doctors, appointments
}

// The app runs with strict routing, so the collection route must answer
// without a trailing slash.
func TestGetDoctorsRoute(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetMedicalHistoryFileRoute(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("MEDICAL_HISTORY_DIR", t.TempDir())

	app, doctors, appointments := newTestApp(t)

	require.NoError(t, appointments.BookRecord(context.Background(), entity.AppointmentRecord{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "9876543210",
		Doctor:          "John Smith (Cardiologist)",
		DoctorID:        "1",
		AppointmentDate: "2030-01-01",
		AppointmentTime: "09:00",
	}))

	updated, _, err := appointments.AttachMedicalHistory(context.Background(), appointment.UploadMedicalHistoryRequest{
		Email:       "jane@example.com",
		FileName:    "history.pdf",
		FileContent: base64.StdEncoding.EncodeToString([]byte("previous records")),
	})
	require.NoError(t, err)
	require.NotEmpty(t, updated.MedicalHistoryFile)

	login, err := doctors.Login(context.Background(), doctor.LoginRequest{DoctorID: "1", Password: "s3cret"})
	require.NoError(t, err)

	fileName := filepath.Base(updated.MedicalHistoryFile)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/medical-history-files/"+fileName, nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/doctors/medical-history-files/"+fileName, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/doctors/medical-history-files/missing.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
