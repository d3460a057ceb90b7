package appointmentHandler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	appointmentHandler "HealthcareGolang/internal/api/appointment/handler"
	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	appointmentService "HealthcareGolang/internal/api/appointment/service"
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

func newTestApp(t *testing.T) (*fiber.App, appointmentService.IAppointmentService) {
	t.Helper()

	logger := log.NewLogger()
	repo := appointmentRepository.NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"), logger)
	reminders := reminderService.New(logger, reminderRepository.NewMemoryRepository())

	appointments, err := appointmentService.New(logger, repo, reminders, utils.New())
	require.NoError(t, err)

	doctors := doctorService.NewWithCatalog(logger, []entity.Doctor{
		{ID: "1", Name: "John Smith", Specialty: "Cardiologist"},
	}, bcrypt.New())

	app := config.NewFiber(logger)
	handler := appointmentHandler.New(logger, config.NewValidator(), middleware.New(logger), appointments, doctors)
	handler.Start(app.Group("/api/v1"))

	return app, appointments
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// The app runs with strict routing, so the collection route must answer
// without a trailing slash.
func TestBookAppointmentRoute(t *testing.T) {
	app, appointments := newTestApp(t)
	date := appointments.AvailableDates()[0]

	body := fmt.Sprintf(`{"name":"Jane Doe","email":"jane@example.com","phone":"9876543210","doctor_id":"1","appointment_date":%q,"appointment_time":"09:00"}`, date)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/appointments", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, appointments.Lookup(context.Background(), "jane@example.com", ""), 1)
}

func TestGetAvailableSlotsRoute(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/appointments/slots", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadMedicalHistoryRouteRequiresIdentifier(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"file_name":"history.pdf","file_content":"aGVsbG8="}`
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/appointments/medical-history", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
