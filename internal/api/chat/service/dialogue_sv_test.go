package chatService_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	"HealthcareGolang/internal/api/chat"
	chatRepository "HealthcareGolang/internal/api/chat/repository"
	chatService "HealthcareGolang/internal/api/chat/service"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/bcrypt"
	"HealthcareGolang/pkg/intent"
	"HealthcareGolang/pkg/log"
	"HealthcareGolang/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses []string
	err       error
	calls     int
}

func (g *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if g.calls >= len(g.responses) {
		return "", errors.New("no scripted response")
	}
	resp := g.responses[g.calls]
	g.calls++
	return resp, nil
}

func newTestChat(t *testing.T, generator chatService.TextGenerator) (chatService.IChatService, appointmentService.IAppointmentService) {
	t.Helper()

	logger := log.NewLogger()
	repo := appointmentRepository.NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"), logger)
	reminders := reminderService.New(logger, reminderRepository.NewMemoryRepository())

	appointments, err := appointmentService.New(logger, repo, reminders, utils.New())
	require.NoError(t, err)

	doctors := doctorService.NewWithCatalog(logger, []entity.Doctor{
		{ID: "1", Name: "John Smith", Specialty: "Cardiologist"},
		{ID: "2", Name: "Asha Rao", Specialty: "Dermatologist"},
	}, bcrypt.New())

	svc := chatService.New(logger, chatRepository.NewRegistry(logger), appointments, doctors, intent.NewClassifier(), generator)
	return svc, appointments
}

func send(t *testing.T, svc chatService.IChatService, sessionID, message string) chat.ChatResponse {
	t.Helper()
	resp, err := svc.HandleMessage(context.Background(), chat.ChatMessageRequest{SessionID: sessionID, Message: message})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestWelcomeCreatesSession(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	welcome := svc.Welcome(context.Background())
	assert.NotEmpty(t, welcome.SessionID)
	assert.Contains(t, welcome.Response, "Welcome to AI HealthCare Assistant")
	assert.Contains(t, welcome.Response, "1. Book an appointment")
}

func TestHandleMessageRejectsBlankInput(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	_, err := svc.HandleMessage(context.Background(), chat.ChatMessageRequest{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	svc, appointments := newTestChat(t, nil)

	resp := send(t, svc, "", "1")
	sessionID := resp.SessionID
	assert.Equal(t, "Let's book an appointment. What is your full name?", resp.Response)

	resp = send(t, svc, sessionID, "Jane Doe")
	assert.Equal(t, "What is your email address?", resp.Response)

	resp = send(t, svc, sessionID, "not-an-email")
	assert.Equal(t, "Please enter a valid email address.", resp.Response)

	resp = send(t, svc, sessionID, "jane@example.com")
	assert.Equal(t, "What is your mobile number? (10 digits)", resp.Response)

	resp = send(t, svc, sessionID, "12345")
	assert.Equal(t, "Please enter a valid 10-digit phone number.", resp.Response)

	resp = send(t, svc, sessionID, "9876543210")
	assert.Equal(t, "What is your age?", resp.Response)

	resp = send(t, svc, sessionID, "30")
	assert.Equal(t, "What is your gender? (Male/Female/Other)", resp.Response)

	resp = send(t, svc, sessionID, "Female")
	assert.Equal(t, "Briefly describe the reason for your visit:", resp.Response)

	resp = send(t, svc, sessionID, "Routine checkup")
	assert.Contains(t, resp.Response, "Please select a doctor:")
	assert.Contains(t, resp.Response, "1. Dr. John Smith (Cardiologist)")
	assert.Contains(t, resp.Response, "Doctor IDs: {1:1, 2:2}")

	resp = send(t, svc, sessionID, "bogus-doctor")
	assert.Equal(t, "Invalid selection. Please enter a valid doctor ID.", resp.Response)

	resp = send(t, svc, sessionID, "DOCTOR_ID:1:Dr. John Smith")
	assert.Contains(t, resp.Response, "Available dates for appointment:")

	resp = send(t, svc, sessionID, "not a number")
	assert.Equal(t, "Please enter a valid number.", resp.Response)

	resp = send(t, svc, sessionID, "99")
	assert.Equal(t, "Invalid selection. Please enter a valid number.", resp.Response)

	resp = send(t, svc, sessionID, "1")
	assert.Contains(t, resp.Response, "Available time slots for ")

	resp = send(t, svc, sessionID, "1")
	assert.Contains(t, resp.Response, "✅ APPOINTMENT CONFIRMED ✅")
	assert.Contains(t, resp.Response, "Name: Jane Doe")
	assert.True(t, resp.CanUploadMedicalHistory)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "John Smith (Cardiologist)", resp.Appointment.Doctor)

	booked := appointments.Lookup(context.Background(), "jane@example.com", "")
	require.Len(t, booked, 1)
	assert.Equal(t, "Jane Doe", booked[0].Name)

	// The confirmed slot is gone from availability.
	times := appointments.AvailableTimes(booked[0].AppointmentDate)
	assert.NotContains(t, times, booked[0].AppointmentTime)
}

func TestInvalidMenuOption(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	resp := send(t, svc, "", "7")
	assert.Equal(t, "Invalid option. Please select options 1-5 only.", resp.Response)
}

func TestDoctorListOption(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	resp := send(t, svc, "", "4")
	assert.Contains(t, resp.Response, "Here are our available doctors:")
	assert.Contains(t, resp.Response, "2. Asha Rao (Dermatologist)")
}

func TestCheckingFlowFindsBooking(t *testing.T) {
	svc, appointments := newTestChat(t, nil)

	date := appointments.AvailableDates()[0]
	require.NoError(t, appointments.BookRecord(context.Background(), entity.AppointmentRecord{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "9876543210",
		Doctor:          "John Smith (Cardiologist)",
		DoctorID:        "1",
		AppointmentDate: date,
		AppointmentTime: "10:00",
		Reason:          "Routine checkup",
	}))

	resp := send(t, svc, "", "2")
	sessionID := resp.SessionID
	assert.Equal(t, "Please provide your email or phone number to check your appointment:", resp.Response)

	resp = send(t, svc, sessionID, "jane@example.com")
	assert.Contains(t, resp.Response, "Found appointment:")
	assert.Contains(t, resp.Response, "Doctor: John Smith (Cardiologist)")
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "jane@example.com", resp.Appointment.Email)
}

func TestCheckingFlowNoMatch(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	resp := send(t, svc, "", "2")
	resp = send(t, svc, resp.SessionID, "nobody@example.com")
	assert.Equal(t, "No appointment found with the provided information.", resp.Response)
}

func TestCancellationDisambiguation(t *testing.T) {
	svc, appointments := newTestChat(t, nil)

	date := appointments.AvailableDates()[0]
	for _, slot := range []string{"09:00", "10:00"} {
		require.NoError(t, appointments.BookRecord(context.Background(), entity.AppointmentRecord{
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			Phone:           "9876543210",
			Doctor:          "John Smith (Cardiologist)",
			DoctorID:        "1",
			AppointmentDate: date,
			AppointmentTime: slot,
			Reason:          "Routine checkup",
		}))
	}

	resp := send(t, svc, "", "3")
	sessionID := resp.SessionID
	assert.Equal(t, "Please provide your email or phone number to cancel your appointment:", resp.Response)

	resp = send(t, svc, sessionID, "jane@example.com")
	assert.Contains(t, resp.Response, "You have multiple appointments. Which one would you like to cancel?")

	resp = send(t, svc, sessionID, "abc")
	assert.Equal(t, "Please enter a valid number to select the appointment you want to cancel.", resp.Response)

	resp = send(t, svc, sessionID, "5")
	assert.Equal(t, "Please enter a valid number between 1 and 2.", resp.Response)

	resp = send(t, svc, sessionID, "2")
	assert.Contains(t, resp.Response, "has been cancelled successfully.")

	remaining := appointments.Lookup(context.Background(), "jane@example.com", "")
	require.Len(t, remaining, 1)
	assert.Equal(t, "09:00", remaining[0].AppointmentTime)

	// The cancelled slot is bookable again.
	assert.Contains(t, appointments.AvailableTimes(date), "10:00")
}

func TestIdleFallsBackToAssistant(t *testing.T) {
	svc, _ := newTestChat(t, &fakeGenerator{responses: []string{"Stay hydrated and rest."}})

	resp := send(t, svc, "", "what should I do after a long flight?")
	assert.Equal(t, "Stay hydrated and rest.", resp.Response)
}

func TestIdleAssistantFailureApologizes(t *testing.T) {
	svc, _ := newTestChat(t, &fakeGenerator{err: errors.New("quota exceeded")})

	resp := send(t, svc, "", "tell me something")
	assert.Equal(t, "I'm sorry, I encountered an error processing your request. Please try again.", resp.Response)
}

func TestHelpRequestAppendsMenu(t *testing.T) {
	svc, _ := newTestChat(t, &fakeGenerator{responses: []string{"Happy to help."}})

	resp := send(t, svc, "", "help")
	assert.True(t, strings.HasPrefix(resp.Response, "Happy to help."))
	assert.Contains(t, resp.Response, "You can select from the following options:")
	assert.Contains(t, resp.Response, "5. Check symptoms")
}

func TestSymptomsFlowSeedsBooking(t *testing.T) {
	generator := &fakeGenerator{responses: []string{
		"Likely a strained muscle. Severity: mild. See a cardiologist to rule out heart issues.",
		"Cardiologist",
	}}
	svc, _ := newTestChat(t, generator)

	resp := send(t, svc, "", "5")
	sessionID := resp.SessionID
	assert.Equal(t, "Please describe your symptoms in detail:", resp.Response)

	resp = send(t, svc, sessionID, "chest pain when climbing stairs")
	assert.Contains(t, resp.Response, "SYMPTOM ASSESSMENT:")
	assert.Contains(t, resp.Response, "I recommend consulting with a Cardiologist.")
	assert.Contains(t, resp.Response, "- John Smith (Cardiologist)")
	assert.Equal(t, "Cardiologist", resp.RecommendedSpecialist)
	assert.NotEmpty(t, resp.Assessment)

	resp = send(t, svc, sessionID, "1")
	assert.Equal(t, "Great! Let's book an appointment with a specialist. What is your full name?", resp.Response)

	// The recommended doctor is pre-selected: after the reason the flow goes
	// straight to date selection.
	send(t, svc, sessionID, "Jane Doe")
	send(t, svc, sessionID, "jane@example.com")
	send(t, svc, sessionID, "9876543210")
	send(t, svc, sessionID, "30")
	send(t, svc, sessionID, "Female")
	resp = send(t, svc, sessionID, "Chest pain")
	assert.Contains(t, resp.Response, "Available dates for appointment:")

	send(t, svc, sessionID, "1")
	resp = send(t, svc, sessionID, "1")
	assert.Contains(t, resp.Response, "✅ APPOINTMENT CONFIRMED ✅")
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "John Smith (Cardiologist)", resp.Appointment.Doctor)
	assert.Equal(t, "1", resp.Appointment.DoctorID)
}

func TestCheckSymptomsWithoutGenerator(t *testing.T) {
	svc, _ := newTestChat(t, nil)

	_, err := svc.CheckSymptoms(context.Background(), "headache")
	assert.ErrorIs(t, err, chat.ErrAssistantUnavailable)
}

func TestCheckSymptomsDefaultsSpecialist(t *testing.T) {
	generator := &fakeGenerator{responses: []string{
		"Probably a tension headache. Severity: mild.",
		"",
	}}
	svc, _ := newTestChat(t, generator)

	result, err := svc.CheckSymptoms(context.Background(), "headache")
	require.NoError(t, err)
	assert.Equal(t, "General Physician", result.RecommendedSpecialist)
	assert.Contains(t, result.Assessment, "tension headache")
}
