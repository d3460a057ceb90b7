package chatService

import (
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	"HealthcareGolang/internal/api/chat"
	chatRepository "HealthcareGolang/internal/api/chat/repository"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	"HealthcareGolang/pkg/intent"
	"regexp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// TextGenerator is the slice of an LLM client the dialogue needs. Both the
// Gemini and the OpenAI clients satisfy it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type IChatService interface {
	Welcome(ctx context.Context) chat.WelcomeResponse
	HandleMessage(ctx context.Context, req chat.ChatMessageRequest) (chat.ChatResponse, error)
	CheckSymptoms(ctx context.Context, symptoms string) (chat.CheckSymptomsResponse, error)
}

// Step names within a flow. The cancellation selection step keeps its long
// name so the API payloads stay readable in logs.
const (
	stepName             = "name"
	stepEmail            = "email"
	stepPhone            = "phone"
	stepAge              = "age"
	stepGender           = "gender"
	stepReason           = "reason"
	stepDoctor           = "doctor"
	stepDate             = "date"
	stepTime             = "time"
	stepIdentifier       = "identifier"
	stepSelectCancel     = "select_appointment_to_cancel"
	stepSymptoms         = "symptoms"
	stepBookFromSymptoms = "book_from_symptoms"
)

const menuOptions = "1. Book an appointment\n" +
	"2. Check my existing appointment\n" +
	"3. Cancel my appointment\n" +
	"4. View available doctors\n" +
	"5. Check symptoms"

const welcomeMessage = "👋 Welcome to AI HealthCare Assistant! 👋\n\n" +
	"I'm your AI receptionist and I'm here to help you with your healthcare needs.\n\n" +
	"You can choose from the following options:\n" +
	menuOptions +
	"\n\nJust type the number of your choice or describe what you need in your own words."

const menuSuffix = "\n\nYou can select from the following options:\n" + menuOptions

const apologyMessage = "I'm sorry, I encountered an error processing your request. Please try again."

const limitedModeMessage = "I'm operating in limited mode without AI features. " +
	"Please select an option from the menu or try again later when full functionality is restored."

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	digitPattern = regexp.MustCompile(`^\d+$`)
)

type chatService struct {
	log                *logrus.Logger
	sessions           chatRepository.Registry
	appointmentService appointmentService.IAppointmentService
	doctorService      doctorService.IDoctorService
	classifier         intent.IClassifier
	generator          TextGenerator
}

// New wires the dialogue engine. generator may be nil; the assistant then
// answers free-form questions with a limited-mode notice and the symptom
// checker reports itself unavailable.
func New(
	log *logrus.Logger,
	sessions chatRepository.Registry,
	as appointmentService.IAppointmentService,
	ds doctorService.IDoctorService,
	classifier intent.IClassifier,
	generator TextGenerator,
) IChatService {
	return &chatService{
		log:                log,
		sessions:           sessions,
		appointmentService: as,
		doctorService:      ds,
		classifier:         classifier,
		generator:          generator,
	}
}
