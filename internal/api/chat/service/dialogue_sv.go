package chatService

import (
	"HealthcareGolang/internal/api/chat"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/intent"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) Welcome(ctx context.Context) chat.WelcomeResponse {
	sessionID, _ := s.sessions.GetOrCreate("")
	return chat.WelcomeResponse{
		Response:  welcomeMessage,
		SessionID: sessionID,
	}
}

func (s *chatService) HandleMessage(ctx context.Context, req chat.ChatMessageRequest) (chat.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return chat.ChatResponse{}, chat.ErrEmptyMessage
	}

	sessionID, session := s.sessions.GetOrCreate(req.SessionID)

	session.Lock()
	defer session.Unlock()

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"flow":       session.Flow.String(),
		"step":       session.Step,
	}).Debug("Chat message received")

	resp, err := s.route(ctx, session, message)
	if err != nil {
		return chat.ChatResponse{}, err
	}

	resp.SessionID = sessionID
	return resp, nil
}

func (s *chatService) route(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	switch session.Flow {
	case entity.FlowBooking:
		return s.handleBooking(ctx, session, message)
	case entity.FlowChecking:
		return s.handleChecking(ctx, session, message)
	case entity.FlowCancelling:
		return s.handleCancelling(ctx, session, message)
	case entity.FlowSymptoms:
		return s.handleSymptoms(ctx, session, message)
	default:
		return s.handleIdle(ctx, session, message)
	}
}

// handleIdle resolves a top-level message: menu digits first, then keyword
// intents, then the LLM.
func (s *chatService) handleIdle(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	if digitPattern.MatchString(message) {
		switch message {
		case "1":
			return s.startBooking(session), nil
		case "2":
			return s.startChecking(session), nil
		case "3":
			return s.startCancelling(session), nil
		case "4":
			return s.doctorInfo(ctx), nil
		case "5", "8":
			return s.startSymptoms(session), nil
		default:
			return chat.ChatResponse{Response: "Invalid option. Please select options 1-5 only."}, nil
		}
	}

	switch s.classifier.Classify(message) {
	case intent.IntentBookAppointment:
		return s.startBooking(session), nil
	case intent.IntentCheckAppointment:
		return s.startChecking(session), nil
	case intent.IntentCancelAppointment:
		return s.startCancelling(session), nil
	case intent.IntentListDoctors:
		return s.doctorInfo(ctx), nil
	case intent.IntentCheckSymptoms:
		return s.startSymptoms(session), nil
	}

	return s.assistantReply(ctx, message), nil
}

func (s *chatService) startBooking(session *entity.ChatSession) chat.ChatResponse {
	session.ResetFlow()
	session.Flow = entity.FlowBooking
	session.Step = stepName
	return chat.ChatResponse{Response: "Let's book an appointment. What is your full name?"}
}

func (s *chatService) startChecking(session *entity.ChatSession) chat.ChatResponse {
	session.ResetFlow()
	session.Flow = entity.FlowChecking
	session.Step = stepIdentifier
	return chat.ChatResponse{Response: "Please provide your email or phone number to check your appointment:"}
}

func (s *chatService) startCancelling(session *entity.ChatSession) chat.ChatResponse {
	session.ResetFlow()
	session.Flow = entity.FlowCancelling
	session.Step = stepIdentifier
	return chat.ChatResponse{Response: "Please provide your email or phone number to cancel your appointment:"}
}

func (s *chatService) startSymptoms(session *entity.ChatSession) chat.ChatResponse {
	session.ResetFlow()
	session.Flow = entity.FlowSymptoms
	session.Step = stepSymptoms
	return chat.ChatResponse{Response: "Please describe your symptoms in detail:"}
}

func (s *chatService) doctorInfo(ctx context.Context) chat.ChatResponse {
	var b strings.Builder
	b.WriteString("Here are our available doctors:\n")
	for _, doc := range s.doctorService.List(ctx) {
		fmt.Fprintf(&b, "%s. %s (%s)\n", doc.ID, doc.Name, doc.Specialty)
	}
	return chat.ChatResponse{Response: b.String()}
}

// assistantReply sends a free-form question to the LLM. Failures degrade to a
// canned apology; the session state is untouched either way.
func (s *chatService) assistantReply(ctx context.Context, message string) chat.ChatResponse {
	response := limitedModeMessage

	if s.generator != nil {
		prompt := "You are an AI healthcare receptionist assistant. Your job is to help patients with their healthcare needs.\n\n" +
			"Answer the patient's question concisely and helpfully. If the question is about booking, checking or cancelling " +
			"appointments, viewing doctors, or checking symptoms, point them to the matching menu option.\n\n" +
			"Patient: " + message

		generated, err := s.generator.GenerateText(ctx, prompt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Assistant reply generation failed")
			response = apologyMessage
		} else {
			response = strings.TrimSpace(generated)
		}
	}

	if s.classifier.NeedsMenu(message) {
		response += menuSuffix
	}

	return chat.ChatResponse{Response: response}
}
