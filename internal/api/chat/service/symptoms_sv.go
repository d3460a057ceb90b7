package chatService

import (
	"HealthcareGolang/internal/api/chat"
	"HealthcareGolang/internal/entity"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultSpecialist = "General Physician"

const limitedAssessmentMessage = "AI-powered symptom analysis is not available. " +
	"Please consult with a General Physician for a proper diagnosis."

func assessmentPrompt(symptoms string) string {
	return "As a healthcare AI assistant, analyze the following symptoms and provide a preliminary assessment:\n\n" +
		symptoms + "\n\n" +
		"Please provide:\n" +
		"1. Possible conditions\n" +
		"2. Severity assessment (mild, moderate, severe)\n" +
		"3. Recommended next steps\n" +
		"4. Whether immediate medical attention is needed\n" +
		"5. Recommended specialist type (e.g., Cardiologist, Dermatologist, etc.)\n\n" +
		"Format your response in a clear, structured way."
}

func specialistPrompt(assessment string) string {
	return "Based on the following assessment, extract ONLY the recommended specialist type:\n\n" +
		assessment + "\n\n" +
		"Return ONLY the specialist type (e.g., Cardiologist, Dermatologist, etc.) " +
		"or \"General Physician\" if no specific specialist is mentioned."
}

// assessSymptoms runs the two-pass analysis: a structured assessment first,
// then a second pass extracting the specialist type from it. Extraction
// failures fall back to the general physician rather than failing the whole
// assessment.
func (s *chatService) assessSymptoms(ctx context.Context, symptoms string) (assessment, specialist string, err error) {
	if s.generator == nil {
		return limitedAssessmentMessage, defaultSpecialist, nil
	}

	assessment, err = s.generator.GenerateText(ctx, assessmentPrompt(symptoms))
	if err != nil {
		return "", "", err
	}
	assessment = strings.TrimSpace(assessment)

	specialist = defaultSpecialist
	extracted, exErr := s.generator.GenerateText(ctx, specialistPrompt(assessment))
	if exErr != nil {
		s.log.WithFields(logrus.Fields{
			"error": exErr.Error(),
		}).Warn("Specialist extraction failed")
	} else if trimmed := strings.TrimSpace(extracted); trimmed != "" {
		specialist = trimmed
	}

	return assessment, specialist, nil
}

func (s *chatService) CheckSymptoms(ctx context.Context, symptoms string) (chat.CheckSymptomsResponse, error) {
	if s.generator == nil {
		return chat.CheckSymptomsResponse{}, chat.ErrAssistantUnavailable
	}

	assessment, specialist, err := s.assessSymptoms(ctx, symptoms)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Symptom assessment failed")
		return chat.CheckSymptomsResponse{}, chat.ErrAssistantUnavailable
	}

	return chat.CheckSymptomsResponse{
		Assessment:            assessment,
		RecommendedSpecialist: specialist,
	}, nil
}

func (s *chatService) handleSymptoms(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	switch session.Step {
	case stepSymptoms:
		assessment, specialist, err := s.assessSymptoms(ctx, message)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"session_id": session.ID,
				"error":      err.Error(),
			}).Warn("Symptom assessment failed")
			session.ResetFlow()
			return chat.ChatResponse{Response: apologyMessage}, nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "SYMPTOM ASSESSMENT:\n\n%s\n\n", assessment)
		fmt.Fprintf(&b, "Based on your symptoms, I recommend consulting with a %s.", specialist)

		doctors := s.doctorService.BySpecialty(ctx, specialist)
		if len(doctors) > 0 {
			lines := make([]string, len(doctors))
			for i, doc := range doctors {
				lines[i] = "- " + doc.Display()
			}
			fmt.Fprintf(&b, "\n\nHere are doctors specializing in this area:\n%s\n\n", strings.Join(lines, "\n"))
			b.WriteString("Would you like to book an appointment with one of these doctors? Reply with '1' to start booking.")

			session.Step = stepBookFromSymptoms
			session.RecommendedSpecialist = specialist
			session.RecommendedDoctor = doctors[0].Display()
			session.RecommendedDoctorID = doctors[0].ID
		} else {
			session.ResetFlow()
		}

		return chat.ChatResponse{
			Response:              b.String(),
			Assessment:            assessment,
			RecommendedSpecialist: specialist,
		}, nil

	case stepBookFromSymptoms:
		lower := strings.ToLower(message)
		if message == "1" || strings.HasPrefix(lower, "yes") || strings.HasPrefix(lower, "book") {
			doctor := session.RecommendedDoctor
			doctorID := session.RecommendedDoctorID

			session.ResetFlow()
			session.Flow = entity.FlowBooking
			session.Step = stepName
			session.Draft["doctor"] = doctor
			session.Draft["doctor_id"] = doctorID

			return chat.ChatResponse{
				Response: "Great! Let's book an appointment with a specialist. What is your full name?",
			}, nil
		}
	}

	session.ResetFlow()
	return s.handleIdle(ctx, session, message)
}
