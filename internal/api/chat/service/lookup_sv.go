package chatService

import (
	"HealthcareGolang/internal/api/appointment"
	"HealthcareGolang/internal/api/chat"
	"HealthcareGolang/internal/entity"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/context"
)

// splitIdentifier decides whether the visitor typed an email or a phone
// number. Anything containing '@' is treated as an email.
func splitIdentifier(message string) (email, phone string) {
	if strings.Contains(message, "@") {
		return message, ""
	}
	return "", message
}

func (s *chatService) handleChecking(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	if session.Step != stepIdentifier {
		session.ResetFlow()
		return s.handleIdle(ctx, session, message)
	}

	email, phone := splitIdentifier(message)
	matches := s.appointmentService.Lookup(ctx, email, phone)

	session.ResetFlow()

	switch len(matches) {
	case 0:
		return chat.ChatResponse{Response: "No appointment found with the provided information."}, nil

	case 1:
		rec := matches[0]
		summary := "Found appointment:\n\n" +
			fmt.Sprintf("Name: %s\n", rec.Name) +
			fmt.Sprintf("Doctor: %s\n", rec.Doctor) +
			fmt.Sprintf("Date: %s\n", rec.AppointmentDate) +
			fmt.Sprintf("Time: %s\n", rec.AppointmentTime) +
			fmt.Sprintf("Reason: %s\n", rec.Reason)
		if rec.MedicalHistoryFile != "" {
			summary += fmt.Sprintf("\nMedical History File: %s\n", filepath.Base(rec.MedicalHistoryFile))
		}

		resp := toAppointmentResponse(rec)
		return chat.ChatResponse{Response: summary, Appointment: &resp}, nil

	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Found %d appointments:\n\n", len(matches))

		responses := make([]appointment.AppointmentResponse, len(matches))
		for i, rec := range matches {
			fmt.Fprintf(&b, "--- Appointment %d ---\n", i+1)
			fmt.Fprintf(&b, "Name: %s\n", rec.Name)
			fmt.Fprintf(&b, "Doctor: %s\n", rec.Doctor)
			fmt.Fprintf(&b, "Date: %s\n", rec.AppointmentDate)
			fmt.Fprintf(&b, "Time: %s\n", rec.AppointmentTime)
			fmt.Fprintf(&b, "Reason: %s\n\n", rec.Reason)
			responses[i] = toAppointmentResponse(rec)
		}

		return chat.ChatResponse{Response: b.String(), Appointments: responses}, nil
	}
}

func (s *chatService) handleCancelling(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	switch session.Step {
	case stepIdentifier:
		email, phone := splitIdentifier(message)
		matches := s.appointmentService.Lookup(ctx, email, phone)

		switch len(matches) {
		case 0:
			session.ResetFlow()
			return chat.ChatResponse{Response: "No appointment found with the provided information."}, nil

		case 1:
			rec := matches[0]
			if err := s.cancelRecord(ctx, rec); err != nil {
				return chat.ChatResponse{}, err
			}
			session.ResetFlow()
			return chat.ChatResponse{
				Response: fmt.Sprintf("Appointment for %s has been cancelled successfully", rec.Name),
			}, nil

		default:
			session.Candidates = matches
			session.Step = stepSelectCancel

			var b strings.Builder
			b.WriteString("You have multiple appointments. Which one would you like to cancel?\n\n")
			for i, rec := range matches {
				fmt.Fprintf(&b, "%d. %s on %s at %s\n", i+1, rec.Doctor, rec.AppointmentDate, rec.AppointmentTime)
			}
			return chat.ChatResponse{Response: b.String()}, nil
		}

	case stepSelectCancel:
		selection, err := strconv.Atoi(message)
		if err != nil {
			return chat.ChatResponse{Response: "Please enter a valid number to select the appointment you want to cancel."}, nil
		}
		if selection < 1 || selection > len(session.Candidates) {
			return chat.ChatResponse{
				Response: fmt.Sprintf("Please enter a valid number between 1 and %d.", len(session.Candidates)),
			}, nil
		}

		rec := session.Candidates[selection-1]
		if err := s.cancelRecord(ctx, rec); err != nil {
			return chat.ChatResponse{}, err
		}

		session.ResetFlow()
		return chat.ChatResponse{
			Response: fmt.Sprintf("Appointment for %s with %s on %s at %s has been cancelled successfully.",
				rec.Name, rec.Doctor, rec.AppointmentDate, rec.AppointmentTime),
		}, nil
	}

	session.ResetFlow()
	return s.handleIdle(ctx, session, message)
}

// cancelRecord removes the record from the store. A record already gone, for
// example cancelled through the REST API mid-conversation, counts as done.
func (s *chatService) cancelRecord(ctx context.Context, rec entity.AppointmentRecord) error {
	err := s.appointmentService.RemoveRecord(ctx, rec)
	if err != nil && !errors.Is(err, appointment.ErrAppointmentNotFound) {
		return err
	}
	return nil
}
