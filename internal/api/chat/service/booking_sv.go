package chatService

import (
	"HealthcareGolang/internal/api/appointment"
	"HealthcareGolang/internal/api/chat"
	"HealthcareGolang/internal/entity"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) handleBooking(ctx context.Context, session *entity.ChatSession, message string) (chat.ChatResponse, error) {
	switch session.Step {
	case stepName:
		session.Draft["name"] = message
		session.Step = stepEmail
		return chat.ChatResponse{Response: "What is your email address?"}, nil

	case stepEmail:
		if !emailPattern.MatchString(message) {
			return chat.ChatResponse{Response: "Please enter a valid email address."}, nil
		}
		session.Draft["email"] = message
		session.Step = stepPhone
		return chat.ChatResponse{Response: "What is your mobile number? (10 digits)"}, nil

	case stepPhone:
		if !phonePattern.MatchString(message) {
			return chat.ChatResponse{Response: "Please enter a valid 10-digit phone number."}, nil
		}
		session.Draft["phone"] = message
		session.Step = stepAge
		return chat.ChatResponse{Response: "What is your age?"}, nil

	case stepAge:
		session.Draft["age"] = message
		session.Step = stepGender
		return chat.ChatResponse{Response: "What is your gender? (Male/Female/Other)"}, nil

	case stepGender:
		session.Draft["gender"] = message
		session.Step = stepReason
		return chat.ChatResponse{Response: "Briefly describe the reason for your visit:"}, nil

	case stepReason:
		session.Draft["reason"] = message
		// A doctor seeded by the symptom flow skips the selection step.
		if session.Draft["doctor"] != "" {
			session.Step = stepDate
			return s.offerDates(session, "")
		}
		session.Step = stepDoctor
		return s.offerDoctors(ctx), nil

	case stepDoctor:
		doctorID := parseDoctorSelection(message)
		doc, err := s.doctorService.ByID(ctx, doctorID)
		if err != nil {
			return chat.ChatResponse{Response: "Invalid selection. Please enter a valid doctor ID."}, nil
		}
		session.Draft["doctor"] = doc.Display()
		session.Draft["doctor_id"] = doc.ID
		session.Step = stepDate
		return s.offerDates(session, "")

	case stepDate:
		index, err := strconv.Atoi(message)
		if err != nil {
			return chat.ChatResponse{Response: "Please enter a valid number."}, nil
		}
		if index < 1 || index > len(session.OfferedDates) {
			return chat.ChatResponse{Response: "Invalid selection. Please enter a valid number."}, nil
		}
		session.Draft["appointment_date"] = session.OfferedDates[index-1]
		session.Step = stepTime
		return s.offerTimes(session, "")

	case stepTime:
		index, err := strconv.Atoi(message)
		if err != nil {
			return chat.ChatResponse{Response: "Please enter a valid number."}, nil
		}
		if index < 1 || index > len(session.OfferedTimes) {
			return chat.ChatResponse{Response: "Invalid selection. Please enter a valid number."}, nil
		}
		session.Draft["appointment_time"] = session.OfferedTimes[index-1]
		return s.confirmBooking(ctx, session)
	}

	session.ResetFlow()
	return s.handleIdle(ctx, session, message)
}

// parseDoctorSelection unwraps the DOCTOR_ID:<id>:<display> envelope the web
// client sends when the visitor clicks a doctor instead of typing. Anything
// else is taken as the id itself.
func parseDoctorSelection(message string) string {
	if !strings.HasPrefix(message, "DOCTOR_ID:") {
		return message
	}
	parts := strings.SplitN(message, ":", 3)
	if len(parts) >= 2 && parts[1] != "" {
		return parts[1]
	}
	return message
}

func (s *chatService) offerDoctors(ctx context.Context) chat.ChatResponse {
	var b strings.Builder
	b.WriteString("Please select a doctor:\n\n")

	mappings := make([]string, 0)
	for i, doc := range s.doctorService.List(ctx) {
		fmt.Fprintf(&b, "%d. Dr. %s (%s)\n", i+1, doc.Name, doc.Specialty)
		mappings = append(mappings, fmt.Sprintf("%d:%s", i+1, doc.ID))
	}

	fmt.Fprintf(&b, "\nDoctor IDs: {%s}", strings.Join(mappings, ", "))
	return chat.ChatResponse{Response: b.String()}
}

// offerDates lists the dates that still have at least one free time. prefix is
// prepended when the offer replaces a selection that just failed.
func (s *chatService) offerDates(session *entity.ChatSession, prefix string) (chat.ChatResponse, error) {
	dates := make([]string, 0)
	for _, date := range s.appointmentService.AvailableDates() {
		if len(s.appointmentService.AvailableTimes(date)) > 0 {
			dates = append(dates, date)
		}
	}

	if len(dates) == 0 {
		session.ResetFlow()
		return chat.ChatResponse{Response: "No appointment slots are currently available. Please try again later."}, nil
	}

	session.OfferedDates = dates

	lines := make([]string, len(dates))
	for i, date := range dates {
		lines[i] = fmt.Sprintf("%d. %s", i+1, date)
	}

	text := fmt.Sprintf("Available dates for appointment:\n%s\n\nPlease select a date (enter the number):", strings.Join(lines, "\n"))
	return chat.ChatResponse{Response: prefix + text}, nil
}

func (s *chatService) offerTimes(session *entity.ChatSession, prefix string) (chat.ChatResponse, error) {
	date := session.Draft["appointment_date"]

	times := s.appointmentService.AvailableTimes(date)
	if len(times) == 0 {
		delete(session.Draft, "appointment_date")
		session.Step = stepDate
		return s.offerDates(session, fmt.Sprintf("No time slots remain for %s.\n\n", date))
	}

	session.OfferedTimes = times

	lines := make([]string, len(times))
	for i, t := range times {
		lines[i] = fmt.Sprintf("%d. %s", i+1, t)
	}

	text := fmt.Sprintf("Available time slots for %s:\n%s\n\nPlease select a time slot (enter the number):", date, strings.Join(lines, "\n"))
	return chat.ChatResponse{Response: prefix + text}, nil
}

func (s *chatService) confirmBooking(ctx context.Context, session *entity.ChatSession) (chat.ChatResponse, error) {
	rec := entity.AppointmentRecord{
		Name:            session.Draft["name"],
		Email:           session.Draft["email"],
		Phone:           session.Draft["phone"],
		Age:             session.Draft["age"],
		Gender:          session.Draft["gender"],
		Reason:          session.Draft["reason"],
		Doctor:          session.Draft["doctor"],
		DoctorID:        session.Draft["doctor_id"],
		AppointmentDate: session.Draft["appointment_date"],
		AppointmentTime: session.Draft["appointment_time"],
	}

	if err := s.appointmentService.BookRecord(ctx, rec); err != nil {
		// The slot can be taken by a concurrent booking between the offer and
		// the confirmation. Re-offer what is left and keep the draft.
		if errors.Is(err, appointment.ErrSlotNotAvailable) {
			delete(session.Draft, "appointment_time")
			session.Step = stepTime
			return s.offerTimes(session, "That time slot is no longer available.\n\n")
		}
		return chat.ChatResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"doctor":     rec.Doctor,
		"date":       rec.AppointmentDate,
		"time":       rec.AppointmentTime,
	}).Info("Appointment booked via chat")

	summary := "✅ APPOINTMENT CONFIRMED ✅\n\n" +
		fmt.Sprintf("Name: %s\n", rec.Name) +
		fmt.Sprintf("Email: %s\n", rec.Email) +
		fmt.Sprintf("Phone: %s\n", rec.Phone) +
		fmt.Sprintf("Age: %s\n", rec.Age) +
		fmt.Sprintf("Gender: %s\n", rec.Gender) +
		fmt.Sprintf("Doctor: %s\n", rec.Doctor) +
		fmt.Sprintf("Date: %s\n", rec.AppointmentDate) +
		fmt.Sprintf("Time: %s\n", rec.AppointmentTime) +
		fmt.Sprintf("Reason: %s\n\n", rec.Reason) +
		"Your appointment has been booked successfully.\n\n" +
		"You can upload your previous medical history files through the portal.\n" +
		"Please arrive 15 minutes before your scheduled time."

	session.ResetFlow()

	resp := toAppointmentResponse(rec)
	return chat.ChatResponse{
		Response:                summary,
		Appointment:             &resp,
		CanUploadMedicalHistory: true,
	}, nil
}

func toAppointmentResponse(rec entity.AppointmentRecord) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		Name:               rec.Name,
		Email:              rec.Email,
		Phone:              rec.Phone,
		Age:                rec.Age,
		Gender:             rec.Gender,
		Reason:             rec.Reason,
		Doctor:             rec.Doctor,
		DoctorID:           rec.DoctorID,
		AppointmentDate:    rec.AppointmentDate,
		AppointmentTime:    rec.AppointmentTime,
		MedicalHistoryFile: rec.MedicalHistoryFile,
	}
}
