package chat

import "HealthcareGolang/internal/api/appointment"

type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

// ChatResponse always carries the conversational text; the structured fields
// are filled when the turn produced machine-readable data (a confirmed
// booking, lookup matches, a symptom assessment).
type ChatResponse struct {
	Response                string                            `json:"response"`
	SessionID               string                            `json:"session_id"`
	Appointment             *appointment.AppointmentResponse  `json:"appointment,omitempty"`
	Appointments            []appointment.AppointmentResponse `json:"appointments,omitempty"`
	Assessment              string                            `json:"assessment,omitempty"`
	RecommendedSpecialist   string                            `json:"recommended_specialist,omitempty"`
	CanUploadMedicalHistory bool                              `json:"can_upload_medical_history,omitempty"`
}

type WelcomeResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type CheckSymptomsRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
}

type CheckSymptomsResponse struct {
	Assessment            string `json:"assessment"`
	RecommendedSpecialist string `json:"recommended_specialist"`
}
