package entity

import (
	"sync"
	"time"
)

type ChatFlow uint8

const (
	FlowNone ChatFlow = iota
	FlowBooking
	FlowChecking
	FlowCancelling
	FlowSymptoms
)

func (f ChatFlow) String() string {
	switch f {
	case FlowBooking:
		return "booking"
	case FlowChecking:
		return "checking"
	case FlowCancelling:
		return "cancelling"
	case FlowSymptoms:
		return "symptoms"
	default:
		return "none"
	}
}

// ChatSession holds all conversational state for one visitor. Everything in it
// is ephemeral; a confirmed booking moves into the appointment store and the
// session forgets it.
//
// The embedded mutex serializes message handling per session: the dialogue
// service holds it for the full duration of one message, so two concurrent
// messages on the same session never interleave step transitions.
type ChatSession struct {
	mu sync.Mutex

	ID   string
	Flow ChatFlow
	Step string

	// Draft accumulates booking answers keyed by field name (name, email,
	// phone, age, gender, reason, doctor, doctor_id, appointment_date,
	// appointment_time).
	Draft map[string]string

	// Offered lists back the 1-based index selections in the booking flow.
	OfferedDates []string
	OfferedTimes []string

	// Candidates is the ambiguous-match list during cancellation.
	Candidates []AppointmentRecord

	// Symptom-flow scratch.
	RecommendedSpecialist string
	RecommendedDoctor     string
	RecommendedDoctorID   string

	CreatedAt  time.Time
	LastActive time.Time
	ExpiresAt  time.Time
}

func (s *ChatSession) Lock()   { s.mu.Lock() }
func (s *ChatSession) Unlock() { s.mu.Unlock() }

// ResetFlow drops all flow state and scratch data but keeps the session alive
// under the same id.
func (s *ChatSession) ResetFlow() {
	s.Flow = FlowNone
	s.Step = ""
	s.Draft = make(map[string]string)
	s.OfferedDates = nil
	s.OfferedTimes = nil
	s.Candidates = nil
	s.RecommendedSpecialist = ""
	s.RecommendedDoctor = ""
	s.RecommendedDoctorID = ""
}
