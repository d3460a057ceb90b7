package entity

import "time"

type ReminderType string

const (
	ReminderAppointment ReminderType = "appointment"
	ReminderMedication  ReminderType = "medication"
)

// Reminder is one pending notification. Identifier is the patient email or
// phone it should reach. Reminders fire once and are then removed; there is
// no retry.
type Reminder struct {
	Type       ReminderType `json:"type"`
	Identifier string       `json:"identifier"`
	DueAt      time.Time    `json:"due_at"`
	Details    string       `json:"details"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Due reports whether the reminder should fire at the given instant.
func (r Reminder) Due(now time.Time) bool {
	return !r.DueAt.After(now)
}
