package reminder

type SetReminderRequest struct {
	Type       string `json:"type" validate:"required,oneof=appointment medication"`
	Identifier string `json:"identifier" validate:"required"`
	DueAt      string `json:"due_at" validate:"required"` // RFC3339
	Details    string `json:"details"`
}

type ReminderResponse struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
	DueAt      string `json:"due_at"`
	Details    string `json:"details,omitempty"`
}
