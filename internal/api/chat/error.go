package chat

import "HealthcareGolang/pkg/response"

var (
	ErrEmptyMessage         = response.NewError(400, "no message provided")
	ErrAssistantUnavailable = response.NewError(503, "symptom assessment is currently unavailable")
)
