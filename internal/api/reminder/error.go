package reminder

import "HealthcareGolang/pkg/response"

var (
	ErrInvalidDueTime  = response.NewError(400, "due time must be a valid RFC3339 timestamp")
	ErrPersistReminder = response.NewError(500, "failed to store reminder")
)
