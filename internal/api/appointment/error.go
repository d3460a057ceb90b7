package appointment

import "HealthcareGolang/pkg/response"

var (
	ErrAppointmentNotFound  = response.NewError(404, "no appointment found with the provided information")
	ErrMultipleAppointments = response.NewError(409, "multiple appointments match the provided information")
	ErrSlotNotAvailable     = response.NewError(409, "selected time slot is no longer available")
	ErrMissingIdentifier    = response.NewError(400, "email or phone number is required")
	ErrInvalidSelection     = response.NewError(400, "invalid appointment selection")
	ErrUnknownDoctor        = response.NewError(400, "unknown doctor id")
	ErrInvalidAppointment   = response.NewError(400, "invalid appointment data")
	ErrStoreMedicalFile     = response.NewError(400, "failed to store medical history file")
	ErrMedicalFileNotFound  = response.NewError(404, "medical history file not found")
	ErrPersistAppointments  = response.NewError(500, "failed to save appointments")
)
