package doctor

import "HealthcareGolang/pkg/response"

var (
	ErrDoctorNotFound     = response.NewError(404, "doctor not found")
	ErrInvalidCredentials = response.NewError(401, "invalid doctor id or password")
	ErrLoginUnavailable   = response.NewError(503, "doctor login is not configured")
)
