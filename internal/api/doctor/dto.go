package doctor

type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

type LoginRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt int64          `json:"expires_at"`
	Doctor    DoctorResponse `json:"doctor"`
}
