package appointment

type MedicalHistoryFilePayload struct {
	FileName    string `json:"file_name" validate:"required"`
	FileContent string `json:"file_content" validate:"required"`
}

type BookAppointmentRequest struct {
	Name               string                     `json:"name" validate:"required"`
	Email              string                     `json:"email" validate:"required,email"`
	Phone              string                     `json:"phone" validate:"required,len=10,numeric"`
	Age                string                     `json:"age"`
	Gender             string                     `json:"gender"`
	Reason             string                     `json:"reason"`
	DoctorID           string                     `json:"doctor_id" validate:"required"`
	AppointmentDate    string                     `json:"appointment_date" validate:"required"`
	AppointmentTime    string                     `json:"appointment_time" validate:"required"`
	MedicalHistoryFile *MedicalHistoryFilePayload `json:"medical_history_file,omitempty"`
}

type LookupAppointmentsRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type CancelAppointmentRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
	// Index selects among multiple matches, 1-based. Zero means "only match".
	Index int `json:"index"`
}

type UploadMedicalHistoryRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
	// Index selects among multiple matches, 1-based. Zero means "only match".
	Index       int    `json:"index"`
	FileName    string `json:"file_name" validate:"required"`
	FileContent string `json:"file_content" validate:"required"`
}

type UploadMedicalHistoryResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

type AppointmentResponse struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Age                string `json:"age,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Reason             string `json:"reason,omitempty"`
	Doctor             string `json:"doctor"`
	DoctorID           string `json:"doctor_id,omitempty"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	MedicalHistoryFile string `json:"medical_history_file,omitempty"`
}

type LookupAppointmentsResponse struct {
	Found        bool                  `json:"found"`
	Count        int                   `json:"count"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type CancelAppointmentResponse struct {
	Message   string              `json:"message"`
	Cancelled AppointmentResponse `json:"cancelled"`
}

type MultipleMatchesResponse struct {
	Message      string                `json:"message"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type SlotsResponse struct {
	AvailableSlots map[string][]string `json:"available_slots"`
}
