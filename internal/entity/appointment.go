package entity

import "errors"

// AppointmentRecord is a confirmed booking. There is no generated primary key:
// records are located by exact (email, phone) lookups and removed by value
// equality, so two textually-identical records are indistinguishable.
//
// Doctor and DoctorID are a value snapshot taken at booking time, not a live
// reference into the doctor catalog. Renaming a doctor later does not change
// existing records.
type AppointmentRecord struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Age                string `json:"age"`
	Gender             string `json:"gender"`
	Reason             string `json:"reason"`
	Doctor             string `json:"doctor"`
	DoctorID           string `json:"doctor_id,omitempty"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	MedicalHistoryFile string `json:"medical_history_file,omitempty"`
}

// Validate checks the fields a record must carry before it may enter the store.
func (r AppointmentRecord) Validate() error {
	switch {
	case r.Name == "":
		return errors.New("missing required field: name")
	case r.Email == "":
		return errors.New("missing required field: email")
	case r.Phone == "":
		return errors.New("missing required field: phone")
	case r.Doctor == "":
		return errors.New("missing required field: doctor")
	case r.AppointmentDate == "":
		return errors.New("missing required field: appointment_date")
	case r.AppointmentTime == "":
		return errors.New("missing required field: appointment_time")
	}
	return nil
}

// Matches reports whether the record belongs to the given identifier pair.
// A record matches when either supplied field is an exact match; empty
// arguments never match.
func (r AppointmentRecord) Matches(email, phone string) bool {
	if email != "" && r.Email == email {
		return true
	}
	if phone != "" && r.Phone == phone {
		return true
	}
	return false
}
