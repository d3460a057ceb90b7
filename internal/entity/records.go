package entity

// MedicalHistory groups the condition entries recorded for one patient
// identifier (email or phone).
type MedicalHistory struct {
	Identifier string                `json:"identifier"`
	Entries    []MedicalHistoryEntry `json:"entries"`
}

type MedicalHistoryEntry struct {
	Condition string `json:"condition"`
	Date      string `json:"date"`
	Details   string `json:"details,omitempty"`
}

// MedicationList groups the medications recorded for one patient identifier.
type MedicationList struct {
	Identifier  string       `json:"identifier"`
	Medications []Medication `json:"medications"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
