package records

type AddHistoryRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Condition  string `json:"condition" validate:"required"`
	Date       string `json:"date"`
	Details    string `json:"details"`
}

type HistoryEntryResponse struct {
	Condition string `json:"condition"`
	Date      string `json:"date"`
	Details   string `json:"details,omitempty"`
}

type HistoryResponse struct {
	Identifier string                 `json:"identifier"`
	Entries    []HistoryEntryResponse `json:"entries"`
}

type AddMedicationRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type MedicationResponse struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type MedicationsResponse struct {
	Identifier  string               `json:"identifier"`
	Medications []MedicationResponse `json:"medications"`
}

type LookupRecordsRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}
