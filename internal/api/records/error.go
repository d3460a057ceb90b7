package records

import "HealthcareGolang/pkg/response"

var (
	ErrHistoryNotFound     = response.NewError(404, "no medical history found for the provided identifier")
	ErrMedicationsNotFound = response.NewError(404, "no medications found for the provided identifier")
	ErrPersistRecords      = response.NewError(500, "failed to save medical records")
)
