package intent

type Intent string

const (
	IntentBookAppointment   Intent = "book_appointment"
	IntentCheckAppointment  Intent = "check_appointment"
	IntentCancelAppointment Intent = "cancel_appointment"
	IntentListDoctors       Intent = "list_doctors"
	IntentCheckSymptoms     Intent = "check_symptoms"
	IntentUnknown           Intent = "unknown"
)

type IClassifier interface {
	Classify(text string) Intent
	NeedsMenu(text string) bool
}
