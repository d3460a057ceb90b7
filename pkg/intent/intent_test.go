package intent_test

import (
	"testing"

	"HealthcareGolang/pkg/intent"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want intent.Intent
	}{
		{"book with appointment", "I want to book an appointment", intent.IntentBookAppointment},
		{"book wins over symptom", "book an appointment for my symptoms", intent.IntentBookAppointment},
		{"check", "can I check my appointment status", intent.IntentCheckAppointment},
		{"cancel", "please cancel my appointment", intent.IntentCancelAppointment},
		{"doctors available", "which doctors are available?", intent.IntentListDoctors},
		{"doctor list", "show me the doctor list", intent.IntentListDoctors},
		{"doctor alone is not enough", "my doctor said hi", intent.IntentUnknown},
		{"symptom", "I have some symptoms to discuss", intent.IntentCheckSymptoms},
		{"punctuation and case folded", "BOOK!!! an Appointment???", intent.IntentBookAppointment},
		{"free text", "what are your opening hours", intent.IntentUnknown},
		{"empty", "", intent.IntentUnknown},
	}

	c := intent.NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestNeedsMenu(t *testing.T) {
	c := intent.NewClassifier()

	assert.True(t, c.NeedsMenu("help me out"))
	assert.True(t, c.NeedsMenu("what are my options?"))
	assert.True(t, c.NeedsMenu("show the menu"))
	assert.False(t, c.NeedsMenu("I feel dizzy"))
}
