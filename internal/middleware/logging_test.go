package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestBodyRedactsSensitiveFields(t *testing.T) {
	out := sanitizeRequestBody("/api/v1/appointments/medical-history",
		`{"email":"jane@example.com","file_content":"aGVsbG8=","password":"x"}`)

	assert.Contains(t, out, `"file_content":"[SECRET]"`)
	assert.Contains(t, out, `"password":"[SECRET]"`)
	assert.Contains(t, out, "jane@example.com")
}

func TestSanitizeRequestBodyDoctorPaths(t *testing.T) {
	out := sanitizeRequestBody("/api/v1/doctors/login",
		`{"doctor_id":"1","password":"s3cret","new_password":"other"}`)

	assert.Contains(t, out, `"password":"[SECRET]"`)
	assert.Contains(t, out, `"new_password":"[SECRET]"`)
	assert.NotContains(t, out, "s3cret")
}

func TestSanitizeRequestBodyNonJSON(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("/api/v1/chat/message", "plain text"))
}
