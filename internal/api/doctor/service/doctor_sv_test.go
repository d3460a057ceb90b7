package doctorService_test

import (
	"context"
	"testing"

	"HealthcareGolang/internal/api/doctor"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/bcrypt"
	"HealthcareGolang/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (doctorService.IDoctorService, bcrypt.IBcrypt) {
	t.Helper()

	bc := bcrypt.New()
	hash, err := bc.HashPassword("s3cret")
	require.NoError(t, err)

	svc := doctorService.NewWithCatalog(log.NewLogger(), []entity.Doctor{
		{ID: "1", Name: "John Smith", Specialty: "Cardiologist", PasswordHash: hash},
		{ID: "2", Name: "Asha Rao", Specialty: "Dermatologist"},
	}, bc)
	return svc, bc
}

func TestByIDUnknownDoctor(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.ByID(context.Background(), "99")
	assert.ErrorIs(t, err, doctor.ErrDoctorNotFound)
}

func TestBySpecialtyMatchesCaseInsensitive(t *testing.T) {
	svc, _ := newCatalog(t)

	matches := svc.BySpecialty(context.Background(), "cardiologist")
	require.Len(t, matches, 1)
	assert.Equal(t, "John Smith", matches[0].Name)
}

func TestBySpecialtyFallsBackToFullCatalog(t *testing.T) {
	svc, _ := newCatalog(t)

	matches := svc.BySpecialty(context.Background(), "Neurologist")
	assert.Len(t, matches, 2)

	matches = svc.BySpecialty(context.Background(), "")
	assert.Len(t, matches, 2)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.Login(context.Background(), doctor.LoginRequest{DoctorID: "1", Password: "wrong"})
	assert.ErrorIs(t, err, doctor.ErrInvalidCredentials)
}

func TestLoginUnknownDoctor(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.Login(context.Background(), doctor.LoginRequest{DoctorID: "99", Password: "s3cret"})
	assert.ErrorIs(t, err, doctor.ErrInvalidCredentials)
}

func TestLoginWithoutPasswordHash(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.Login(context.Background(), doctor.LoginRequest{DoctorID: "2", Password: "s3cret"})
	assert.ErrorIs(t, err, doctor.ErrLoginUnavailable)
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	svc, _ := newCatalog(t)

	resp, err := svc.Login(context.Background(), doctor.LoginRequest{DoctorID: "1", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "John Smith", resp.Doctor.Name)
}
