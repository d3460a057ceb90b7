package doctorService

import (
	"HealthcareGolang/internal/api/doctor"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	jwtPkg "HealthcareGolang/pkg/jwt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const tokenLifetime = 12 * time.Hour

func (s *doctorService) List(_ context.Context) []entity.Doctor {
	return append([]entity.Doctor(nil), s.doctors...)
}

func (s *doctorService) ByID(_ context.Context, id string) (entity.Doctor, error) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return entity.Doctor{}, doctor.ErrDoctorNotFound
}

// BySpecialty does a case-insensitive substring match. When nothing matches
// the whole catalog comes back, so the symptom flow always has doctors to
// offer.
func (s *doctorService) BySpecialty(_ context.Context, specialty string) []entity.Doctor {
	needle := strings.ToLower(strings.TrimSpace(specialty))
	if needle == "" {
		return s.List(nil)
	}

	var matches []entity.Doctor
	for _, d := range s.doctors {
		hay := strings.ToLower(d.Specialty)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			matches = append(matches, d)
		}
	}

	if len(matches) == 0 {
		return s.List(nil)
	}
	return matches
}

func (s *doctorService) Login(ctx context.Context, req doctor.LoginRequest) (doctor.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	d, err := s.ByID(ctx, req.DoctorID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"doctor_id":  req.DoctorID,
		}).Warn("Login attempt for unknown doctor")
		return doctor.LoginResponse{}, doctor.ErrInvalidCredentials
	}

	if d.PasswordHash == "" {
		return doctor.LoginResponse{}, doctor.ErrLoginUnavailable
	}

	if err := s.bcrypt.ComparePassword(d.PasswordHash, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"doctor_id":  req.DoctorID,
		}).Warn("Login attempt with wrong password")
		return doctor.LoginResponse{}, doctor.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":   d.ID,
		"name": d.Name,
	}, tokenLifetime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign doctor token")
		return doctor.LoginResponse{}, err
	}

	return doctor.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Doctor: doctor.DoctorResponse{
			ID:        d.ID,
			Name:      d.Name,
			Specialty: d.Specialty,
		},
	}, nil
}
