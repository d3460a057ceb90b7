package doctorService

import (
	"HealthcareGolang/internal/api/doctor"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/bcrypt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IDoctorService interface {
	List(ctx context.Context) []entity.Doctor
	ByID(ctx context.Context, id string) (entity.Doctor, error)
	BySpecialty(ctx context.Context, specialty string) []entity.Doctor
	Login(ctx context.Context, req doctor.LoginRequest) (doctor.LoginResponse, error)
}

// doctorService serves the static catalog. Doctors are loaded once at startup
// and never mutated, so reads need no locking. Order follows the file and is
// stable across calls; the chat menus rely on that.
type doctorService struct {
	log     *logrus.Logger
	bcrypt  bcrypt.IBcrypt
	doctors []entity.Doctor
}

type doctorsFile struct {
	Doctors []entity.Doctor `json:"doctors"`
}

func New(log *logrus.Logger, path string, bc bcrypt.IBcrypt) (IDoctorService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file doctorsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"doctors": len(file.Doctors),
		"path":    path,
	}).Info("Doctor catalog loaded")

	return NewWithCatalog(log, file.Doctors, bc), nil
}

func NewWithCatalog(log *logrus.Logger, doctors []entity.Doctor, bc bcrypt.IBcrypt) IDoctorService {
	return &doctorService{
		log:     log,
		bcrypt:  bc,
		doctors: doctors,
	}
}
