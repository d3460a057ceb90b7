package doctorHandler

import (
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	"HealthcareGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	doctorService      doctorService.IDoctorService
	appointmentService appointmentService.IAppointmentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	doctorService doctorService.IDoctorService,
	appointmentService appointmentService.IAppointmentService,
) *DoctorHandler {
	return &DoctorHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		doctorService:      doctorService,
		appointmentService: appointmentService,
	}
}

func (h *DoctorHandler) Start(srv fiber.Router) {
	doctors := srv.Group("/doctors")

	doctors.Get("", h.GetDoctors)
	doctors.Post("/login", h.Login)
	doctors.Post("/appointments", h.middleware.NewTokenMiddleware, h.GetDoctorAppointments)
	doctors.Get("/medical-history-files/:filename", h.middleware.NewTokenMiddleware, h.GetMedicalHistoryFile)
}
