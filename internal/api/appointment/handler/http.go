package appointmentHandler

import (
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	"HealthcareGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	appointmentService appointmentService.IAppointmentService
	doctorService      doctorService.IDoctorService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	appointmentService appointmentService.IAppointmentService,
	doctorService doctorService.IDoctorService,
) *AppointmentHandler {
	return &AppointmentHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		appointmentService: appointmentService,
		doctorService:      doctorService,
	}
}

func (h *AppointmentHandler) Start(srv fiber.Router) {
	appointments := srv.Group("/appointments")

	appointments.Post("", h.BookAppointment)
	appointments.Post("/lookup", h.LookupAppointments)
	appointments.Post("/cancel", h.CancelAppointment)
	appointments.Post("/medical-history", h.UploadMedicalHistory)
	appointments.Get("/slots", h.GetAvailableSlots)
}
