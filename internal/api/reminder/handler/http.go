package reminderHandler

import (
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReminderHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	reminderService reminderService.IReminderService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reminderService reminderService.IReminderService,
) *ReminderHandler {
	return &ReminderHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) Start(srv fiber.Router) {
	srv.Post("/reminders", h.SetReminder)
}
