package recordsHandler

import (
	recordsService "HealthcareGolang/internal/api/records/service"
	"HealthcareGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecordsHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	recordsService recordsService.IRecordsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	recordsService recordsService.IRecordsService,
) *RecordsHandler {
	return &RecordsHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		recordsService: recordsService,
	}
}

func (h *RecordsHandler) Start(srv fiber.Router) {
	recordsGroup := srv.Group("/records")

	recordsGroup.Post("/history", h.AddHistoryEntry)
	recordsGroup.Post("/history/lookup", h.GetHistory)
	recordsGroup.Post("/medications", h.AddMedication)
	recordsGroup.Post("/medications/lookup", h.GetMedications)
}
