package recordsHandler

import (
	"HealthcareGolang/internal/api/records"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"HealthcareGolang/pkg/handlerUtil"
	"HealthcareGolang/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toHistoryResponse(h entity.MedicalHistory) records.HistoryResponse {
	resp := records.HistoryResponse{
		Identifier: h.Identifier,
		Entries:    make([]records.HistoryEntryResponse, 0, len(h.Entries)),
	}
	for _, e := range h.Entries {
		resp.Entries = append(resp.Entries, records.HistoryEntryResponse{
			Condition: e.Condition,
			Date:      e.Date,
			Details:   e.Details,
		})
	}
	return resp
}

func toMedicationsResponse(m entity.MedicationList) records.MedicationsResponse {
	resp := records.MedicationsResponse{
		Identifier:  m.Identifier,
		Medications: make([]records.MedicationResponse, 0, len(m.Medications)),
	}
	for _, med := range m.Medications {
		resp.Medications = append(resp.Medications, records.MedicationResponse{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			StartDate: med.StartDate,
			EndDate:   med.EndDate,
		})
	}
	return resp
}

func (h *RecordsHandler) AddHistoryEntry(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add history entry request")

	var req records.AddHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	history, err := h.recordsService.AddHistoryEntry(c, req.Identifier, entity.MedicalHistoryEntry{
		Condition: req.Condition,
		Date:      req.Date,
		Details:   req.Details,
	})
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_history_entry")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toHistoryResponse(history))
	}
}

func (h *RecordsHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get history request")

	var req records.LookupRecordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	history, err := h.recordsService.GetHistory(c, req.Identifier)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toHistoryResponse(history))
	}
}

func (h *RecordsHandler) AddMedication(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add medication request")

	var req records.AddMedicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	medications, err := h.recordsService.AddMedication(c, req.Identifier, entity.Medication{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_medication")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toMedicationsResponse(medications))
	}
}

func (h *RecordsHandler) GetMedications(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get medications request")

	var req records.LookupRecordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	medications, err := h.recordsService.GetMedications(c, req.Identifier)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_medications")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toMedicationsResponse(medications))
	}
}
