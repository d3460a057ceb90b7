package appointmentHandler

import (
	"HealthcareGolang/internal/api/appointment"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"HealthcareGolang/pkg/handlerUtil"
	"HealthcareGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toResponse(rec entity.AppointmentRecord) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		Name:               rec.Name,
		Email:              rec.Email,
		Phone:              rec.Phone,
		Age:                rec.Age,
		Gender:             rec.Gender,
		Reason:             rec.Reason,
		Doctor:             rec.Doctor,
		DoctorID:           rec.DoctorID,
		AppointmentDate:    rec.AppointmentDate,
		AppointmentTime:    rec.AppointmentTime,
		MedicalHistoryFile: rec.MedicalHistoryFile,
	}
}

func (h *AppointmentHandler) BookAppointment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing book appointment request")

	var req appointment.BookAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	doctor, err := h.doctorService.ByID(c, req.DoctorID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, appointment.ErrUnknownDoctor, ctx.Path(), "resolve_doctor")
	}

	rec, err := h.appointmentService.Book(c, req, doctor)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "book_appointment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message":     "Appointment booked successfully",
			"appointment": toResponse(rec),
		})
	}
}

func (h *AppointmentHandler) LookupAppointments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing lookup appointments request")

	var req appointment.LookupAppointmentsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Email == "" && req.Phone == "" {
		return errHandler.Handle(ctx, requestID, appointment.ErrMissingIdentifier, ctx.Path(), "lookup_appointments")
	}

	matches := h.appointmentService.Lookup(c, req.Email, req.Phone)

	response := appointment.LookupAppointmentsResponse{
		Found:        len(matches) > 0,
		Count:        len(matches),
		Appointments: make([]appointment.AppointmentResponse, 0, len(matches)),
	}
	for _, rec := range matches {
		response.Appointments = append(response.Appointments, toResponse(rec))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AppointmentHandler) CancelAppointment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing cancel appointment request")

	var req appointment.CancelAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Email == "" && req.Phone == "" {
		return errHandler.Handle(ctx, requestID, appointment.ErrMissingIdentifier, ctx.Path(), "cancel_appointment")
	}

	cancelled, candidates, err := h.appointmentService.Cancel(c, req.Email, req.Phone, req.Index)
	if err != nil {
		// Multiple matches are not a failure: the client gets the candidate
		// list and retries with an index.
		if errors.Is(err, appointment.ErrMultipleAppointments) {
			response := appointment.MultipleMatchesResponse{
				Message:      "Multiple appointments found, select one by index",
				Appointments: make([]appointment.AppointmentResponse, 0, len(candidates)),
			}
			for _, rec := range candidates {
				response.Appointments = append(response.Appointments, toResponse(rec))
			}
			return errHandler.HandleSuccess(ctx, fiber.StatusConflict, response)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "cancel_appointment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, appointment.CancelAppointmentResponse{
			Message:   "Appointment cancelled successfully",
			Cancelled: toResponse(cancelled),
		})
	}
}

func (h *AppointmentHandler) UploadMedicalHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing upload medical history request")

	var req appointment.UploadMedicalHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Email == "" && req.Phone == "" {
		return errHandler.Handle(ctx, requestID, appointment.ErrMissingIdentifier, ctx.Path(), "upload_medical_history")
	}

	updated, candidates, err := h.appointmentService.AttachMedicalHistory(c, req)
	if err != nil {
		// Multiple matches are not a failure: the client gets the candidate
		// list and retries with an index.
		if errors.Is(err, appointment.ErrMultipleAppointments) {
			response := appointment.MultipleMatchesResponse{
				Message:      "Multiple appointments found, select one by index",
				Appointments: make([]appointment.AppointmentResponse, 0, len(candidates)),
			}
			for _, rec := range candidates {
				response.Appointments = append(response.Appointments, toResponse(rec))
			}
			return errHandler.HandleSuccess(ctx, fiber.StatusConflict, response)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_medical_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, appointment.UploadMedicalHistoryResponse{
			Message:     "Medical history file uploaded successfully",
			Appointment: toResponse(updated),
		})
	}
}

func (h *AppointmentHandler) GetAvailableSlots(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get available slots request")

	slots := h.appointmentService.AvailableSlots(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, appointment.SlotsResponse{
			AvailableSlots: slots,
		})
	}
}
