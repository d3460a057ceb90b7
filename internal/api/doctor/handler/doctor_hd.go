package doctorHandler

import (
	"HealthcareGolang/internal/api/appointment"
	"HealthcareGolang/internal/api/doctor"
	contextPkg "HealthcareGolang/pkg/context"
	"HealthcareGolang/pkg/handlerUtil"
	jwtPkg "HealthcareGolang/pkg/jwt"
	"HealthcareGolang/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *DoctorHandler) GetDoctors(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get doctors request")

	doctors := h.doctorService.List(c)

	response := doctor.DoctorListResponse{
		Doctors: make([]doctor.DoctorResponse, 0, len(doctors)),
	}
	for _, d := range doctors {
		response.Doctors = append(response.Doctors, doctor.DoctorResponse{
			ID:        d.ID,
			Name:      d.Name,
			Specialty: d.Specialty,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *DoctorHandler) Login(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing doctor login request")

	var req doctor.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.doctorService.Login(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "doctor_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *DoctorHandler) GetDoctorAppointments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing doctor appointments request")

	doctorData, err := jwtPkg.GetDoctorLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	records := h.appointmentService.ByDoctor(c, doctorData.ID, doctorData.Name)

	appointments := make([]appointment.AppointmentResponse, 0, len(records))
	for _, rec := range records {
		appointments = append(appointments, appointment.AppointmentResponse{
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
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"doctor":       doctorData.Name,
			"count":        len(appointments),
			"appointments": appointments,
		})
	}
}

// GetMedicalHistoryFile serves a patient's uploaded file to the portal. The
// filename comes from the appointment record's medical_history_file field.
func (h *DoctorHandler) GetMedicalHistoryFile(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing medical history file request")

	if _, err := jwtPkg.GetDoctorLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	path, err := h.appointmentService.MedicalHistoryFilePath(ctx.Params("filename"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_medical_history_file")
	}

	return ctx.SendFile(path)
}
