package reminderHandler

import (
	"HealthcareGolang/internal/api/reminder"
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"HealthcareGolang/pkg/handlerUtil"
	"HealthcareGolang/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReminderHandler) SetReminder(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing set reminder request")

	var req reminder.SetReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return errHandler.Handle(ctx, requestID, reminder.ErrInvalidDueTime, ctx.Path(), "parse_due_time")
	}

	rem := entity.Reminder{
		Type:       entity.ReminderType(req.Type),
		Identifier: req.Identifier,
		DueAt:      dueAt,
		Details:    req.Details,
	}

	if err := h.reminderService.Set(c, rem); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_reminder")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, reminder.ReminderResponse{
			Type:       req.Type,
			Identifier: req.Identifier,
			DueAt:      dueAt.Format(time.RFC3339),
			Details:    req.Details,
		})
	}
}
