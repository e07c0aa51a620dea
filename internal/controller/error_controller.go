package controller

import (
	"notebook-be/internal/dto"
	"notebook-be/internal/pkg/logger"
	"notebook-be/internal/pkg/mailer"
	"notebook-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// IErrorController receives error reports from the web client and
// forwards them to the operator by email.
type IErrorController interface {
	RegisterRoutes(r fiber.Router)
	Report(ctx *fiber.Ctx) error
}

type errorController struct {
	mailer mailer.IEmailService
	logger logger.ILogger
}

func NewErrorController(mailer mailer.IEmailService, logger logger.ILogger) IErrorController {
	return &errorController{
		mailer: mailer,
		logger: logger,
	}
}

func (c *errorController) RegisterRoutes(r fiber.Router) {
	r.Post("/errors", c.Report)
}

func (c *errorController) Report(ctx *fiber.Ctx) error {
	var req dto.ErrorReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Delivery failure must not fail the report endpoint.
	if err := c.mailer.SendErrorReport(req.Message, req.Source); err != nil {
		c.logger.Error("mailer", "failed to send error report", map[string]interface{}{
			"error":  err.Error(),
			"source": req.Source,
		})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
