package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goserg/arcesports/internal/connect"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/tournament"
	"github.com/goserg/arcesports/internal/wizard"
)

type errorResponse struct {
	Error   string              `json:"error"`
	Errors  []string            `json:"errors,omitempty"`
	Step    int                 `json:"step,omitempty"`
	Fields  []wizard.FieldError `json:"fields,omitempty"`
	Missing []wizard.Field      `json:"missing,omitempty"`
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	resp := errorResponse{Error: err.Error()}
	code := fiber.StatusInternalServerError

	var verr *wizard.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		code = fiber.StatusUnprocessableEntity
		resp.Step = int(verr.Step)
		resp.Fields = verr.Fields
		resp.Missing = verr.MissingFields()
	case errors.Is(err, wizard.ErrNotFinalStep):
		code = fiber.StatusConflict
	case errors.Is(err, wizard.ErrUnknownField), errors.Is(err, wizard.ErrNotTextField):
		code = fiber.StatusBadRequest
	case errors.Is(err, ErrMissingContact), errors.Is(err, ErrMissingCode):
		code = fiber.StatusBadRequest
		resp.Errors = newData("").WithErrors(err).Errors
	case errors.Is(err, session.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, tournament.ErrNotFound), errors.Is(err, connect.ErrNoCandidates):
		code = fiber.StatusNotFound
	case errors.As(err, &ferr):
		code = ferr.Code
	}
	if code == fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(code).JSON(resp)
}
