package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/wizard"
)

type loginRequest struct {
	Name    string `json:"name" form:"name"`
	Contact string `json:"contact" form:"contact"`
	Code    string `json:"code" form:"code"`
}

var (
	ErrMissingContact = errors.New("email or phone is required")
	ErrMissingCode    = errors.New("verification code is required")
)

func parseLoginRequest(ctx *fiber.Ctx, needContact bool) (session.Credentials, error) {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return session.Credentials{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	var err error
	if needContact && strings.TrimSpace(req.Contact) == "" {
		err = errors.Join(err, ErrMissingContact)
	}
	if strings.TrimSpace(req.Code) == "" {
		err = errors.Join(err, ErrMissingCode)
	}
	if err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{
		Name:    req.Name,
		Contact: req.Contact,
		Code:    req.Code,
	}, nil
}

type fieldRequest struct {
	Value string `json:"value" form:"value"`
}

type roadmapRequest struct {
	Field wizard.RoadmapField `json:"field" form:"field"`
	Value string              `json:"value" form:"value"`
}

type bannerRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

func parseBody(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
