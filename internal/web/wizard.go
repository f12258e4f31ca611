package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/wizard"
)

type wizardView struct {
	Open     bool                   `json:"open"`
	Step     int                    `json:"step"`
	Title    string                 `json:"title"`
	Required []wizard.Field         `json:"required"`
	Draft    domain.TournamentDraft `json:"draft"`
	Games    []domain.Game          `json:"games"`
}

func viewWizard(w *wizard.Wizard) wizardView {
	required := w.RequiredFields()
	if required == nil {
		required = []wizard.Field{}
	}
	return wizardView{
		Open:     w.IsOpen(),
		Step:     int(w.Step()),
		Title:    w.Step().Title(),
		Required: required,
		Draft:    w.Draft(),
		Games:    domain.Games(),
	}
}

func (s *Server) wizardState(c *fiber.Ctx) error {
	return c.JSON(viewWizard(s.clientFor(c).wizard))
}

func (s *Server) handleWizard(c *fiber.Ctx) error {
	return s.wizardState(c)
}

func (s *Server) handleWizardOpen(c *fiber.Ctx) error {
	s.clientFor(c).wizard.Open()
	return s.wizardState(c)
}

func (s *Server) handleWizardClose(c *fiber.Ctx) error {
	s.clientFor(c).wizard.Close()
	return s.wizardState(c)
}

func (s *Server) handleWizardNext(c *fiber.Ctx) error {
	if err := s.clientFor(c).wizard.Next(); err != nil {
		return err
	}
	return s.wizardState(c)
}

func (s *Server) handleWizardPrevious(c *fiber.Ctx) error {
	s.clientFor(c).wizard.Previous()
	return s.wizardState(c)
}

func (s *Server) handleWizardField(c *fiber.Ctx) error {
	var req fieldRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := s.clientFor(c).wizard.EditField(wizard.Field(c.Params("field")), req.Value); err != nil {
		return err
	}
	return s.wizardState(c)
}

func (s *Server) handleWizardBanner(c *fiber.Ctx) error {
	var req bannerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Filename == "" {
		return fiber.NewError(fiber.StatusBadRequest, "banner filename is required")
	}
	s.clientFor(c).wizard.SetBanner(&domain.Banner{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	return s.wizardState(c)
}

func (s *Server) handleWizardRemoveBanner(c *fiber.Ctx) error {
	s.clientFor(c).wizard.SetBanner(nil)
	return s.wizardState(c)
}

func (s *Server) handleRoadmapAdd(c *fiber.Ctx) error {
	index := s.clientFor(c).wizard.AddRoadmapStage()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"index": index})
}

func (s *Server) handleRoadmapUpdate(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid roadmap index")
	}
	var req roadmapRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := s.clientFor(c).wizard.UpdateRoadmapStage(index, req.Field, req.Value); err != nil {
		return err
	}
	return s.wizardState(c)
}

func (s *Server) handleRoadmapRemove(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid roadmap index")
	}
	s.clientFor(c).wizard.RemoveRoadmapStage(index)
	return s.wizardState(c)
}

func (s *Server) handleWizardSubmit(c *fiber.Ctx) error {
	t, err := s.clientFor(c).wizard.Submit(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}
