package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/goserg/arcesports/internal/access"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/tournament"
	"github.com/goserg/arcesports/internal/web/webpath"
)

func (s *Server) handleHome(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "ARC Esports").
		With("games", domain.Games()).
		With("featured", s.catalog.Tournaments("")))
}

func (s *Server) handleNav(c *fiber.Ctx) error {
	return c.JSON(access.NavItems(s.gate.Policy(), identityOf(c)))
}

func (s *Server) handleTournaments(c *fiber.Ctx) error {
	query := c.Query("q")
	community := []domain.Tournament{}
	for _, t := range s.registry.List() {
		if t.Status == domain.StatusApproved {
			community = append(community, t)
		}
	}
	return c.JSON(s.page(c, "Tournaments").
		With("query", query).
		With("tournaments", s.catalog.Tournaments(query)).
		With("community", community))
}

// handleTournament shows one created tournament. Until it is approved only
// admins can see it.
func (s *Server) handleTournament(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tournament id")
	}
	t, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	if t.Status != domain.StatusApproved && domain.KindOf(identityOf(c)) != domain.KindAdmin {
		return tournament.ErrNotFound
	}
	return c.JSON(s.page(c, t.Name).With("tournament", t))
}

func (s *Server) handleTeams(c *fiber.Ctx) error {
	query := c.Query("q")
	return c.JSON(s.page(c, "Teams").
		With("query", query).
		With("teams", s.catalog.Teams(query)).
		With("openings", s.catalog.Openings()))
}

func (s *Server) handleConnect(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Random Connect").
		With("games", domain.Games()).
		With("online", len(s.catalog.ConnectPool())))
}

func (s *Server) handleMatch(c *fiber.Ctx) error {
	user, err := s.matchmaker.Match(c.UserContext(), c.Query("game"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"match": user})
}

func (s *Server) handleVideoChat(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Video Chat").
		With("peer", nil))
}

func (s *Server) handleRecruitment(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Recruitment").
		With("posts", s.catalog.Recruitment()))
}

func (s *Server) handleFeed(c *fiber.Ctx) error {
	kind := domain.KindOf(identityOf(c))
	return c.JSON(s.page(c, "Feed").
		With("posts", s.catalog.Feed(kind)))
}

func (s *Server) handleMessages(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Messages").
		With("conversations", []any{}))
}

func (s *Server) handleProfile(c *fiber.Ctx) error {
	d := s.page(c, "Profile")
	if m, ok := identityOf(c).(domain.Member); ok {
		d = d.With("profile", m.Profile())
	}
	if team, ok := s.catalog.TeamByName(d.Identity.Name); ok {
		d = d.With("team", team)
	}
	return c.JSON(d)
}

func (s *Server) handleAdmin(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Admin Panel").
		With("pending", s.registry.Pending()).
		With("tournaments", s.registry.List()))
}

func (s *Server) handleApprove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tournament id")
	}
	t, err := s.registry.Approve(id)
	if err != nil {
		return err
	}
	return c.JSON(t)
}

func (s *Server) handleGetAuth(c *fiber.Ctx) error {
	return c.JSON(s.page(c, "Login").
		With("fields", []string{"name", "contact", "code"}))
}

func (s *Server) handlePlayerLogin(c *fiber.Ctx) error {
	creds, err := parseLoginRequest(c, true)
	if err != nil {
		return err
	}
	s.login(c, session.PlayerLogin(creds))
	return c.Redirect(webpath.Home, fiber.StatusSeeOther)
}

func (s *Server) handleTeamLogin(c *fiber.Ctx) error {
	creds, err := parseLoginRequest(c, true)
	if err != nil {
		return err
	}
	s.login(c, session.TeamLogin(creds))
	return c.Redirect(webpath.Feed, fiber.StatusSeeOther)
}

func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	creds, err := parseLoginRequest(c, false)
	if err != nil {
		return err
	}
	admin, err := session.AdminLogin(creds, s.cfg.Admin.Password)
	if err != nil {
		return err
	}
	s.login(c, admin)
	return c.Redirect(webpath.Admin, fiber.StatusSeeOther)
}

// login switches the client to m and closes the creation dialog.
func (s *Server) login(c *fiber.Ctx, m domain.Member) {
	cl := s.clientFor(c)
	cl.wizard.Close()
	cl.session.Login(m)
}

func (s *Server) handleSignOut(c *fiber.Ctx) error {
	if cl := clientOf(c); cl != nil {
		cl.wizard.Close()
		cl.session.Logout()
	}
	return c.Redirect(webpath.Home)
}

func (s *Server) handleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
}
