package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goserg/arcesports/internal/access"
	"github.com/goserg/arcesports/internal/catalog"
	"github.com/goserg/arcesports/internal/config"
	"github.com/goserg/arcesports/internal/connect"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/tournament"
	"github.com/goserg/arcesports/internal/web/webpath"
	"github.com/goserg/arcesports/internal/wizard"
	"github.com/sirupsen/logrus"
)

const clientTTL = 24 * time.Hour

type Server struct {
	app        *fiber.App
	cfg        config.Config
	gate       *access.Gate
	catalog    *catalog.Catalog
	registry   *tournament.Registry
	matchmaker *connect.Matchmaker
	clients    *clients
	log        *logrus.Entry
}

func New(
	cfg config.Config,
	gate *access.Gate,
	cat *catalog.Catalog,
	registry *tournament.Registry,
	matchmaker *connect.Matchmaker,
	l *logrus.Logger,
) *Server {
	server := Server{
		cfg:        cfg,
		gate:       gate,
		catalog:    cat,
		registry:   registry,
		matchmaker: matchmaker,
		log:        l.WithField("from", "web"),
	}
	server.clients = newClients(clientTTL, func() *client {
		return server.newClient(l)
	})

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Server.Debug,
	})
	app.Use(recover.New())
	app.Use(server.bindClient)

	app.Get(webpath.Home, server.guard(access.PageHome), server.handleHome)
	app.Get(webpath.Nav, server.handleNav)
	app.Get(webpath.Tournaments, server.guard(access.PageTournaments), server.handleTournaments)
	app.Get(webpath.Teams, server.guard(access.PageTeams), server.handleTeams)
	app.Get(webpath.Connect, server.guard(access.PageConnect), server.handleConnect)
	app.Post(webpath.Match, server.guard(access.PageConnect), server.handleMatch)
	app.Get(webpath.VideoChat, server.guard(access.PageVideoChat), server.handleVideoChat)
	app.Get(webpath.Recruitment, server.guard(access.PageRecruitment), server.handleRecruitment)
	app.Get(webpath.Feed, server.guard(access.PageFeed), server.handleFeed)
	app.Get(webpath.Messages, server.guard(access.PageMessages), server.handleMessages)
	app.Get(webpath.PlayerProfile, server.guard(access.PagePlayerProfile), server.handleProfile)
	app.Get(webpath.TeamProfile, server.guard(access.PageTeamProfile), server.handleProfile)
	app.Get(webpath.Admin, server.guard(access.PageAdmin), server.handleAdmin)
	app.Post(webpath.ApproveTournament, server.guard(access.PageAdmin), server.handleApprove)

	app.Get(webpath.PlayerAuth, server.guard(access.PagePlayerAuth), server.handleGetAuth)
	app.Post(webpath.PlayerAuth, server.guard(access.PagePlayerAuth), server.handlePlayerLogin)
	app.Get(webpath.TeamAuth, server.guard(access.PageTeamAuth), server.handleGetAuth)
	app.Post(webpath.TeamAuth, server.guard(access.PageTeamAuth), server.handleTeamLogin)
	app.Post(webpath.AdminAuth, server.handleAdminLogin)
	app.Get(webpath.Signout, server.handleSignOut)

	wiz := server.guard(access.PageCreateTournament)
	app.Get(webpath.NewTournament, wiz, server.handleWizard)
	app.Post(webpath.WizardOpen, wiz, server.handleWizardOpen)
	app.Post(webpath.WizardClose, wiz, server.handleWizardClose)
	app.Post(webpath.WizardNext, wiz, server.handleWizardNext)
	app.Post(webpath.WizardPrevious, wiz, server.handleWizardPrevious)
	app.Put(webpath.WizardField, wiz, server.handleWizardField)
	app.Put(webpath.WizardBanner, wiz, server.handleWizardBanner)
	app.Delete(webpath.WizardBanner, wiz, server.handleWizardRemoveBanner)
	app.Post(webpath.WizardRoadmap, wiz, server.handleRoadmapAdd)
	app.Put(webpath.WizardRoadmapStage, wiz, server.handleRoadmapUpdate)
	app.Delete(webpath.WizardRoadmapStage, wiz, server.handleRoadmapRemove)
	app.Post(webpath.WizardSubmit, wiz, server.handleWizardSubmit)
	app.Get(webpath.Tournament, server.guard(access.PageTournaments), server.handleTournament)

	app.Use(server.handleNotFound)
	server.app = app
	return &server
}

func (s *Server) newClient(l *logrus.Logger) *client {
	cl := &client{session: session.New(l)}
	var opts []wizard.Option
	if s.cfg.Wizard.RetainDraft {
		opts = append(opts, wizard.WithDraftRetention())
	}
	cl.wizard = wizard.New(s.registry.Submitter(cl.session.Current), opts...)
	return cl
}

func (s *Server) Serve() error {
	s.log.WithField("addr", s.cfg.Server.Addr()).Info("listening")
	return s.app.Listen(s.cfg.Server.Addr())
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// guard runs the access gate for page before any handler data is read. A
// denied request is redirected, or refused when it has nowhere to go.
func (s *Server) guard(page access.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := s.gate.Decide(identityOf(c), page)
		if d.Allowed {
			return c.Next()
		}
		if d.Redirect == "" {
			return fiber.ErrForbidden
		}
		return c.Redirect(webpath.ForPage(d.Redirect))
	}
}

func (s *Server) page(c *fiber.Ctx, title string) data {
	return newData(title).WithIdentity(s.gate.Policy(), identityOf(c))
}
