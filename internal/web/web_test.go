package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/arcesports/internal/access"
	"github.com/goserg/arcesports/internal/catalog"
	"github.com/goserg/arcesports/internal/config"
	"github.com/goserg/arcesports/internal/connect"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/tournament"
	"github.com/goserg/arcesports/internal/wizard"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const adminPassword = "letmein"

type WebSuite struct {
	suite.Suite
	server   *Server
	registry *tournament.Registry
	cookie   *http.Cookie
}

func (s *WebSuite) SetupTest() {
	s.useServer(access.DefaultPolicy())
}

func (s *WebSuite) useServer(policy access.Policy) {
	l, _ := test.NewNullLogger()
	cfg := config.Default()
	cfg.Admin.Password = adminPassword

	cat, err := catalog.Load()
	s.Require().NoError(err)
	s.registry = tournament.NewRegistry(nil, l)
	gate := access.NewGate(policy, l)
	mm := connect.NewMatchmaker(cat.ConnectPool(), 0, 0)

	s.server = New(cfg, gate, cat, s.registry, mm, l)
	s.cookie = nil
}

func TestWebSuite(t *testing.T) {
	suite.Run(t, new(WebSuite))
}

func (s *WebSuite) do(method, path, body string) *http.Response {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	resp, err := s.server.app.Test(req, -1)
	s.Require().NoError(err)
	for _, c := range resp.Cookies() {
		if c.Name == clientCookie {
			s.cookie = c
		}
	}
	return resp
}

func decode[T any](s *WebSuite, resp *http.Response) T {
	defer resp.Body.Close()
	var v T
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *WebSuite) loginPlayer() {
	resp := s.do(http.MethodPost, "/player-auth", `{"name":"Aryan","contact":"aryan@arc.gg","code":"123456"}`)
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/", resp.Header.Get("Location"))
}

func (s *WebSuite) TestAnonymousRedirectedFromProtectedPages() {
	for _, path := range []string{"/feed", "/messages", "/connect", "/admin", "/profile/player", "/tournaments/new"} {
		resp := s.do(http.MethodGet, path, "")
		s.Equal(http.StatusFound, resp.StatusCode, path)
		s.Equal("/", resp.Header.Get("Location"), path)
	}
}

func (s *WebSuite) TestPublicPages() {
	resp := s.do(http.MethodGet, "/tournaments?q=valorant", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	page := decode[data](s, resp)
	s.Equal(domain.KindAnonymous, page.Identity.Kind)
	cards, ok := page.Data["tournaments"].([]any)
	s.Require().True(ok)
	s.Len(cards, 1)

	resp = s.do(http.MethodGet, "/", "")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *WebSuite) TestNotFound() {
	resp := s.do(http.MethodGet, "/no/such/page", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("not found", decode[map[string]string](s, resp)["error"])
}

func (s *WebSuite) TestPlayerAccess() {
	s.loginPlayer()

	resp := s.do(http.MethodGet, "/feed", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	page := decode[data](s, resp)
	s.Equal(domain.KindPlayer, page.Identity.Kind)
	s.Equal("Aryan", page.Identity.Name)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/connect", "").StatusCode)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/recruitment", "").StatusCode)
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/admin", "").StatusCode)
}

func (s *WebSuite) TestTeamAccess() {
	resp := s.do(http.MethodPost, "/team-auth", `{"contact":"team@arc.gg","code":"1"}`)
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/feed", resp.Header.Get("Location"))

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/recruitment", "").StatusCode)
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/connect", "").StatusCode)
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/video-chat", "").StatusCode)

	resp = s.do(http.MethodGet, "/nav", "")
	items := decode[[]access.NavItem](s, resp)
	s.Contains(items, access.NavItem{Name: "Team Profile", Page: access.PageTeamProfile})
}

func (s *WebSuite) TestLoginValidation() {
	resp := s.do(http.MethodPost, "/player-auth", `{"name":"Aryan"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](s, resp)
	s.Len(body.Errors, 2)
}

func (s *WebSuite) TestAdminLogin() {
	resp := s.do(http.MethodPost, "/admin-auth", `{"code":"wrong"}`)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/admin", "").StatusCode)

	resp = s.do(http.MethodPost, "/admin-auth", `{"code":"`+adminPassword+`"}`)
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/admin", "").StatusCode)
}

func (s *WebSuite) TestSignOut() {
	s.loginPlayer()
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/feed", "").StatusCode)

	resp := s.do(http.MethodGet, "/signout", "")
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/feed", "").StatusCode)
}

func (s *WebSuite) TestClientsAreIsolated() {
	s.loginPlayer()
	player := s.cookie

	s.cookie = nil
	s.Equal(http.StatusFound, s.do(http.MethodGet, "/feed", "").StatusCode)

	s.cookie = player
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/feed", "").StatusCode)
}

func (s *WebSuite) TestMatch() {
	s.loginPlayer()
	resp := s.do(http.MethodPost, "/connect/match?game=BGMI", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := decode[map[string]domain.ConnectUser](s, resp)
	s.Equal("BGMI", body["match"].Game)

	for _, id := range []string{"freefire", "cod"} {
		resp = s.do(http.MethodPost, "/connect/match?game="+id, "")
		s.Require().Equal(http.StatusOK, resp.StatusCode, id)
		resp.Body.Close()
	}

	resp = s.do(http.MethodPost, "/connect/match?game=chess", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *WebSuite) step(path string, wantCode int) wizardView {
	resp := s.do(http.MethodPost, path, "")
	s.Require().Equal(wantCode, resp.StatusCode, path)
	if wantCode != http.StatusOK {
		resp.Body.Close()
		return wizardView{}
	}
	return decode[wizardView](s, resp)
}

func (s *WebSuite) edit(field, value string) {
	body, err := json.Marshal(fieldRequest{Value: value})
	s.Require().NoError(err)
	resp := s.do(http.MethodPut, "/tournaments/new/fields/"+field, string(body))
	s.Require().Equal(http.StatusOK, resp.StatusCode, field)
	resp.Body.Close()
}

func (s *WebSuite) TestWizardFlow() {
	s.loginPlayer()

	view := s.step("/tournaments/new/open", http.StatusOK)
	s.True(view.Open)
	s.Equal(1, view.Step)

	resp := s.do(http.MethodPost, "/tournaments/new/next", "")
	s.Require().Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	verr := decode[errorResponse](s, resp)
	s.Equal(1, verr.Step)
	s.Len(verr.Fields, 2)
	s.Equal([]wizard.Field{wizard.FieldGame, wizard.FieldFormat}, verr.Missing)

	resp = s.do(http.MethodPost, "/tournaments/new/submit", "")
	s.Equal(http.StatusConflict, resp.StatusCode)

	s.edit("game", "bgmi")
	s.edit("format", "squad")
	s.Equal(2, s.step("/tournaments/new/next", http.StatusOK).Step)
	s.Equal(3, s.step("/tournaments/new/next", http.StatusOK).Step)
	s.edit("name", "ARC Winter Cup")
	s.edit("description", "Squads only")
	s.Equal(4, s.step("/tournaments/new/next", http.StatusOK).Step)
	s.Equal(5, s.step("/tournaments/new/next", http.StatusOK).Step)

	resp = s.do(http.MethodPost, "/tournaments/new/roadmap", "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp = s.do(http.MethodPut, "/tournaments/new/roadmap/0", `{"field":"stage","value":"Qualifiers"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	view = decode[wizardView](s, resp)
	s.Equal("Qualifiers", view.Draft.Roadmap[0].Stage)

	resp = s.do(http.MethodPost, "/tournaments/new/submit", "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	created := decode[domain.Tournament](s, resp)
	s.Equal("arc-winter-cup", created.Slug)
	s.Equal(domain.StatusPending, created.Status)
	s.Equal(domain.KindPlayer, created.CreatorAs)

	view = decode[wizardView](s, s.do(http.MethodGet, "/tournaments/new", ""))
	s.False(view.Open)
	s.Equal(1, view.Step)
	s.Empty(view.Draft.Name)

	s.Len(s.registry.Pending(), 1)
}

func (s *WebSuite) TestWizardBadInput() {
	s.loginPlayer()

	resp := s.do(http.MethodPut, "/tournaments/new/fields/nope", `{"value":"x"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp = s.do(http.MethodPut, "/tournaments/new/fields/banner", `{"value":"x.png"}`)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(decode[errorResponse](s, resp).Error, "cannot be set from text")

	resp = s.do(http.MethodPut, "/tournaments/new/fields/game", `{"value":"chess"}`)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do(http.MethodPut, "/tournaments/new/roadmap/x", `{"field":"stage","value":"a"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *WebSuite) TestApprove() {
	t, err := s.registry.Create(context.Background(), domain.Player{Name: "p"}, domain.TournamentDraft{Name: "Cup", Description: "d"})
	s.Require().NoError(err)

	s.do(http.MethodPost, "/admin-auth", `{"code":"`+adminPassword+`"}`)
	resp := s.do(http.MethodPost, "/admin/tournaments/"+t.ID.String()+"/approve", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(domain.StatusApproved, decode[domain.Tournament](s, resp).Status)

	resp = s.do(http.MethodPost, "/admin/tournaments/not-a-uuid/approve", "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	page := decode[data](s, s.do(http.MethodGet, "/tournaments", ""))
	community, ok := page.Data["community"].([]any)
	s.Require().True(ok)
	s.Len(community, 1)
}

func (s *WebSuite) TestConfiguredRuleKeepsPublicPagesOpen() {
	cfg := config.Default()
	cfg.Access.Rules = []access.Rule{{Name: "recruitment", Allow: []string{"team"}}}
	policy, err := cfg.Policy()
	s.Require().NoError(err)
	s.useServer(policy)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/", "").StatusCode)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/player-auth", "").StatusCode)

	s.loginPlayer()
	resp := s.do(http.MethodGet, "/recruitment", "")
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("/", resp.Header.Get("Location"))
}

func (s *WebSuite) TestClosedHomeIsRefusedNotLooped() {
	policy, err := access.NewPolicy([]access.Rule{{Name: "recruitment", Allow: []string{"team"}}})
	s.Require().NoError(err)
	s.useServer(policy)

	resp := s.do(http.MethodGet, "/", "")
	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Empty(resp.Header.Get("Location"))

	resp = s.do(http.MethodGet, "/feed", "")
	s.Equal(http.StatusFound, resp.StatusCode)
}

func (s *WebSuite) TestClientsCreatedOnlyWhenNeeded() {
	for _, path := range []string{"/", "/tournaments", "/feed", "/no/such/page"} {
		resp := s.do(http.MethodGet, path, "")
		resp.Body.Close()
	}
	s.Nil(s.cookie)
	s.Equal(0, s.server.clients.len())

	s.loginPlayer()
	s.NotNil(s.cookie)
	s.Equal(1, s.server.clients.len())

	s.do(http.MethodGet, "/feed", "").Body.Close()
	s.Equal(1, s.server.clients.len())
}

func (s *WebSuite) TestTournamentDetails() {
	t, err := s.registry.Create(context.Background(), domain.Team{Name: "Thunder Wolves"}, domain.TournamentDraft{Name: "Wolves Open", Description: "d"})
	s.Require().NoError(err)
	path := "/tournaments/" + t.ID.String()

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, "").StatusCode)

	s.do(http.MethodPost, "/admin-auth", `{"code":"`+adminPassword+`"}`)
	resp := s.do(http.MethodGet, path, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Wolves Open", decode[data](s, resp).Title)

	s.do(http.MethodPost, "/admin/tournaments/"+t.ID.String()+"/approve", "").Body.Close()
	s.cookie = nil
	s.Equal(http.StatusOK, s.do(http.MethodGet, path, "").StatusCode)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/tournaments/abc", "").StatusCode)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/tournaments/"+uuid.NewString(), "").StatusCode)
}

func TestClientsEvictIdle(t *testing.T) {
	l, _ := test.NewNullLogger()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var made []*client
	cs := newClients(time.Hour, func() *client {
		cl := &client{session: session.New(l)}
		made = append(made, cl)
		return cl
	})
	cs.now = func() time.Time { return now }

	first, _ := cs.add()
	now = now.Add(2 * time.Hour)
	cs.add()

	_, ok := cs.get(first)
	assert.False(t, ok)
	require.Len(t, made, 2)
	assert.True(t, made[0].session.Disposed())
	assert.Equal(t, 1, cs.len())

	second, cl := cs.add()
	cl.session.Dispose()
	_, ok = cs.get(second)
	assert.False(t, ok, "a disposed session is not handed out again")
}
