package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identities = []domain.Identity{
	domain.Anonymous{},
	domain.Player{ID: uuid.New(), Name: "Pro Gamer"},
	domain.Team{ID: uuid.New(), Name: "Team Phoenix"},
	domain.Admin{ID: uuid.New(), Name: "root"},
}

func contains(kinds []domain.Kind, k domain.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func TestPolicy_CanAccessMatchesAllowedKinds(t *testing.T) {
	p := DefaultPolicy()
	for _, page := range p.Pages() {
		allowed := p.Allowed(page)
		for _, id := range identities {
			want := contains(allowed, id.Kind())
			assert.Equal(t, want, p.CanAccess(id, page), "page %s kind %s", page, id.Kind())
		}
	}
}

func TestPolicy_UnknownPageDenied(t *testing.T) {
	p := DefaultPolicy()
	for _, id := range identities {
		assert.False(t, p.CanAccess(id, Page("does-not-exist")))
	}
	assert.Nil(t, p.Allowed(Page("does-not-exist")))
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		page Page
		want []domain.Kind
	}{
		{page: PageHome, want: domain.Kinds()},
		{page: PageTournaments, want: domain.Kinds()},
		{page: PageConnect, want: []domain.Kind{domain.KindPlayer}},
		{page: PageRecruitment, want: []domain.Kind{domain.KindPlayer, domain.KindTeam}},
		{page: PageAdmin, want: []domain.Kind{domain.KindAdmin}},
		{page: PageFeed, want: []domain.Kind{domain.KindPlayer, domain.KindTeam, domain.KindAdmin}},
	}
	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Allowed(tt.page))
		})
	}
}

func TestPolicy_NilIdentityIsAnonymous(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.CanAccess(nil, PageHome))
	assert.False(t, p.CanAccess(nil, PageFeed))
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy([]Rule{
		{Name: "home", Allow: []string{"*"}},
		{Name: "connect", Allow: []string{"player", "team"}},
		{Name: "admin", Allow: nil},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Kinds(), p.Allowed(PageHome))
	assert.True(t, p.CanAccess(domain.Team{}, PageConnect))
	assert.False(t, p.CanAccess(domain.Admin{}, PageAdmin))
	assert.False(t, p.CanAccess(domain.Player{}, PageFeed), "pages without a rule are closed")
}

func TestNewPolicy_Errors(t *testing.T) {
	_, err := NewPolicy([]Rule{{Name: "feed", Allow: []string{"moderator"}}})
	assert.ErrorContains(t, err, "rule feed")

	_, err = NewPolicy([]Rule{{Allow: []string{"*"}}})
	assert.ErrorIs(t, err, ErrEmptyRule)
}

func TestPolicy_Override(t *testing.T) {
	base := DefaultPolicy()
	p, err := base.Override([]Rule{{Name: "recruitment", Allow: []string{"team"}}})
	require.NoError(t, err)

	assert.True(t, p.CanAccess(domain.Team{}, PageRecruitment))
	assert.False(t, p.CanAccess(domain.Player{}, PageRecruitment))
	assert.True(t, p.CanAccess(nil, PageHome), "pages without a rule keep the base access")
	assert.True(t, p.CanAccess(nil, PagePlayerAuth))
	assert.True(t, p.CanAccess(domain.Player{}, PageConnect))
	assert.ElementsMatch(t, base.Pages(), p.Pages())

	assert.True(t, base.CanAccess(domain.Player{}, PageRecruitment), "base policy is left untouched")

	_, err = base.Override([]Rule{{Name: "feed", Allow: []string{"guest"}}})
	assert.Error(t, err)
}

func TestGate_DecideOnClosedFallback(t *testing.T) {
	l, _ := test.NewNullLogger()
	p, err := NewPolicy([]Rule{{Name: "recruitment", Allow: []string{"team"}}})
	require.NoError(t, err)
	g := NewGate(p, l)

	assert.Equal(t, Decision{}, g.Decide(nil, PageHome), "a closed fallback page must not redirect to itself")
	assert.Equal(t, Decision{Redirect: PageHome}, g.Decide(nil, PageFeed))
}

func TestGate_Decide(t *testing.T) {
	l, _ := test.NewNullLogger()
	g := NewGate(DefaultPolicy(), l)

	assert.Equal(t, Decision{Allowed: true}, g.Decide(domain.Player{}, PageConnect))
	assert.Equal(t, Decision{Redirect: PageHome}, g.Decide(domain.Team{}, PageConnect))
	assert.Equal(t, Decision{Redirect: PageHome}, g.Decide(domain.Anonymous{}, PageAdmin))
}
