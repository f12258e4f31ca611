package access

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/arcesports/internal/domain"
)

var ErrEmptyRule = errors.New("rule has no page name")

// Rule grants the listed kinds access to a page. "*" stands for every kind.
type Rule struct {
	Name  string   `toml:"name"`
	Allow []string `toml:"allow"`
}

// Policy maps pages to the identity kinds allowed to view them. It is built
// once and never changes afterwards.
type Policy struct {
	pages map[Page]mapset.Set[domain.Kind]
}

func everyone() mapset.Set[domain.Kind] {
	return mapset.NewThreadUnsafeSet(domain.Kinds()...)
}

func members() mapset.Set[domain.Kind] {
	return mapset.NewThreadUnsafeSet(domain.KindPlayer, domain.KindTeam, domain.KindAdmin)
}

// DefaultPolicy is the route policy the platform ships with.
func DefaultPolicy() Policy {
	return Policy{pages: map[Page]mapset.Set[domain.Kind]{
		PageHome:             everyone(),
		PageTournaments:      everyone(),
		PageTeams:            everyone(),
		PagePlayerAuth:       everyone(),
		PageTeamAuth:         everyone(),
		PageConnect:          mapset.NewThreadUnsafeSet(domain.KindPlayer),
		PageVideoChat:        mapset.NewThreadUnsafeSet(domain.KindPlayer),
		PageRecruitment:      mapset.NewThreadUnsafeSet(domain.KindPlayer, domain.KindTeam),
		PageAdmin:            mapset.NewThreadUnsafeSet(domain.KindAdmin),
		PageFeed:             members(),
		PageMessages:         members(),
		PagePlayerProfile:    members(),
		PageTeamProfile:      members(),
		PageCreateTournament: members(),
	}}
}

// NewPolicy builds a policy from rules. Pages without a rule are denied to
// everyone. A later rule for the same page replaces an earlier one.
func NewPolicy(rules []Rule) (Policy, error) {
	p := Policy{pages: make(map[Page]mapset.Set[domain.Kind], len(rules))}
	for _, rule := range rules {
		if rule.Name == "" {
			return Policy{}, ErrEmptyRule
		}
		allowed := mapset.NewThreadUnsafeSet[domain.Kind]()
		for _, a := range rule.Allow {
			if a == "*" {
				for _, k := range domain.Kinds() {
					allowed.Add(k)
				}
				continue
			}
			kind, err := domain.ParseKind(a)
			if err != nil {
				return Policy{}, fmt.Errorf("rule %s: %w", rule.Name, err)
			}
			allowed.Add(kind)
		}
		p.pages[Page(rule.Name)] = allowed
	}
	return p, nil
}

// Override returns a copy of p in which every page named by rules takes the
// rule's kinds. Pages the rules do not name keep their access from p.
func (p Policy) Override(rules []Rule) (Policy, error) {
	overrides, err := NewPolicy(rules)
	if err != nil {
		return Policy{}, err
	}
	for _, page := range p.Pages() {
		if _, ok := overrides.pages[page]; !ok {
			overrides.pages[page] = p.pages[page].Clone()
		}
	}
	return overrides, nil
}

// CanAccess reports whether id may view page. Unknown pages are denied.
func (p Policy) CanAccess(id domain.Identity, page Page) bool {
	allowed, ok := p.pages[page]
	if !ok {
		return false
	}
	return allowed.Contains(domain.KindOf(id))
}

// Allowed lists the kinds allowed on page in a stable order.
func (p Policy) Allowed(page Page) []domain.Kind {
	allowed, ok := p.pages[page]
	if !ok {
		return nil
	}
	var kinds []domain.Kind
	for _, k := range domain.Kinds() {
		if allowed.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Pages lists every page the policy knows about.
func (p Policy) Pages() []Page {
	pages := make([]Page, 0, len(p.pages))
	for page := range p.pages {
		pages = append(pages, page)
	}
	return pages
}
