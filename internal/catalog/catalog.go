// Package catalog serves the fixed browsing content: tournament and team
// listings, feed posts, recruitment posts and the random-connect pool.
package catalog

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	embedded "github.com/goserg/arcesports"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/normalize"
)

const seedPath = "seed/catalog.toml"

type seed struct {
	Tournaments []domain.TournamentCard  `toml:"tournaments"`
	Teams       []domain.TeamCard        `toml:"teams"`
	Openings    []domain.RecruitmentPost `toml:"openings"`
	Recruitment []domain.RecruitmentPost `toml:"recruitment"`
	Posts       []domain.Post            `toml:"posts"`
	Connect     []domain.ConnectUser     `toml:"connect"`
}

type Catalog struct {
	mu    sync.RWMutex
	data  seed
	teams map[string]domain.TeamCard
}

// Load reads the catalog shipped with the binary.
func Load() (*Catalog, error) {
	return LoadFS(embedded.Seed, seedPath)
}

func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var s seed
	if _, err := toml.Decode(string(raw), &s); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{}
	c.update(s)
	return c, nil
}

func (c *Catalog) update(s seed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = s
	c.teams = make(map[string]domain.TeamCard, len(s.Teams))
	for i := range s.Teams {
		c.teams[normalize.Name(s.Teams[i].Name)] = s.Teams[i]
	}
}

// Tournaments lists tournaments whose name or game contains query.
func (c *Catalog) Tournaments(query string) []domain.TournamentCard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.TournamentCard, 0, len(c.data.Tournaments))
	for _, t := range c.data.Tournaments {
		if normalize.Contains(t.Name, query) || normalize.Contains(t.Game, query) {
			out = append(out, t)
		}
	}
	return out
}

// Teams lists teams whose name or game contains query.
func (c *Catalog) Teams(query string) []domain.TeamCard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.TeamCard, 0, len(c.data.Teams))
	for _, t := range c.data.Teams {
		if normalize.Contains(t.Name, query) || normalize.Contains(t.Game, query) {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) TeamByName(name string) (domain.TeamCard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.teams[normalize.Name(name)]
	return t, ok
}

// Openings are the short recruitment notes shown next to the team list.
func (c *Catalog) Openings() []domain.RecruitmentPost {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.RecruitmentPost(nil), c.data.Openings...)
}

func (c *Catalog) Recruitment() []domain.RecruitmentPost {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.RecruitmentPost(nil), c.data.Recruitment...)
}

// Feed returns the posts shown to kind: team accounts see team posts,
// everyone else sees player posts.
func (c *Catalog) Feed(kind domain.Kind) []domain.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()

	want := domain.KindPlayer
	if kind == domain.KindTeam {
		want = domain.KindTeam
	}
	out := make([]domain.Post, 0, len(c.data.Posts))
	for _, p := range c.data.Posts {
		if p.AuthorKind == want {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ConnectPool() []domain.ConnectUser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.ConnectUser(nil), c.data.Connect...)
}
