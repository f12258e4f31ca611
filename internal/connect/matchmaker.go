// Package connect pairs a player with a random gamer from the connect pool.
package connect

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/normalize"
)

var ErrNoCandidates = errors.New("no gamers available to connect")

type Matchmaker struct {
	pool     []domain.ConnectUser
	minDelay time.Duration
	maxDelay time.Duration
	intn     func(n int) int
}

// NewMatchmaker returns a matchmaker that answers after a random delay in
// [minDelay, maxDelay]. A maxDelay below minDelay is raised to minDelay.
func NewMatchmaker(pool []domain.ConnectUser, minDelay, maxDelay time.Duration) *Matchmaker {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Matchmaker{
		pool:     append([]domain.ConnectUser(nil), pool...),
		minDelay: minDelay,
		maxDelay: maxDelay,
		intn:     rand.IntN,
	}
}

// Match waits for the simulated search and returns a gamer playing game, or
// any gamer when game is empty.
func (m *Matchmaker) Match(ctx context.Context, game string) (domain.ConnectUser, error) {
	candidates := m.candidates(game)
	if len(candidates) == 0 {
		return domain.ConnectUser{}, ErrNoCandidates
	}

	timer := time.NewTimer(m.delay())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return domain.ConnectUser{}, ctx.Err()
	case <-timer.C:
	}
	return candidates[m.intn(len(candidates))], nil
}

// candidates filters the pool by game. game may be a catalog id or a game
// name; pool entries may use either as well.
func (m *Matchmaker) candidates(game string) []domain.ConnectUser {
	if game == "" {
		return m.pool
	}
	names := []string{normalize.Name(game)}
	if g, ok := findGame(game); ok {
		names = []string{normalize.Name(g.ID), normalize.Name(g.Name)}
	}
	var out []domain.ConnectUser
	for _, u := range m.pool {
		played := normalize.Name(u.Game)
		for _, name := range names {
			if played == name {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

func findGame(s string) (domain.Game, bool) {
	for _, g := range domain.Games() {
		if normalize.Name(g.ID) == normalize.Name(s) || normalize.Name(g.Name) == normalize.Name(s) {
			return g, true
		}
	}
	return domain.Game{}, false
}

func (m *Matchmaker) delay() time.Duration {
	spread := m.maxDelay - m.minDelay
	if spread <= 0 {
		return m.minDelay
	}
	return m.minDelay + time.Duration(m.intn(int(spread)+1))
}
