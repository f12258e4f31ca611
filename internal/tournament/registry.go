// Package tournament keeps created tournaments in memory and plays the part
// of the tournament creation service.
package tournament

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound       = errors.New("tournament not found")
	ErrMissingDetails = errors.New("tournament needs a name and a description")
)

// Notifier is told about every tournament the registry accepts.
type Notifier interface {
	TournamentCreated(ctx context.Context, t domain.Tournament) error
}

type Registry struct {
	mu          sync.RWMutex
	tournaments map[uuid.UUID]domain.Tournament
	slugs       map[string]uuid.UUID

	notifier Notifier
	now      func() time.Time
	log      *logrus.Entry
}

func NewRegistry(n Notifier, l *logrus.Logger) *Registry {
	return &Registry{
		tournaments: make(map[uuid.UUID]domain.Tournament),
		slugs:       make(map[string]uuid.UUID),
		notifier:    n,
		now:         time.Now,
		log:         l.WithField("from", "tournament-registry"),
	}
}

// Create stores draft as a pending tournament on behalf of creator.
func (r *Registry) Create(ctx context.Context, creator domain.Identity, draft domain.TournamentDraft) (domain.Tournament, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Description) == "" {
		return domain.Tournament{}, ErrMissingDetails
	}

	r.mu.Lock()
	t := domain.Tournament{
		TournamentDraft: draft.Clone(),
		ID:              uuid.New(),
		Slug:            r.uniqueSlug(draft.Name),
		Status:          domain.StatusPending,
		CreatedBy:       domain.DisplayName(creator),
		CreatorAs:       domain.KindOf(creator),
		CreatedAt:       r.now(),
	}
	r.tournaments[t.ID] = t
	r.slugs[t.Slug] = t.ID
	r.mu.Unlock()

	log := r.log.WithFields(logrus.Fields{
		"id":   t.ID,
		"slug": t.Slug,
	})
	log.Info("tournament created")
	if r.notifier != nil {
		if err := r.notifier.TournamentCreated(ctx, t); err != nil {
			log.WithError(err).Warn("notification failed")
		}
	}
	return t, nil
}

// uniqueSlug must be called with mu held.
func (r *Registry) uniqueSlug(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "tournament"
	}
	s := base
	for i := 2; ; i++ {
		if _, taken := r.slugs[s]; !taken {
			return s
		}
		s = base + "-" + strconv.Itoa(i)
	}
}

func (r *Registry) Get(id uuid.UUID) (domain.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[id]
	if !ok {
		return domain.Tournament{}, ErrNotFound
	}
	return t, nil
}

// List returns all tournaments, newest first.
func (r *Registry) List() []domain.Tournament {
	return r.filter(func(domain.Tournament) bool { return true })
}

func (r *Registry) Pending() []domain.Tournament {
	return r.filter(func(t domain.Tournament) bool { return t.Status == domain.StatusPending })
}

func (r *Registry) filter(keep func(domain.Tournament) bool) []domain.Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *Registry) Approve(id uuid.UUID) (domain.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tournaments[id]
	if !ok {
		return domain.Tournament{}, ErrNotFound
	}
	t.Status = domain.StatusApproved
	r.tournaments[id] = t
	r.log.WithField("id", id).Info("tournament approved")
	return t, nil
}

// Submitter adapts the registry to the wizard. creator is asked for the
// submitting identity at submit time.
func (r *Registry) Submitter(creator func() domain.Identity) SubmitFunc {
	return func(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error) {
		return r.Create(ctx, creator(), draft)
	}
}

type SubmitFunc func(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error)

func (f SubmitFunc) Submit(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error) {
	return f(ctx, draft)
}
