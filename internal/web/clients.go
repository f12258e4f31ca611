package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/session"
	"github.com/goserg/arcesports/internal/wizard"
)

const (
	clientCookie = "arc_session"
	clientKey    = "client"
)

// client is the server side state of one browser. Requests of the same
// client are serialised through mu.
type client struct {
	mu       sync.Mutex
	session  *session.Store
	wizard   *wizard.Wizard
	lastSeen time.Time
}

type clients struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*client
	ttl     time.Duration
	now     func() time.Time
	newFunc func() *client
}

func newClients(ttl time.Duration, newFunc func() *client) *clients {
	return &clients{
		byID:    make(map[uuid.UUID]*client),
		ttl:     ttl,
		now:     time.Now,
		newFunc: newFunc,
	}
}

func (cs *clients) get(id uuid.UUID) (*client, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cl, ok := cs.byID[id]
	if !ok || cl.session.Disposed() {
		return nil, false
	}
	cl.lastSeen = cs.now()
	return cl, true
}

// add registers a new client. Clients idle for longer than ttl are dropped
// and their sessions disposed first.
func (cs *clients) add() (uuid.UUID, *client) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	now := cs.now()
	for id, cl := range cs.byID {
		if now.Sub(cl.lastSeen) > cs.ttl {
			cl.session.Dispose()
			delete(cs.byID, id)
		}
	}

	id := uuid.New()
	cl := cs.newFunc()
	cl.lastSeen = now
	cs.byID[id] = cl
	return id, cl
}

func (cs *clients) len() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.byID)
}

// bindClient attaches the client named by the request cookie, if any. Clients
// are only created by handlers that need state, through clientFor.
func (s *Server) bindClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Cookies(clientCookie))
	if err != nil {
		return c.Next()
	}
	cl, ok := s.clients.get(id)
	if !ok {
		return c.Next()
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	c.Locals(clientKey, cl)
	return c.Next()
}

// clientOf returns the client bound to the request, or nil.
func clientOf(c *fiber.Ctx) *client {
	cl, _ := c.Locals(clientKey).(*client)
	return cl
}

// clientFor returns the client bound to the request, creating one and
// issuing its cookie when there is none. A new client cannot be reached by
// other requests before its cookie is sent, so it is not locked.
func (s *Server) clientFor(c *fiber.Ctx) *client {
	if cl := clientOf(c); cl != nil {
		return cl
	}
	id, cl := s.clients.add()
	c.Cookie(&fiber.Cookie{
		Name:     clientCookie,
		Value:    id.String(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(clientKey, cl)
	return cl
}

func identityOf(c *fiber.Ctx) domain.Identity {
	if cl := clientOf(c); cl != nil {
		return cl.session.Current()
	}
	return domain.Anonymous{}
}
