package access

import (
	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus"
)

// Decision is the outcome of a gate check. When Allowed is false the caller
// must redirect to Redirect instead of rendering the page, or refuse the
// request outright when Redirect is empty.
type Decision struct {
	Allowed  bool
	Redirect Page
}

// Gate is consulted by every protected view before it reads any data.
type Gate struct {
	policy Policy
	log    *logrus.Entry
}

func NewGate(policy Policy, l *logrus.Logger) *Gate {
	return &Gate{
		policy: policy,
		log:    l.WithField("from", "access-gate"),
	}
}

func (g *Gate) Decide(id domain.Identity, page Page) Decision {
	if g.policy.CanAccess(id, page) {
		return Decision{Allowed: true}
	}
	g.log.WithFields(logrus.Fields{
		"page":    page,
		"kind":    domain.KindOf(id),
		"allowed": g.policy.Allowed(page),
	}).Debug("access denied")
	if page == FallbackPage {
		return Decision{}
	}
	return Decision{Redirect: FallbackPage}
}

func (g *Gate) Policy() Policy {
	return g.policy
}
