package web

import (
	"errors"

	"github.com/goserg/arcesports/internal/access"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/goserg/arcesports/internal/web/webpath"
)

type identityView struct {
	Kind domain.Kind `json:"kind"`
	Name string      `json:"name"`
}

func viewIdentity(id domain.Identity) identityView {
	return identityView{Kind: domain.KindOf(id), Name: domain.DisplayName(id)}
}

// data is the envelope every page response is wrapped in.
type data struct {
	Title    string            `json:"title"`
	Path     map[string]string `json:"path,omitempty"`
	Identity identityView      `json:"identity"`
	Nav      []access.NavItem  `json:"nav,omitempty"`
	Errors   []string          `json:"errors,omitempty"`
	Data     map[string]any    `json:"data"`
}

func newData(title string) data {
	return data{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (m data) WithIdentity(policy access.Policy, id domain.Identity) data {
	m.Identity = viewIdentity(id)
	m.Nav = access.NavItems(policy, id)
	return m
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func (m data) WithErrors(err error) data {
	for _, err := range unwrap(err) {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}
