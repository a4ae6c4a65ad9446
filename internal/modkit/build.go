package modkit

import (
	"net/http"

	"housepricing/internal/modkit/httpkit"
	str "housepricing/internal/platform/strings"
)

// Built is the resolved form of a module's options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order; later options win. Hooks default to no-ops
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Module returns a Module mounting own under the built prefix, followed by
// any WithRegister routes. An empty name or a root prefix panics here
func (b Built) Module(own func(httpkit.Router)) Module {
	return &built{
		name:   str.MustString(b.Name, "module name"),
		prefix: str.MustPrefix(b.Prefix),
		b:      b,
		own:    own,
	}
}

type built struct {
	name, prefix string
	b            Built
	own          func(httpkit.Router)
}

func (m *built) Name() string { return m.name }

func (m *built) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.b.Mw, m.b.Subrouter, func(sub httpkit.Router) {
		if m.own != nil {
			m.own(sub)
		}
		m.b.Register(sub)
	})
}
