// Package module wires meta endpoints into the API
package module

import (
	"time"

	modkit "housepricing/internal/modkit"
	"housepricing/internal/modkit/httpkit"

	metahttp "housepricing/internal/services/api/meta/http"
)

// ServiceName identifies the API in meta and outbound requests
const ServiceName = "housepricing-api"

// New constructs the meta module. Uptime counts from this call
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   deps.Now().Now(),
		Clock:       deps.Clock,
		Probes: []metahttp.Probe{
			{Name: "pg", Check: deps.PG},
			{Name: "ch", Check: deps.CH},
		},
		ProbeTimeout: deps.Cfg.Prefix("META_").MayDuration("PROBE_TIMEOUT", 2*time.Second),
	}

	return b.Module(func(r httpkit.Router) { metahttp.Register(r, d) })
}
