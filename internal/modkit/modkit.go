package modkit

import (
	phttp "housepricing/internal/platform/net/http"
)

// Module is an API feature that mounts its own routes
type Module interface {
	MountRoutes(r phttp.Router)
	Name() string
}
