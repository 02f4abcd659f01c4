package http

import (
	"github.com/studyspotter/api/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Search *usecases.SearchService
	Spots  *usecases.SpotService

	// PlacesConfigured reports whether the upstream places client has an
	// API key; used by the readiness check.
	PlacesConfigured bool
}
