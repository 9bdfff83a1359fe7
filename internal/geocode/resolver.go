// Package geocode converts a selected, human-readable address into coordinates.
package geocode

import (
	"context"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/logger"
)

// Geocoder issues the coordinate lookup. *api.Client satisfies this.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (api.Coordinates, error)
}

// Resolver resolves selected addresses. Failures are not surfaced here; an
// unresolved location is caught later by form validation.
type Resolver struct {
	geocoder Geocoder
	log      *logger.Logger
}

// New creates a resolver over the given geocoder.
func New(geocoder Geocoder, log *logger.Logger) *Resolver {
	return &Resolver{geocoder: geocoder, log: log}
}

// Resolve looks up coordinates for the selected address text. ok is false when
// the lookup failed and the caller should keep its previous location value.
func (r *Resolver) Resolve(ctx context.Context, address string) (api.Coordinates, bool) {
	coords, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		r.log.Debug("geocode failed", "address", address, "error", err)
		return api.Coordinates{}, false
	}

	return coords, true
}
