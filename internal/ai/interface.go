// README: Planner contract for the itinerary generation service.
package ai

import (
	"context"

	"lazytrip/internal/trip"
)

// Planner is the seam to the generative model that authors itineraries.
// Both operations are fail-soft by contract: they log and degrade instead of
// returning errors, so callers can apply results unconditionally.
type Planner interface {
	// GenerateItinerary asks for a full route through city. A degraded call
	// returns an empty slice, indistinguishable from a legitimate zero-stop
	// answer.
	GenerateItinerary(ctx context.Context, city, startPoint string, days, budget int, dna trip.UserDNA) []trip.Destination

	// SwapDestination asks for one replacement for current, citing reason.
	// A degraded call returns current unchanged.
	SwapDestination(ctx context.Context, current trip.Destination, reason, city string, dna trip.UserDNA) trip.Destination
}
