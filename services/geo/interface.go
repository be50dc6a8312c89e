package geo

import (
	"context"
	"fmt"
)

// DistanceService resolves the driving distance in miles from the business's
// base location to a destination address. Implementations may cache; a
// failed lookup must surface as a DistanceError, never as a zero distance.
type DistanceService interface {
	DistanceMiles(ctx context.Context, destination string) (float64, error)
}

// DistanceError wraps a failed distance lookup so callers can tell "lookup
// failed" apart from "measured zero".
type DistanceError struct {
	Destination string
	Err         error
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("distance lookup failed for %q: %v", e.Destination, e.Err)
}

func (e *DistanceError) Unwrap() error { return e.Err }
