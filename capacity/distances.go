package capacity

import (
	"fmt"
	"math"
)

// Distances are the spacing limits of a bolt group, in mm. Every minimum
// is an exact multiple of 5.
type Distances struct {
	// MinPitch and MinGauge are the minimum bolt spacings along and
	// across the load direction, IS 800 Cl 10.2.2.
	MinPitch, MinGauge int

	// MinEndDistance and MinEdgeDistance are the minimum distances from a
	// bolt center to the plate end and edge, IS 800 Cl 10.2.4.2.
	MinEndDistance, MinEdgeDistance int

	// MaxSpacing is the maximum bolt spacing, IS 800 Cl 10.2.3.1.
	MaxSpacing int

	// MaxEdgeDistance is the maximum edge distance, IS 800 Cl 10.2.4.3.
	MaxEdgeDistance int
}

// Spacing computes the minimum and maximum spacing limits for a bolt
// group. holeDiameter is the bolt hole diameter in mm, edgeMultiplier the
// Cl 10.2.4.2 factor (1.7 for sheared or hand-flame cut edges, 1.5 for
// rolled or machine cut), governingThickness the thickness of the thinnest
// connected plate in mm, and fy the yield strength of the connected steel
// in MPa. All are explicit arguments on every call; nothing is read from
// earlier calls.
func Spacing(diameter int, holeDiameter, edgeMultiplier, governingThickness, fy float64) (Distances, error) {
	if _, err := NetTensileArea(diameter); err != nil {
		return Distances{}, err
	}
	if holeDiameter <= 0 {
		return Distances{}, fmt.Errorf("%w: hole diameter %g must be positive", ErrInvalidInput, holeDiameter)
	}
	if edgeMultiplier <= 0 {
		return Distances{}, fmt.Errorf("%w: edge multiplier %g must be positive", ErrInvalidInput, edgeMultiplier)
	}
	if governingThickness <= 0 {
		return Distances{}, fmt.Errorf("%w: governing thickness %g must be positive", ErrInvalidInput, governingThickness)
	}
	if fy <= 0 {
		return Distances{}, fmt.Errorf("%w: steel fy %g must be positive", ErrInvalidInput, fy)
	}

	minPitch := roundUp5(int(2.5 * float64(diameter)))
	minEdge := roundUp5(int(math.Ceil(edgeMultiplier * holeDiameter)))

	return Distances{
		MinPitch:        minPitch,
		MinGauge:        minPitch,
		MinEndDistance:  minEdge,
		MinEdgeDistance: minEdge,
		MaxSpacing:      int(math.Ceil(math.Min(32*governingThickness, 300))),
		MaxEdgeDistance: int(math.Ceil(12 * governingThickness * math.Sqrt(250/fy))),
	}, nil
}

// roundUp5 rounds n up to the next multiple of 5, leaving exact multiples
// alone.
func roundUp5(n int) int {
	if n%5 == 0 {
		return n
	}
	return n + 5 - n%5
}
