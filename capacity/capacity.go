package capacity

import (
	"errors"
	"fmt"
	"math"
)

// Calculator errors.
var (
	// ErrUnknownDiameter is returned when a bolt diameter has no entry in
	// the design table an operation needs.
	ErrUnknownDiameter = errors.New("capacity: bolt diameter not in design tables")

	// ErrInvalidInput is returned for zero or negative physical inputs.
	ErrInvalidInput = errors.New("capacity: invalid input")
)

// gammaMB is the partial safety factor for bolted connections with bearing
// type bolts, IS 800 Table 5.
const gammaMB = 1.25

// HoleType selects the fastener hole clearance table.
type HoleType int

const (
	// HoleStandard is a standard clearance hole.
	HoleStandard HoleType = iota
	// HoleOversize is an oversized clearance hole.
	HoleOversize
)

// String returns the hole type name.
func (h HoleType) String() string {
	switch h {
	case HoleStandard:
		return "standard"
	case HoleOversize:
		return "oversize"
	default:
		return fmt.Sprintf("HoleType(%d)", int(h))
	}
}

// Shear returns the factored shear capacity in kN of count bolts of the
// given diameter (mm) and ultimate tensile strength boltFu (MPa), per
// IS 800 Cl 10.3.3, rounded to 3 decimals.
func Shear(diameter, count int, boltFu float64) (float64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: bolt count %d must be positive", ErrInvalidInput, count)
	}
	if boltFu <= 0 {
		return 0, fmt.Errorf("%w: bolt fu %g must be positive", ErrInvalidInput, boltFu)
	}
	area, err := NetTensileArea(diameter)
	if err != nil {
		return 0, err
	}
	nominal := boltFu * float64(count) * area / math.Sqrt(3) / 1000
	return round3(nominal / gammaMB), nil
}

// Bearing returns the factored bearing capacity in kN of count bolts
// bearing on a plate of the given thickness (mm) and ultimate tensile
// strength plateFu (MPa), per IS 800 Cl 10.3.4, rounded to 3 decimals.
// kb is the bearing reduction factor from KB.
//
// The Cl 10.3.4 reduction factor of 0.7 for oversized holes is not
// applied; see the package comment.
func Bearing(diameter, count int, plateThickness, kb, plateFu float64) (float64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: bolt count %d must be positive", ErrInvalidInput, count)
	}
	if plateThickness <= 0 {
		return 0, fmt.Errorf("%w: plate thickness %g must be positive", ErrInvalidInput, plateThickness)
	}
	if kb <= 0 || kb > 1 {
		return 0, fmt.Errorf("%w: k_b %g must be in (0, 1]", ErrInvalidInput, kb)
	}
	if plateFu <= 0 {
		return 0, fmt.Errorf("%w: plate fu %g must be positive", ErrInvalidInput, plateFu)
	}
	if _, err := NetTensileArea(diameter); err != nil {
		return 0, err
	}
	nominal := 2.5 * kb * float64(diameter) * float64(count) * plateThickness * plateFu / 1000
	return round3(nominal / gammaMB), nil
}

// HoleClearance returns the fastener hole clearance in mm for the given
// hole type and bolt diameter, IS 800 Table 19 (Cl 10.2.1). A non-nil
// custom clearance unconditionally replaces the table value, so callers
// may force a non-standard clearance.
func HoleClearance(holeType HoleType, diameter int, custom *int) (int, error) {
	if custom != nil {
		return *custom, nil
	}
	var table map[int]int
	switch holeType {
	case HoleStandard:
		table = tables.StandardClearance
	case HoleOversize:
		table = tables.OversizeClearance
	default:
		return 0, fmt.Errorf("%w: unknown hole type %d", ErrInvalidInput, int(holeType))
	}
	clearance, ok := table[diameter]
	if !ok {
		return 0, fmt.Errorf("%w: %d mm has no %s hole clearance entry", ErrUnknownDiameter, diameter, holeType)
	}
	return clearance, nil
}

// KB returns the bearing reduction factor k_b, IS 800 Cl 10.3.4: the least
// of the end distance anchorage term, the pitch term, the bolt/plate
// strength ratio, and the absolute cap of 1. Every term carries design
// code meaning, so all four are computed. The result is rounded to 3
// decimals and never exceeds 1.
func KB(endDistance, pitch, holeDiameter, boltFu, plateFu float64) (float64, error) {
	if holeDiameter <= 0 {
		return 0, fmt.Errorf("%w: hole diameter %g must be positive", ErrInvalidInput, holeDiameter)
	}
	if endDistance <= 0 || pitch <= 0 {
		return 0, fmt.Errorf("%w: end distance %g and pitch %g must be positive", ErrInvalidInput, endDistance, pitch)
	}
	if boltFu <= 0 || plateFu <= 0 {
		return 0, fmt.Errorf("%w: bolt fu %g and plate fu %g must be positive", ErrInvalidInput, boltFu, plateFu)
	}
	anchorage := endDistance / (3 * holeDiameter)
	spacing := pitch/(3*holeDiameter) - 0.25
	strength := boltFu / plateFu
	kb := math.Min(math.Min(anchorage, spacing), math.Min(strength, 1))
	return round3(kb), nil
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
