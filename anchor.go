package boltcad

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// Common builder errors.
var (
	// ErrDimensions is returned when bolt dimensions are non-positive or
	// geometrically infeasible for the chosen variant.
	ErrDimensions = errors.New("boltcad: invalid bolt dimensions")

	// ErrFrame is returned when placement direction vectors are not unit
	// length or not orthogonal.
	ErrFrame = errors.New("boltcad: invalid placement frame")

	// ErrNotPlaced is returned when CreateModel is called before a
	// successful Place. This is a programmer error, not a user input error.
	ErrNotPlaced = errors.New("boltcad: CreateModel called before Place")
)

// Variant identifies an anchor bolt shape.
type Variant int

const (
	// VariantA is a hooked bolt with a straight entry shaft: the shaft runs
	// straight, bends, and closes in a semicircular hook bulb.
	VariantA Variant = iota

	// VariantB is a bent bolt with a straight hook leg; its bend geometry
	// is derived from fixed multiples of the shaft radius.
	VariantB

	// VariantEndplate is a straight bolt anchored by a square end plate
	// instead of a hook.
	VariantEndplate
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	case VariantEndplate:
		return "endplate"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Builder is the common contract of all anchor bolt variants.
//
// Use is two-phase: Place derives the full control point set from a
// placement frame (overwriting any previous placement), then CreateModel
// requests a fixed recipe of primitives and boolean unions from a kernel
// and returns one fused solid. The builder does not retain the solid.
type Builder interface {
	// Variant reports which bolt shape this builder produces.
	Variant() Variant

	// Dimensions returns the physical parameters the builder was built with.
	Dimensions() Dimensions

	// Place derives and stores the control point set for the given origin
	// and unit direction vectors. Calling Place again replaces the whole
	// point set.
	Place(origin, uDir, shaftDir r3.Vec) error

	// Frame returns the placement set by the last successful Place.
	// The zero Frame is returned before placement.
	Frame() Frame

	// ControlPoints returns the derived control points in order (p1, p2,
	// ...). It returns nil before placement.
	ControlPoints() []r3.Vec

	// CreateModel builds the variant's primitive solids on k and unions
	// them into one fused solid. It fails with ErrNotPlaced if Place has
	// not succeeded.
	CreateModel(k kernel.Kernel) (kernel.Solid, error)
}

// NewBuilder constructs the builder for the given variant.
func NewBuilder(v Variant, d Dimensions) (Builder, error) {
	switch v {
	case VariantA:
		return NewAnchorA(d)
	case VariantB:
		return NewAnchorB(d)
	case VariantEndplate:
		return NewAnchorEndplate(d)
	default:
		return nil, fmt.Errorf("boltcad: unknown variant %d", int(v))
	}
}

// fuse unions next into acc, treating a nil acc as the first solid.
func fuse(k kernel.Kernel, acc, next kernel.Solid) (kernel.Solid, error) {
	if acc == nil {
		return next, nil
	}
	return k.Fuse(next, acc)
}
