package kernel

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Common kernel errors.
var (
	// ErrKernelNotAvailable is returned when a requested kernel is not
	// registered.
	ErrKernelNotAvailable = errors.New("kernel: not available")

	// ErrInvalidPrimitive is returned when primitive parameters are
	// degenerate (non-positive radius or height, zero-length axis, ...).
	ErrInvalidPrimitive = errors.New("kernel: invalid primitive parameters")

	// ErrForeignSolid is returned by Fuse when a solid was produced by a
	// different kernel implementation.
	ErrForeignSolid = errors.New("kernel: solid from a different kernel")

	// ErrDisjoint is returned by Fuse when the two solids share no point
	// or volume, so their union would not be a single body.
	ErrDisjoint = errors.New("kernel: solids are disjoint")
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max r3.Vec
}

// Union returns the smallest bounds enclosing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: r3.Vec{
			X: min(b.Min.X, o.Min.X),
			Y: min(b.Min.Y, o.Min.Y),
			Z: min(b.Min.Z, o.Min.Z),
		},
		Max: r3.Vec{
			X: max(b.Max.X, o.Max.X),
			Y: max(b.Max.Y, o.Max.Y),
			Z: max(b.Max.Z, o.Max.Z),
		},
	}
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() r3.Vec {
	return b.Max.Sub(b.Min)
}

// Solid is an opaque handle to one solid body. Once returned from a kernel
// operation it is owned by the caller; kernels retain no reference.
// Concrete kernels may expose richer inspection on their solid types.
type Solid interface {
	// Bounds returns an axis-aligned box enclosing the solid.
	Bounds() Bounds
}

// Kernel is the capability interface for creating and combining solids.
// All lengths are in the same unit as the coordinates (millimetres in
// boltcad); angles are in radians.
type Kernel interface {
	// Name returns the kernel identifier (e.g. "sdf").
	Name() string

	// Cylinder creates a solid cylinder from a base cap center, extending
	// height along axis with the given radius. The axis need not be unit
	// length, only nonzero.
	Cylinder(base, axis r3.Vec, radius, height float64) (Solid, error)

	// Sphere creates a solid sphere.
	Sphere(center r3.Vec, radius float64) (Solid, error)

	// Box creates a solid rectangular box from a corner point and three
	// mutually orthogonal edge vectors.
	Box(corner, du, dv, dw r3.Vec) (Solid, error)

	// RevolveCircle revolves a circular face (center, plane normal,
	// radius) about the axis through axisPoint along axisDir by angle
	// radians, producing a solid of revolution. The axis must lie in the
	// plane of the circle.
	RevolveCircle(center, normal r3.Vec, radius float64, axisPoint, axisDir r3.Vec, angle float64) (Solid, error)

	// Fuse unions two solids into one body. Both solids must come from
	// this kernel and must share at least a point, otherwise Fuse fails
	// with ErrForeignSolid or ErrDisjoint.
	Fuse(a, b Solid) (Solid, error)
}
