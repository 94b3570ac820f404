// Package sdf is a pure-Go software geometry kernel backed by signed
// distance fields.
//
// Each primitive carries an SDF (negative inside, positive outside); a
// fused solid is the min-union of its members. The kernel is exact enough
// for placement validation, bounding queries and preview rendering, and it
// enforces on Fuse that every union stays a single connected body. It is
// not a B-rep modeler: it produces no faces or edges to export.
//
// The kernel registers itself under the name "sdf" on import:
//
//	import _ "github.com/gosteel/boltcad/kernel/sdf"
package sdf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// weldTol is the distance below which two solids are considered to touch.
// Joint primitives in the bolt recipes meet exactly at shared control
// points; the tolerance absorbs the floating-point residue of deriving
// those points along different vector paths.
const weldTol = 1e-6

// orthoTol bounds the allowed deviation from orthogonality for box edges
// and revolve axes.
const orthoTol = 1e-9

// Kernel is the SDF software kernel. The zero value is ready to use.
type Kernel struct{}

// init registers the sdf kernel on package import.
func init() {
	kernel.Register(kernel.KernelSDF, func() kernel.Kernel {
		return Kernel{}
	})
}

// New creates a new SDF kernel.
func New() Kernel { return Kernel{} }

// Name returns the kernel identifier.
func (Kernel) Name() string { return kernel.KernelSDF }

// Cylinder creates a capped solid cylinder from the base cap center.
func (Kernel) Cylinder(base, axis r3.Vec, radius, height float64) (kernel.Solid, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cylinder radius=%g height=%g", kernel.ErrInvalidPrimitive, radius, height)
	}
	n := r3.Norm(axis)
	if n == 0 {
		return nil, fmt.Errorf("%w: cylinder axis is zero", kernel.ErrInvalidPrimitive)
	}
	return newSolid(&cylinder{
		base:   base,
		axis:   axis.Scale(1 / n),
		radius: radius,
		height: height,
	}), nil
}

// Sphere creates a solid sphere.
func (Kernel) Sphere(center r3.Vec, radius float64) (kernel.Solid, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius=%g", kernel.ErrInvalidPrimitive, radius)
	}
	return newSolid(&sphere{center: center, radius: radius}), nil
}

// Box creates a solid box from a corner and three orthogonal edge vectors.
func (Kernel) Box(corner, du, dv, dw r3.Vec) (kernel.Solid, error) {
	edges := [3]r3.Vec{du, dv, dw}
	b := &box{corner: corner}
	for i, e := range edges {
		n := r3.Norm(e)
		if n == 0 {
			return nil, fmt.Errorf("%w: box edge %d is zero", kernel.ErrInvalidPrimitive, i)
		}
		b.axes[i] = e.Scale(1 / n)
		b.half[i] = n / 2
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if d := math.Abs(b.axes[i].Dot(b.axes[j])); d > orthoTol {
			return nil, fmt.Errorf("%w: box edges %d and %d not orthogonal (dot=%g)",
				kernel.ErrInvalidPrimitive, i, j, d)
		}
	}
	b.center = corner.Add(du.Scale(0.5)).Add(dv.Scale(0.5)).Add(dw.Scale(0.5))
	return newSolid(b), nil
}

// RevolveCircle revolves a circular face about an in-plane axis, producing
// a (partial) solid torus. The revolve sweeps from the circle's position by
// angle radians following the right-hand rule about axisDir.
func (Kernel) RevolveCircle(center, normal r3.Vec, radius float64, axisPoint, axisDir r3.Vec, angle float64) (kernel.Solid, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: revolve profile radius=%g", kernel.ErrInvalidPrimitive, radius)
	}
	if angle <= 0 || angle > 2*math.Pi {
		return nil, fmt.Errorf("%w: revolve angle=%g rad", kernel.ErrInvalidPrimitive, angle)
	}
	an := r3.Norm(axisDir)
	if an == 0 {
		return nil, fmt.Errorf("%w: revolve axis is zero", kernel.ErrInvalidPrimitive)
	}
	axis := axisDir.Scale(1 / an)
	arm := center.Sub(axisPoint)
	major := r3.Norm(arm)
	if major == 0 {
		return nil, fmt.Errorf("%w: revolve profile centered on the axis", kernel.ErrInvalidPrimitive)
	}
	start := arm.Scale(1 / major)
	nn := r3.Norm(normal)
	if nn == 0 {
		return nil, fmt.Errorf("%w: revolve profile normal is zero", kernel.ErrInvalidPrimitive)
	}
	un := normal.Scale(1 / nn)
	// The revolve axis must lie in the profile plane, or the swept solid
	// is not a torus section.
	if d := math.Abs(un.Dot(axis)); d > orthoTol {
		return nil, fmt.Errorf("%w: revolve axis not in profile plane (dot=%g)", kernel.ErrInvalidPrimitive, d)
	}
	if d := math.Abs(un.Dot(start)); d > orthoTol {
		return nil, fmt.Errorf("%w: revolve axis point not in profile plane (dot=%g)", kernel.ErrInvalidPrimitive, d)
	}
	return newSolid(newTorusArc(axisPoint, axis, start, major, radius, angle)), nil
}

// Fuse unions two solids produced by this kernel. Fusing solids that share
// no point or volume fails with kernel.ErrDisjoint.
func (Kernel) Fuse(a, b kernel.Solid) (kernel.Solid, error) {
	sa, ok := a.(*Solid)
	if !ok {
		return nil, fmt.Errorf("%w: %T", kernel.ErrForeignSolid, a)
	}
	sb, ok := b.(*Solid)
	if !ok {
		return nil, fmt.Errorf("%w: %T", kernel.ErrForeignSolid, b)
	}
	if !touches(sa, sb) {
		return nil, kernel.ErrDisjoint
	}
	prims := make([]primitive, 0, len(sa.prims)+len(sb.prims))
	prims = append(prims, sa.prims...)
	prims = append(prims, sb.prims...)
	return &Solid{prims: prims, bb: sa.bb.Union(sb.bb)}, nil
}

// touches reports whether the two solids share a point or volume: some
// witness point of one side must lie on or inside the other.
func touches(a, b *Solid) bool {
	for _, p := range b.prims {
		for _, w := range p.witnesses() {
			if a.SDF(w) <= weldTol {
				return true
			}
		}
	}
	for _, p := range a.prims {
		for _, w := range p.witnesses() {
			if b.SDF(w) <= weldTol {
				return true
			}
		}
	}
	return false
}
