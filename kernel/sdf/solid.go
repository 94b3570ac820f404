package sdf

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// Solid is one body in the SDF kernel: a min-union of primitives, each of
// which overlaps at least one earlier member (enforced by Fuse).
type Solid struct {
	prims []primitive
	bb    kernel.Bounds
}

// newSolid wraps a single primitive as a solid.
func newSolid(p primitive) *Solid {
	return &Solid{prims: []primitive{p}, bb: p.bounds()}
}

// Bounds returns an axis-aligned box enclosing the solid.
func (s *Solid) Bounds() kernel.Bounds { return s.bb }

// PrimitiveCount returns the number of primitives fused into the solid.
func (s *Solid) PrimitiveCount() int { return len(s.prims) }

// SDF returns the signed distance from p to the solid: negative inside,
// zero on the surface, positive outside. Distances outside partial-torus
// end caps are approximate (see torusArc).
func (s *Solid) SDF(p r3.Vec) float64 {
	d := s.prims[0].sdf(p)
	for _, prim := range s.prims[1:] {
		if pd := prim.sdf(p); pd < d {
			d = pd
		}
	}
	return d
}

// Contains reports whether p lies on or inside the solid.
func (s *Solid) Contains(p r3.Vec) bool {
	return s.SDF(p) <= 0
}
