package boltcad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// AnchorA is a hooked anchor bolt with a straight entry shaft. The shaft
// runs straight for l-c, bends across the hook throw, and closes in a
// semicircular hook bulb of diameter a/2-r.
//
// Geometry recipe: two angled cylinders joined by gap-filling spheres, a
// 180-degree revolved circular profile forming the bulb, and a short
// closing cylinder. Spheres sit at every non-collinear cylinder joint: two
// cylinders meeting at an angle leave a wedge-shaped void that only a
// sphere of the same radius closes smoothly.
type AnchorA struct {
	dims   Dimensions
	frame  Frame
	placed bool

	// Derived lengths, recomputed on every Place.
	cyl1Len float64 // straight entry shaft
	cyl2Run float64 // bend run along the shaft axis
	arc     float64 // hook bulb arc radius
	cyl4Len float64 // closing cylinder
	cyl2Hyp float64 // slant length of the bend cylinder

	p1, p2, p3, p4, p5, p6 r3.Vec
	dir2, dir4             r3.Vec // bend cylinder axes
}

// NewAnchorA creates a variant A builder, validating that every derived
// primitive length comes out positive.
func NewAnchorA(d Dimensions) (*AnchorA, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	b := &AnchorA{
		dims:    d,
		cyl1Len: d.Length - d.Throw,
		cyl2Run: d.Throw - d.HeadWidth/2,
		arc:     d.HeadWidth/2 - d.Radius,
		cyl4Len: d.Throw - d.HeadWidth/2 - 4*d.Radius,
	}
	switch {
	case b.cyl1Len <= 0:
		return nil, fmt.Errorf("%w: variant A needs l > c (l=%g, c=%g)", ErrDimensions, d.Length, d.Throw)
	case b.cyl2Run <= 0:
		return nil, fmt.Errorf("%w: variant A needs c > a/2 (c=%g, a=%g)", ErrDimensions, d.Throw, d.HeadWidth)
	case b.arc <= 0:
		return nil, fmt.Errorf("%w: variant A needs a/2 > r (a=%g, r=%g)", ErrDimensions, d.HeadWidth, d.Radius)
	case b.cyl4Len <= 0:
		return nil, fmt.Errorf("%w: variant A needs c-a/2 > 4r (c=%g, a=%g, r=%g)", ErrDimensions, d.Throw, d.HeadWidth, d.Radius)
	}
	b.cyl2Hyp = math.Hypot(b.cyl2Run, b.arc)
	return b, nil
}

// Variant reports VariantA.
func (b *AnchorA) Variant() Variant { return VariantA }

// Dimensions returns the builder's physical parameters.
func (b *AnchorA) Dimensions() Dimensions { return b.dims }

// Frame returns the current placement, or the zero Frame before Place.
func (b *AnchorA) Frame() Frame {
	if !b.placed {
		return Frame{}
	}
	return b.frame
}

// Place derives the six control points from the placement frame.
// The whole point set is recomputed; nothing survives a re-place.
func (b *AnchorA) Place(origin, uDir, shaftDir r3.Vec) error {
	f := Frame{Origin: origin, U: uDir, Shaft: shaftDir}
	if err := f.validate(); err != nil {
		return err
	}
	b.frame = f
	b.computePoints()
	b.placed = true
	logger().Debug("placed anchor bolt",
		"variant", b.Variant().String(),
		"origin", origin,
		"shaftEnd", b.p2)
	return nil
}

func (b *AnchorA) computePoints() {
	u, shaft := b.frame.U, b.frame.Shaft

	b.p1 = b.frame.Origin
	b.p2 = b.p1.Sub(shaft.Scale(b.cyl1Len))
	b.p3 = b.p2.Sub(u.Scale(b.arc)).Sub(shaft.Scale(b.cyl2Run))
	b.p4 = b.p3.Add(u.Scale(b.arc))
	b.p5 = b.p4.Add(u.Scale(b.arc))
	b.p6 = b.p5.Sub(u.Scale(b.dims.HeadWidth / 2)).Sub(shaft.Scale(b.arc - b.dims.Radius))

	b.dir2 = b.p3.Sub(b.p2)
	b.dir4 = b.p2.Sub(b.p5)
}

// ControlPoints returns p1..p6, or nil before placement.
func (b *AnchorA) ControlPoints() []r3.Vec {
	if !b.placed {
		return nil
	}
	return []r3.Vec{b.p1, b.p2, b.p3, b.p4, b.p5, b.p6}
}

// CreateModel builds the seven primitives on k and unions them into one
// fused solid, in the fixed order: entry cylinder, bend cylinder, joint
// spheres at p2 and p3, revolved hook bulb, joint sphere at p5, closing
// cylinder.
func (b *AnchorA) CreateModel(k kernel.Kernel) (kernel.Solid, error) {
	if !b.placed {
		return nil, ErrNotPlaced
	}
	r := b.dims.Radius
	shaft := b.frame.Shaft

	cyl1, err := k.Cylinder(b.p1, shaft.Scale(-1), r, b.cyl1Len)
	if err != nil {
		return nil, fmt.Errorf("anchor A entry cylinder: %w", err)
	}
	cyl2, err := k.Cylinder(b.p2, b.dir2, r, b.cyl2Hyp)
	if err != nil {
		return nil, fmt.Errorf("anchor A bend cylinder: %w", err)
	}
	s1, err := k.Sphere(b.p2, r)
	if err != nil {
		return nil, fmt.Errorf("anchor A joint sphere: %w", err)
	}
	s2, err := k.Sphere(b.p3, r)
	if err != nil {
		return nil, fmt.Errorf("anchor A joint sphere: %w", err)
	}
	// Hook bulb: a circular wire at p3 (not a hexagonal profile) revolved
	// half a turn about the axis through p4.
	bulb, err := k.RevolveCircle(b.p3, shaft, r, b.p4, b.frame.V().Scale(-1), math.Pi)
	if err != nil {
		return nil, fmt.Errorf("anchor A hook bulb: %w", err)
	}
	s3, err := k.Sphere(b.p5, r)
	if err != nil {
		return nil, fmt.Errorf("anchor A joint sphere: %w", err)
	}
	cyl4, err := k.Cylinder(b.p5, b.dir4, r, b.cyl4Len)
	if err != nil {
		return nil, fmt.Errorf("anchor A closing cylinder: %w", err)
	}

	var bolt kernel.Solid
	for _, part := range []kernel.Solid{cyl1, cyl2, s1, s2, bulb, s3, cyl4} {
		if bolt, err = fuse(k, bolt, part); err != nil {
			return nil, fmt.Errorf("anchor A fuse: %w", err)
		}
	}
	logger().Debug("created anchor bolt model",
		"variant", b.Variant().String(), "kernel", k.Name(), "primitives", 7)
	return bolt, nil
}
