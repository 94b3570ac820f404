package boltcad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// AnchorB is a bent anchor bolt with a straight hook leg. Unlike variant A,
// every bend dimension is a fixed multiple of the shaft radius r: the hook
// bulb arc is 3r across, the straight hook leg is 10r minus the bulb, and
// the bend lead-in drops 2r. Throw and HeadWidth play no part in the shape;
// the two hooked variants intentionally parameterize the same physical bolt
// differently.
type AnchorB struct {
	dims   Dimensions
	frame  Frame // stored with the shaft direction negated, as placed
	placed bool

	cyl1Len float64 // straight entry shaft, l - 12r
	cyl2Len float64 // bend run along the shaft axis, 2r
	cyl3Len float64 // straight hook leg, 7r
	arc     float64 // hook bulb arc radius, 3r
	tailLen float64 // short tail closing the hook, 2r
	cyl2Hyp float64 // slant length of the bend cylinder

	p1, p2, p3, p4, p5, p6 r3.Vec
	dir2                   r3.Vec
}

// NewAnchorB creates a variant B builder. The bolt must be long enough for
// the fixed bend geometry, l > 12r.
func NewAnchorB(d Dimensions) (*AnchorB, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	b := &AnchorB{
		dims:    d,
		arc:     3 * d.Radius,
		cyl3Len: 10*d.Radius - 3*d.Radius,
		cyl2Len: 2 * d.Radius,
		tailLen: 5*d.Radius - 3*d.Radius,
	}
	b.cyl1Len = d.Length - b.cyl3Len - b.cyl2Len - b.arc
	if b.cyl1Len <= 0 {
		return nil, fmt.Errorf("%w: variant B needs l > 12r (l=%g, r=%g)", ErrDimensions, d.Length, d.Radius)
	}
	b.cyl2Hyp = math.Hypot(b.cyl2Len, 2*d.Radius)
	return b, nil
}

// Variant reports VariantB.
func (b *AnchorB) Variant() Variant { return VariantB }

// Dimensions returns the builder's physical parameters.
func (b *AnchorB) Dimensions() Dimensions { return b.dims }

// Frame returns the placement as stored, with the shaft direction negated
// relative to the Place argument. The zero Frame is returned before Place.
func (b *AnchorB) Frame() Frame {
	if !b.placed {
		return Frame{}
	}
	return b.frame
}

// Place derives the six control points. Variant B grows away from the
// origin against the supplied shaft direction, so the direction is negated
// before the points are derived.
func (b *AnchorB) Place(origin, uDir, shaftDir r3.Vec) error {
	f := Frame{Origin: origin, U: uDir, Shaft: shaftDir.Scale(-1)}
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

func (b *AnchorB) computePoints() {
	u, shaft := b.frame.U, b.frame.Shaft
	r := b.dims.Radius

	b.p1 = b.frame.Origin
	b.p2 = b.p1.Add(shaft.Scale(b.cyl1Len))
	b.p3 = b.p2.Sub(u.Scale(2 * r)).Add(shaft.Scale(b.cyl2Len))
	b.p4 = b.p3.Add(shaft.Scale(b.cyl3Len))
	b.p5 = b.p4.Add(u.Scale(2 * r))
	b.p6 = b.p5.Add(u.Scale(2 * r))

	b.dir2 = b.p3.Sub(b.p2)
}

// ControlPoints returns p1..p6, or nil before placement.
func (b *AnchorB) ControlPoints() []r3.Vec {
	if !b.placed {
		return nil
	}
	return []r3.Vec{b.p1, b.p2, b.p3, b.p4, b.p5, b.p6}
}

// CreateModel builds the seven primitives on k and unions them into one
// fused solid: entry cylinder, bend cylinder, hook leg cylinder, revolved
// hook bulb, tail cylinder, then the two joint spheres.
func (b *AnchorB) CreateModel(k kernel.Kernel) (kernel.Solid, error) {
	if !b.placed {
		return nil, ErrNotPlaced
	}
	r := b.dims.Radius
	shaft := b.frame.Shaft

	cyl1, err := k.Cylinder(b.p1, shaft, r, b.cyl1Len)
	if err != nil {
		return nil, fmt.Errorf("anchor B entry cylinder: %w", err)
	}
	cyl2, err := k.Cylinder(b.p2, b.dir2, r, b.cyl2Hyp)
	if err != nil {
		return nil, fmt.Errorf("anchor B bend cylinder: %w", err)
	}
	cyl3, err := k.Cylinder(b.p3, shaft, r, b.cyl3Len)
	if err != nil {
		return nil, fmt.Errorf("anchor B hook leg cylinder: %w", err)
	}
	// Hook bulb: circular wire at p4 revolved half a turn about the axis
	// through p5.
	bulb, err := k.RevolveCircle(b.p4, shaft, r, b.p5, b.frame.V(), math.Pi)
	if err != nil {
		return nil, fmt.Errorf("anchor B hook bulb: %w", err)
	}
	tail, err := k.Cylinder(b.p6, shaft.Scale(-1), r, b.tailLen)
	if err != nil {
		return nil, fmt.Errorf("anchor B tail cylinder: %w", err)
	}
	s1, err := k.Sphere(b.p2, r)
	if err != nil {
		return nil, fmt.Errorf("anchor B joint sphere: %w", err)
	}
	s2, err := k.Sphere(b.p3, r)
	if err != nil {
		return nil, fmt.Errorf("anchor B joint sphere: %w", err)
	}

	var bolt kernel.Solid
	for _, part := range []kernel.Solid{cyl1, cyl2, cyl3, bulb, tail, s1, s2} {
		if bolt, err = fuse(k, bolt, part); err != nil {
			return nil, fmt.Errorf("anchor B fuse: %w", err)
		}
	}
	logger().Debug("created anchor bolt model",
		"variant", b.Variant().String(), "kernel", k.Name(), "primitives", 7)
	return bolt, nil
}
