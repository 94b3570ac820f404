package boltcad

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// endplateThickness is the fixed plate thickness of the endplate variant,
// in millimetres.
const endplateThickness = 5.0

// AnchorEndplate is a straight anchor bolt anchored by a square end plate
// at the embedded end instead of a hook. The plate is endplateThickness
// thick and half the bolt length wide; placing it requires the third frame
// axis V = Shaft x U.
type AnchorEndplate struct {
	dims   Dimensions
	frame  Frame
	placed bool

	plateWidth float64
	head       float64 // plate seat offset below the shaft end

	p1, p2, p3 r3.Vec
}

// NewAnchorEndplate creates an endplate builder. The bolt must be longer
// than the plate stack, l > 6.
func NewAnchorEndplate(d Dimensions) (*AnchorEndplate, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	head := endplateThickness / 5
	if d.Length <= endplateThickness+head {
		return nil, fmt.Errorf("%w: endplate variant needs l > %g (l=%g)",
			ErrDimensions, endplateThickness+head, d.Length)
	}
	return &AnchorEndplate{
		dims:       d,
		plateWidth: d.Length / 2,
		head:       head,
	}, nil
}

// Variant reports VariantEndplate.
func (b *AnchorEndplate) Variant() Variant { return VariantEndplate }

// Dimensions returns the builder's physical parameters.
func (b *AnchorEndplate) Dimensions() Dimensions { return b.dims }

// Frame returns the current placement, or the zero Frame before Place.
func (b *AnchorEndplate) Frame() Frame {
	if !b.placed {
		return Frame{}
	}
	return b.frame
}

// Place derives the three control points: the shaft top, the plate seat on
// the shaft axis, and the plate corner.
func (b *AnchorEndplate) Place(origin, uDir, shaftDir r3.Vec) error {
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
		"plateCorner", b.p3)
	return nil
}

func (b *AnchorEndplate) computePoints() {
	u, shaft := b.frame.U, b.frame.Shaft
	v := b.frame.V()

	b.p1 = b.frame.Origin
	b.p2 = b.p1.Sub(shaft.Scale(b.dims.Length - endplateThickness - b.head))
	b.p3 = b.p2.
		Sub(u.Scale(b.plateWidth / 2)).
		Sub(v.Scale(b.plateWidth / 2)).
		Sub(shaft.Scale(endplateThickness / 2))
}

// ControlPoints returns p1..p3, or nil before placement.
func (b *AnchorEndplate) ControlPoints() []r3.Vec {
	if !b.placed {
		return nil
	}
	return []r3.Vec{b.p1, b.p2, b.p3}
}

// CreateModel builds the full-length shaft cylinder and the end plate box
// on k and unions them into one fused solid.
func (b *AnchorEndplate) CreateModel(k kernel.Kernel) (kernel.Solid, error) {
	if !b.placed {
		return nil, ErrNotPlaced
	}
	u, shaft := b.frame.U, b.frame.Shaft
	v := b.frame.V()

	cyl, err := k.Cylinder(b.p1, shaft.Scale(-1), b.dims.Radius, b.dims.Length)
	if err != nil {
		return nil, fmt.Errorf("anchor endplate shaft cylinder: %w", err)
	}
	plate, err := k.Box(b.p3,
		u.Scale(b.plateWidth),
		v.Scale(b.plateWidth),
		shaft.Scale(endplateThickness))
	if err != nil {
		return nil, fmt.Errorf("anchor endplate plate box: %w", err)
	}

	bolt, err := k.Fuse(cyl, plate)
	if err != nil {
		return nil, fmt.Errorf("anchor endplate fuse: %w", err)
	}
	logger().Debug("created anchor bolt model",
		"variant", b.Variant().String(), "kernel", k.Name(), "primitives", 2)
	return bolt, nil
}
