package boltcad

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
	"github.com/gosteel/boltcad/kernel/sdf"
)

// refDims is the reference bolt used across builder tests:
// l=200, c=105, a=60, r=8.
var refDims = Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8}

func placeCanonical(t *testing.T, b Builder) {
	t.Helper()
	if err := b.Place(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1}); err != nil {
		t.Fatalf("Place: %v", err)
	}
}

func TestAnchorA_DerivedLengths(t *testing.T) {
	b, err := NewAnchorA(refDims)
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}

	if b.cyl1Len != 95 {
		t.Errorf("entry cylinder length = %v, want 95", b.cyl1Len)
	}
	if b.cyl2Run != 75 {
		t.Errorf("bend run = %v, want 75", b.cyl2Run)
	}
	if b.arc != 22 {
		t.Errorf("hook arc radius = %v, want 22", b.arc)
	}
	if b.cyl4Len != 43 {
		t.Errorf("closing cylinder length = %v, want 43", b.cyl4Len)
	}
	if want := math.Hypot(75, 22); math.Abs(b.cyl2Hyp-want) > 1e-12 {
		t.Errorf("bend cylinder slant = %v, want %v", b.cyl2Hyp, want)
	}
}

func TestAnchorA_ControlPoints(t *testing.T) {
	b, err := NewAnchorA(refDims)
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	placeCanonical(t, b)

	want := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -95},
		{X: -22, Y: 0, Z: -170},
		{X: 0, Y: 0, Z: -170},
		{X: 22, Y: 0, Z: -170},
		{X: -8, Y: 0, Z: -184},
	}
	if diff := cmp.Diff(want, b.ControlPoints(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("control points mismatch (-want +got):\n%s", diff)
	}
}

func TestAnchorA_RePlaceOverwrites(t *testing.T) {
	b, err := NewAnchorA(refDims)
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	placeCanonical(t, b)

	origin := r3.Vec{X: 10, Y: 20, Z: 30}
	if err := b.Place(origin, r3.Vec{X: 1}, r3.Vec{Z: 1}); err != nil {
		t.Fatalf("re-Place: %v", err)
	}
	pts := b.ControlPoints()
	if pts[0] != origin {
		t.Errorf("p1 = %v after re-place, want %v", pts[0], origin)
	}
	want := r3.Vec{X: 10, Y: 20, Z: -65}
	if pts[1] != want {
		t.Errorf("p2 = %v after re-place, want %v", pts[1], want)
	}
}

func TestAnchorA_CreateModel(t *testing.T) {
	b, err := NewAnchorA(refDims)
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	placeCanonical(t, b)

	solid, err := b.CreateModel(sdf.New())
	if err != nil {
		t.Fatalf("CreateModel: %v", err)
	}
	s, ok := solid.(*sdf.Solid)
	if !ok {
		t.Fatalf("CreateModel returned %T, want *sdf.Solid", solid)
	}
	if s.PrimitiveCount() != 7 {
		t.Errorf("PrimitiveCount() = %d, want 7", s.PrimitiveCount())
	}

	// Points that must lie inside the fused bolt: shaft midpoint, all
	// bend joints, and the bottom of the hook bulb sweep.
	inside := []r3.Vec{
		{X: 0, Y: 0, Z: -47.5},
		{X: 0, Y: 0, Z: -95},
		{X: -22, Y: 0, Z: -170},
		{X: 22, Y: 0, Z: -170},
		{X: 0, Y: 0, Z: -192},
	}
	for _, p := range inside {
		if !s.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	outside := []r3.Vec{
		{X: 100, Y: 100, Z: 50},
		{X: 0, Y: 0, Z: 10},
	}
	for _, p := range outside {
		if s.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestAnchorA_CreateModelBeforePlace(t *testing.T) {
	b, err := NewAnchorA(refDims)
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	if _, err := b.CreateModel(kernel.MustDefault()); !errors.Is(err, ErrNotPlaced) {
		t.Errorf("CreateModel error = %v, want ErrNotPlaced", err)
	}
}

func TestNewAnchorA_Feasibility(t *testing.T) {
	tests := []struct {
		name string
		d    Dimensions
	}{
		{"throw exceeds length", Dimensions{Length: 100, Throw: 105, HeadWidth: 60, Radius: 8}},
		{"head wider than throw", Dimensions{Length: 200, Throw: 25, HeadWidth: 60, Radius: 8}},
		{"radius exceeds half head", Dimensions{Length: 200, Throw: 105, HeadWidth: 14, Radius: 8}},
		{"no room for closing cylinder", Dimensions{Length: 200, Throw: 100, HeadWidth: 140, Radius: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnchorA(tt.d); !errors.Is(err, ErrDimensions) {
				t.Errorf("NewAnchorA error = %v, want ErrDimensions", err)
			}
		})
	}
}
