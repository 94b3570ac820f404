package drawing

import (
	"bytes"
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad"
)

func TestBoltPattern(t *testing.T) {
	dc, err := BoltPattern(PatternSpec{
		Rows: 2, Cols: 2,
		Pitch: 50, Gauge: 60,
		EndDistance: 40, EdgeDistance: 35,
		HoleDiameter: 22,
		Scale:        2,
	})
	if err != nil {
		t.Fatalf("BoltPattern: %v", err)
	}

	// Plate is 130x130 mm at 2 px/mm plus the margin on each side.
	if got, want := dc.Width(), 308; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}
	if got, want := dc.Height(), 308; got != want {
		t.Errorf("Height() = %d, want %d", got, want)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("EncodePNG wrote nothing")
	}
}

func TestBoltPattern_SingleBolt(t *testing.T) {
	// One row and one column need no pitch or gauge.
	if _, err := BoltPattern(PatternSpec{
		Rows: 1, Cols: 1,
		EndDistance: 40, EdgeDistance: 40,
		HoleDiameter: 22,
	}); err != nil {
		t.Fatalf("BoltPattern: %v", err)
	}
}

func TestBoltPattern_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec PatternSpec
	}{
		{"zero rows", PatternSpec{Cols: 2, Gauge: 60, EndDistance: 40, EdgeDistance: 40, HoleDiameter: 22}},
		{"two rows no pitch", PatternSpec{Rows: 2, Cols: 1, EndDistance: 40, EdgeDistance: 40, HoleDiameter: 22}},
		{"two cols no gauge", PatternSpec{Rows: 1, Cols: 2, Pitch: 50, EndDistance: 40, EdgeDistance: 40, HoleDiameter: 22}},
		{"zero end distance", PatternSpec{Rows: 1, Cols: 1, EdgeDistance: 40, HoleDiameter: 22}},
		{"zero hole", PatternSpec{Rows: 1, Cols: 1, EndDistance: 40, EdgeDistance: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoltPattern(tt.spec); !errors.Is(err, ErrSpec) {
				t.Errorf("error = %v, want ErrSpec", err)
			}
		})
	}
}

func TestAnchorElevation(t *testing.T) {
	b, err := boltcad.NewAnchorA(boltcad.Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8})
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	if err := b.Place(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1}); err != nil {
		t.Fatalf("Place: %v", err)
	}

	dc, err := AnchorElevation(b, 0)
	if err != nil {
		t.Fatalf("AnchorElevation: %v", err)
	}
	if dc.Width() <= 0 || dc.Height() <= 0 {
		t.Errorf("empty canvas %dx%d", dc.Width(), dc.Height())
	}
	// The elevation spans the full embedded length, so the canvas is
	// taller than it is wide.
	if dc.Height() <= dc.Width() {
		t.Errorf("Height() = %d, want > Width() = %d", dc.Height(), dc.Width())
	}
}

func TestAnchorElevation_Unplaced(t *testing.T) {
	b, err := boltcad.NewAnchorB(boltcad.Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8})
	if err != nil {
		t.Fatalf("NewAnchorB: %v", err)
	}
	if _, err := AnchorElevation(b, 1); !errors.Is(err, boltcad.ErrNotPlaced) {
		t.Errorf("error = %v, want ErrNotPlaced", err)
	}
}
