package boltcad

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestFrame_V(t *testing.T) {
	tests := []struct {
		name     string
		u, shaft r3.Vec
		want     r3.Vec
	}{
		{"canonical", r3.Vec{X: 1}, r3.Vec{Z: 1}, r3.Vec{Y: 1}},
		{"rotated", r3.Vec{Y: 1}, r3.Vec{X: 1}, r3.Vec{Z: 1}},
		{"flipped shaft", r3.Vec{X: 1}, r3.Vec{Z: -1}, r3.Vec{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{U: tt.u, Shaft: tt.shaft}
			got := f.V()
			if got != tt.want {
				t.Errorf("V() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlace_FrameValidation(t *testing.T) {
	dims := Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8}

	tests := []struct {
		name     string
		u, shaft r3.Vec
		wantErr  bool
	}{
		{"canonical", r3.Vec{X: 1}, r3.Vec{Z: 1}, false},
		{"tilted orthonormal", r3.Vec{X: 0.6, Y: 0.8}, r3.Vec{Z: 1}, false},
		{"non-unit u", r3.Vec{X: 2}, r3.Vec{Z: 1}, true},
		{"non-unit shaft", r3.Vec{X: 1}, r3.Vec{Z: 0.5}, true},
		{"zero u", r3.Vec{}, r3.Vec{Z: 1}, true},
		{"not orthogonal", r3.Vec{X: 1}, r3.Vec{X: 1}, true},
		{"slightly skewed", r3.Vec{X: 1}, r3.Vec{X: 0.1, Z: 0.99498743710662}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewAnchorA(dims)
			if err != nil {
				t.Fatalf("NewAnchorA: %v", err)
			}
			err = b.Place(r3.Vec{}, tt.u, tt.shaft)
			if tt.wantErr {
				if !errors.Is(err, ErrFrame) {
					t.Errorf("Place() error = %v, want ErrFrame", err)
				}
				if pts := b.ControlPoints(); pts != nil {
					t.Errorf("ControlPoints() = %v after failed Place, want nil", pts)
				}
			} else if err != nil {
				t.Errorf("Place() error = %v, want nil", err)
			}
		})
	}
}

func TestDimensions_Validate(t *testing.T) {
	tests := []struct {
		name string
		d    Dimensions
	}{
		{"zero length", Dimensions{Length: 0, Throw: 105, HeadWidth: 60, Radius: 8}},
		{"negative throw", Dimensions{Length: 200, Throw: -1, HeadWidth: 60, Radius: 8}},
		{"zero head width", Dimensions{Length: 200, Throw: 105, HeadWidth: 0, Radius: 8}},
		{"negative radius", Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: -8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []Variant{VariantA, VariantB, VariantEndplate} {
				if _, err := NewBuilder(v, tt.d); !errors.Is(err, ErrDimensions) {
					t.Errorf("NewBuilder(%v) error = %v, want ErrDimensions", v, err)
				}
			}
		})
	}
}

func TestNewBuilder_Variants(t *testing.T) {
	dims := Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8}
	for _, v := range []Variant{VariantA, VariantB, VariantEndplate} {
		b, err := NewBuilder(v, dims)
		if err != nil {
			t.Fatalf("NewBuilder(%v): %v", v, err)
		}
		if b.Variant() != v {
			t.Errorf("Variant() = %v, want %v", b.Variant(), v)
		}
		if b.Dimensions() != dims {
			t.Errorf("Dimensions() = %+v, want %+v", b.Dimensions(), dims)
		}
	}

	if _, err := NewBuilder(Variant(99), dims); err == nil {
		t.Error("NewBuilder(99) succeeded, want error")
	}
}
