package kernel

import (
	"errors"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// stubKernel is a registry test double; its operations are never called.
type stubKernel struct{ name string }

func (s stubKernel) Name() string { return s.name }
func (stubKernel) Cylinder(base, axis r3.Vec, radius, height float64) (Solid, error) {
	return nil, nil
}
func (stubKernel) Sphere(center r3.Vec, radius float64) (Solid, error) { return nil, nil }
func (stubKernel) Box(corner, du, dv, dw r3.Vec) (Solid, error)        { return nil, nil }
func (stubKernel) RevolveCircle(center, normal r3.Vec, radius float64, axisPoint, axisDir r3.Vec, angle float64) (Solid, error) {
	return nil, nil
}
func (stubKernel) Fuse(a, b Solid) (Solid, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	const name = "stub-test"
	Register(name, func() Kernel { return stubKernel{name: name} })
	t.Cleanup(func() { Unregister(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	if !slices.Contains(Available(), name) {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}

	k := Get(name)
	if k == nil {
		t.Fatal("Get returned nil for a registered kernel")
	}
	if k.Name() != name {
		t.Errorf("Name() = %q, want %q", k.Name(), name)
	}

	// No priority kernel is linked into this test binary, so Default
	// falls back to any registered kernel.
	if d := Default(); d == nil {
		t.Error("Default() = nil with a kernel registered")
	}

	Unregister(name)
	if Get(name) != nil {
		t.Errorf("Get(%q) != nil after Unregister", name)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	if k := Get("no-such-kernel"); k != nil {
		t.Errorf("Get(unknown) = %v, want nil", k)
	}
	if _, err := Lookup("no-such-kernel"); !errors.Is(err, ErrKernelNotAvailable) {
		t.Errorf("Lookup(unknown) error = %v, want ErrKernelNotAvailable", err)
	}
}

func TestBounds_Union(t *testing.T) {
	a := Bounds{Min: r3.Vec{X: -1, Y: 0, Z: 0}, Max: r3.Vec{X: 1, Y: 2, Z: 3}}
	b := Bounds{Min: r3.Vec{X: 0, Y: -5, Z: 1}, Max: r3.Vec{X: 4, Y: 1, Z: 2}}

	got := a.Union(b)
	want := Bounds{Min: r3.Vec{X: -1, Y: -5, Z: 0}, Max: r3.Vec{X: 4, Y: 2, Z: 3}}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	size := got.Size()
	if size != (r3.Vec{X: 5, Y: 7, Z: 3}) {
		t.Errorf("Size = %v, want {5 7 3}", size)
	}
}
