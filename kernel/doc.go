// Package kernel defines the solid-modeling capability interface consumed
// by the boltcad geometry builders, and a registry of kernel
// implementations.
//
// A Kernel creates primitive solids (cylinders, spheres, boxes, solids of
// revolution) and unions them. Builders depend only on this narrow
// interface; the actual modeling engine is a swappable implementation
// detail. The kernel/sdf package provides a pure-Go implementation that is
// always available, and external B-rep or mesh kernels can be plugged in
// via Register.
//
// Kernel selection mirrors package registration:
//
//	import _ "github.com/gosteel/boltcad/kernel/sdf"
//
//	k := kernel.MustDefault()
package kernel
