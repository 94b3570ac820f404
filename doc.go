// Package boltcad builds parametric 3D solid models of anchor bolts for
// structural steel connection design.
//
// # Overview
//
// boltcad covers the two computational halves of a bolted-connection design
// tool: code-governed bolt capacity and spacing checks (package capacity),
// and parametric anchor-bolt solid geometry (this package). The outer
// application that collects parameters, displays models and persists
// drawings is out of scope.
//
// # Quick Start
//
//	import (
//	    "github.com/gosteel/boltcad"
//	    "github.com/gosteel/boltcad/kernel"
//	    _ "github.com/gosteel/boltcad/kernel/sdf"
//	)
//
//	b, err := boltcad.NewBuilder(boltcad.VariantA, boltcad.Dimensions{
//	    Length: 200, Throw: 105, HeadWidth: 60, Radius: 8,
//	})
//	if err != nil { ... }
//	err = b.Place(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1})
//	solid, err := b.CreateModel(kernel.MustDefault())
//
// # Architecture
//
// The library is organized into:
//   - Root package: bolt variants, placement frames, control-point math
//   - kernel: the narrow solid-modeling capability interface and registry
//   - kernel/sdf: signed-distance-field software kernel (always available)
//   - capacity: IS 800 bolt shear/bearing capacity and spacing limits
//   - drawing: 2D plan and elevation drawings
//   - report: PDF design reports and XLSX bolt schedules
//
// Real CAD kernels (B-rep, mesh) plug in through kernel.Register; builders
// only describe the sequence of primitive and boolean requests.
//
// # Concurrency
//
// Builder instances keep their control points between Place and CreateModel
// and are not safe for concurrent use. Share nothing, or create one builder
// per goroutine; builders are cheap.
package boltcad
