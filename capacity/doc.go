// Package capacity computes code-governed capacities and spacing limits
// for bearing-type bolted connections per IS 800.
//
// All operations are pure functions of their arguments: inputs are plain
// numbers (millimetres, MPa), outputs are capacities in kN and distances
// in mm. Diameters must come from the enumerated design tables; an
// unlisted diameter fails with ErrUnknownDiameter. Nothing is retried and
// no partial results are returned.
//
// Assumptions baked into the shear formula (IS 800 Cl 10.3.3): the shear
// plane always passes through the threaded area, and no long-joint, grip
// length or packing plate reduction factors are applied. The bearing
// formula (Cl 10.3.4) applies no reduction for oversized holes.
package capacity
