package boltcad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// frameTol bounds the allowed deviation from unit length and orthogonality
// for placement direction vectors.
const frameTol = 1e-9

// Frame is the placement of a bolt in space: an origin plus two orthogonal
// unit directions. U points across the hook throw, Shaft points along the
// embedded shaft (the bolt extends against Shaft into the foundation).
//
// A Frame is consumed by value; builders never mutate the caller's vectors.
type Frame struct {
	Origin r3.Vec
	U      r3.Vec
	Shaft  r3.Vec
}

// V returns the third axis of the frame, Shaft x U.
func (f Frame) V() r3.Vec {
	return f.Shaft.Cross(f.U)
}

// validate checks that U and Shaft are unit length and orthogonal.
func (f Frame) validate() error {
	if d := math.Abs(r3.Norm(f.U) - 1); d > frameTol {
		return fmt.Errorf("%w: u is not unit length (|u|=%g)", ErrFrame, r3.Norm(f.U))
	}
	if d := math.Abs(r3.Norm(f.Shaft) - 1); d > frameTol {
		return fmt.Errorf("%w: shaft is not unit length (|shaft|=%g)", ErrFrame, r3.Norm(f.Shaft))
	}
	if d := math.Abs(f.U.Dot(f.Shaft)); d > frameTol {
		return fmt.Errorf("%w: u and shaft are not orthogonal (dot=%g)", ErrFrame, f.U.Dot(f.Shaft))
	}
	return nil
}
