package boltcad

import "fmt"

// Dimensions are the four physical parameters shared by all anchor bolt
// variants, in millimetres.
//
//   - Length: total bolt length l
//   - Throw: hook throw / head offset c
//   - HeadWidth: hook head width a
//   - Radius: shaft (and fillet) radius r
//
// Variant B derives its bend entirely from Radius; Throw and HeadWidth are
// still required positive so one Dimensions value can drive any variant.
type Dimensions struct {
	Length    float64
	Throw     float64
	HeadWidth float64
	Radius    float64
}

// validate checks that all dimensions are strictly positive.
func (d Dimensions) validate() error {
	if d.Length <= 0 {
		return fmt.Errorf("%w: length %g must be positive", ErrDimensions, d.Length)
	}
	if d.Throw <= 0 {
		return fmt.Errorf("%w: throw %g must be positive", ErrDimensions, d.Throw)
	}
	if d.HeadWidth <= 0 {
		return fmt.Errorf("%w: head width %g must be positive", ErrDimensions, d.HeadWidth)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("%w: radius %g must be positive", ErrDimensions, d.Radius)
	}
	return nil
}
