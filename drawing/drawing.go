// Package drawing renders 2D connection drawings: bolt group plan views
// and anchor bolt elevations. Drawings are produced on a gg context; the
// caller encodes PNG (or composes further) from the returned context.
package drawing

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gosteel/boltcad"
)

// ErrSpec is returned for degenerate drawing parameters.
var ErrSpec = errors.New("drawing: invalid drawing spec")

// DefaultScale is the default drawing scale in pixels per millimetre.
const DefaultScale = 2.0

// canvasMargin is the blank border around a drawing, in pixels.
const canvasMargin = 24.0

// PatternSpec describes a rectangular bolt group on a plate, all lengths
// in mm. Rows run along the pitch direction, columns along the gauge.
type PatternSpec struct {
	Rows, Cols int

	Pitch float64 // row spacing
	Gauge float64 // column spacing

	EndDistance  float64 // margin above the first and below the last row
	EdgeDistance float64 // margin beside the outer columns

	HoleDiameter float64

	Scale float64 // pixels per mm; 0 means DefaultScale
}

// validate rejects degenerate patterns before any drawing happens.
func (s PatternSpec) validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("%w: rows=%d cols=%d", ErrSpec, s.Rows, s.Cols)
	}
	if s.Rows > 1 && s.Pitch <= 0 {
		return fmt.Errorf("%w: pitch %g must be positive for %d rows", ErrSpec, s.Pitch, s.Rows)
	}
	if s.Cols > 1 && s.Gauge <= 0 {
		return fmt.Errorf("%w: gauge %g must be positive for %d cols", ErrSpec, s.Gauge, s.Cols)
	}
	if s.EndDistance <= 0 || s.EdgeDistance <= 0 {
		return fmt.Errorf("%w: end=%g edge=%g must be positive", ErrSpec, s.EndDistance, s.EdgeDistance)
	}
	if s.HoleDiameter <= 0 {
		return fmt.Errorf("%w: hole diameter %g must be positive", ErrSpec, s.HoleDiameter)
	}
	return nil
}

// BoltPattern draws the plan view of a bolt group: plate outline, hole
// circles on the pitch/gauge grid, and dashed centerlines through every
// hole.
func BoltPattern(spec PatternSpec) (*gg.Context, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	scale := spec.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	plateW := 2*spec.EdgeDistance + float64(spec.Cols-1)*spec.Gauge
	plateH := 2*spec.EndDistance + float64(spec.Rows-1)*spec.Pitch

	dc := gg.NewContext(
		int(math.Ceil(plateW*scale+2*canvasMargin)),
		int(math.Ceil(plateH*scale+2*canvasMargin)),
	)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("drawing: fill background: %w", err)
	}

	// Plate outline.
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(2)
	dc.DrawRectangle(canvasMargin, canvasMargin, plateW*scale, plateH*scale)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("drawing: stroke plate: %w", err)
	}

	holeR := spec.HoleDiameter / 2 * scale
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Cols; col++ {
			cx := canvasMargin + (spec.EdgeDistance+float64(col)*spec.Gauge)*scale
			cy := canvasMargin + (spec.EndDistance+float64(row)*spec.Pitch)*scale

			dc.SetLineWidth(1.5)
			dc.DrawCircle(cx, cy, holeR)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("drawing: stroke hole: %w", err)
			}

			// Centerlines extend one hole diameter past the circle.
			ext := 2 * holeR
			dc.SetLineWidth(0.8)
			dc.SetDash(6, 3)
			dc.DrawLine(cx-holeR-ext, cy, cx+holeR+ext, cy)
			dc.DrawLine(cx, cy-holeR-ext, cx, cy+holeR+ext)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("drawing: stroke centerline: %w", err)
			}
			dc.ClearDash()
		}
	}
	return dc, nil
}

// AnchorElevation draws the side elevation of a placed anchor bolt: the
// control point polyline projected onto the U-Shaft plane, stroked at the
// shaft diameter, with control point markers. The builder must have been
// placed.
func AnchorElevation(b boltcad.Builder, scale float64) (*gg.Context, error) {
	pts := b.ControlPoints()
	if len(pts) == 0 {
		return nil, fmt.Errorf("drawing: %w", boltcad.ErrNotPlaced)
	}
	if scale == 0 {
		scale = DefaultScale
	}
	frame := b.Frame()
	shaftR := b.Dimensions().Radius

	// Project onto the U (screen x) / Shaft (screen up) plane.
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range pts {
		d := p.Sub(frame.Origin)
		xs[i] = d.Dot(frame.U)
		ys[i] = d.Dot(frame.Shaft)
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}

	// Leave room for the stroked shaft and hook sweep around the extremes.
	pad := 4 * shaftR
	w := (maxX - minX + 2*pad) * scale
	h := (maxY - minY + 2*pad) * scale

	dc := gg.NewContext(
		int(math.Ceil(w+2*canvasMargin)),
		int(math.Ceil(h+2*canvasMargin)),
	)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("drawing: fill background: %w", err)
	}

	toCanvas := func(x, y float64) (float64, float64) {
		return canvasMargin + (x-minX+pad)*scale, canvasMargin + (maxY-y+pad)*scale
	}

	// Bolt body as a thick rounded polyline through the control points.
	dc.SetRGB(0.35, 0.35, 0.4)
	dc.SetLineWidth(2 * shaftR * scale)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for i := range pts {
		cx, cy := toCanvas(xs[i], ys[i])
		if i == 0 {
			dc.MoveTo(cx, cy)
		} else {
			dc.LineTo(cx, cy)
		}
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("drawing: stroke bolt body: %w", err)
	}

	// Control point markers.
	dc.SetRGB(0.8, 0.2, 0.2)
	for i := range pts {
		cx, cy := toCanvas(xs[i], ys[i])
		dc.DrawCircle(cx, cy, 2.5)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("drawing: fill marker: %w", err)
		}
	}
	return dc, nil
}
