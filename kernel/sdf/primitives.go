package sdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad/kernel"
)

// primitive is one SDF shape inside a Solid. Witness points are
// characteristic points on or inside the primitive used by Fuse to detect
// contact between solids.
type primitive interface {
	sdf(p r3.Vec) float64
	bounds() kernel.Bounds
	witnesses() []r3.Vec
}

// cylinder is a capped cylinder from the base cap center, extending height
// along the unit axis.
type cylinder struct {
	base   r3.Vec
	axis   r3.Vec // unit
	radius float64
	height float64
}

func (c *cylinder) sdf(p r3.Vec) float64 {
	q := p.Sub(c.base)
	x := q.Dot(c.axis)
	rho := r3.Norm(q.Sub(c.axis.Scale(x)))
	dx := math.Max(x-c.height, -x)
	dr := rho - c.radius
	outside := math.Hypot(math.Max(dr, 0), math.Max(dx, 0))
	inside := math.Min(math.Max(dr, dx), 0)
	return outside + inside
}

func (c *cylinder) bounds() kernel.Bounds {
	top := c.base.Add(c.axis.Scale(c.height))
	// Exact per-axis cap extent: the cap circle projects to
	// r*sqrt(1-axis_i^2) on axis i.
	ext := r3.Vec{
		X: c.radius * math.Sqrt(math.Max(0, 1-c.axis.X*c.axis.X)),
		Y: c.radius * math.Sqrt(math.Max(0, 1-c.axis.Y*c.axis.Y)),
		Z: c.radius * math.Sqrt(math.Max(0, 1-c.axis.Z*c.axis.Z)),
	}
	return kernel.Bounds{
		Min: r3.Vec{
			X: math.Min(c.base.X, top.X) - ext.X,
			Y: math.Min(c.base.Y, top.Y) - ext.Y,
			Z: math.Min(c.base.Z, top.Z) - ext.Z,
		},
		Max: r3.Vec{
			X: math.Max(c.base.X, top.X) + ext.X,
			Y: math.Max(c.base.Y, top.Y) + ext.Y,
			Z: math.Max(c.base.Z, top.Z) + ext.Z,
		},
	}
}

func (c *cylinder) witnesses() []r3.Vec {
	return []r3.Vec{
		c.base,
		c.base.Add(c.axis.Scale(c.height / 2)),
		c.base.Add(c.axis.Scale(c.height)),
	}
}

// sphere is a solid sphere.
type sphere struct {
	center r3.Vec
	radius float64
}

func (s *sphere) sdf(p r3.Vec) float64 {
	return r3.Norm(p.Sub(s.center)) - s.radius
}

func (s *sphere) bounds() kernel.Bounds {
	ext := r3.Vec{X: s.radius, Y: s.radius, Z: s.radius}
	return kernel.Bounds{Min: s.center.Sub(ext), Max: s.center.Add(ext)}
}

func (s *sphere) witnesses() []r3.Vec {
	return []r3.Vec{s.center}
}

// box is an oriented box: corner plus three orthogonal unit axes with half
// extents.
type box struct {
	corner r3.Vec
	center r3.Vec
	axes   [3]r3.Vec
	half   [3]float64
}

func (b *box) sdf(p r3.Vec) float64 {
	q := p.Sub(b.center)
	var d [3]float64
	for i := range b.axes {
		d[i] = math.Abs(q.Dot(b.axes[i])) - b.half[i]
	}
	outside := r3.Norm(r3.Vec{
		X: math.Max(d[0], 0),
		Y: math.Max(d[1], 0),
		Z: math.Max(d[2], 0),
	})
	inside := math.Min(math.Max(d[0], math.Max(d[1], d[2])), 0)
	return outside + inside
}

func (b *box) bounds() kernel.Bounds {
	bb := kernel.Bounds{Min: b.corner, Max: b.corner}
	for mask := 1; mask < 8; mask++ {
		p := b.corner
		for i := range b.axes {
			if mask&(1<<i) != 0 {
				p = p.Add(b.axes[i].Scale(2 * b.half[i]))
			}
		}
		bb = bb.Union(kernel.Bounds{Min: p, Max: p})
	}
	return bb
}

func (b *box) witnesses() []r3.Vec {
	ws := []r3.Vec{b.center}
	for mask := 0; mask < 8; mask++ {
		p := b.corner
		for i := range b.axes {
			if mask&(1<<i) != 0 {
				p = p.Add(b.axes[i].Scale(2 * b.half[i]))
			}
		}
		ws = append(ws, p)
	}
	return ws
}

// torusArc is a solid of revolution: a circular profile of radius tube
// swept about axis from the start direction by angle radians. The tube
// center traces an arc of radius major around axisPoint.
type torusArc struct {
	axisPoint r3.Vec
	axis      r3.Vec // unit
	start     r3.Vec // unit, from axisPoint to the profile center
	e         r3.Vec // axis x start, the 90-degree sweep direction
	major     float64
	tube      float64
	angle     float64

	sp, mp, ep r3.Vec // profile centers at sweep 0, angle/2, angle
}

func newTorusArc(axisPoint, axis, start r3.Vec, major, tube, angle float64) *torusArc {
	t := &torusArc{
		axisPoint: axisPoint,
		axis:      axis,
		start:     start,
		e:         axis.Cross(start),
		major:     major,
		tube:      tube,
		angle:     angle,
	}
	t.sp = t.arcPoint(0)
	t.mp = t.arcPoint(angle / 2)
	t.ep = t.arcPoint(angle)
	return t
}

// arcPoint returns the tube center after sweeping by alpha.
func (t *torusArc) arcPoint(alpha float64) r3.Vec {
	dir := t.start.Scale(math.Cos(alpha)).Add(t.e.Scale(math.Sin(alpha)))
	return t.axisPoint.Add(dir.Scale(t.major))
}

// sdf is exact inside the swept sector; outside the sector it falls back
// to the distance to the nearer end profile center, which slightly rounds
// the flat end caps.
func (t *torusArc) sdf(p r3.Vec) float64 {
	pl := p.Sub(t.axisPoint)
	y := pl.Dot(t.axis)
	w := pl.Sub(t.axis.Scale(y))
	alpha := math.Atan2(w.Dot(t.e), w.Dot(t.start))
	if alpha < 0 {
		alpha += 2 * math.Pi
	}
	if alpha <= t.angle {
		return math.Hypot(r3.Norm(w)-t.major, y) - t.tube
	}
	return math.Min(r3.Norm(p.Sub(t.sp)), r3.Norm(p.Sub(t.ep))) - t.tube
}

func (t *torusArc) bounds() kernel.Bounds {
	ext := t.major + t.tube
	e := r3.Vec{X: ext, Y: ext, Z: ext}
	return kernel.Bounds{Min: t.axisPoint.Sub(e), Max: t.axisPoint.Add(e)}
}

func (t *torusArc) witnesses() []r3.Vec {
	return []r3.Vec{t.sp, t.mp, t.ep}
}
