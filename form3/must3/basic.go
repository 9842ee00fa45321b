package must3

import (
	"math"

	"github.com/soypat/fanmount/internal/d2"
	"github.com/soypat/fanmount/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// box is a 3d box.
type box struct {
	size  r3.Vec
	round float64
	bb    r3.Box
}

// Box return an SDF3 for a 3d box centered at the origin (rounded corners with round > 0).
func Box(size r3.Vec, round float64) *box {
	if d3.LTEZero(size) {
		panic("size <= 0")
	}
	if round < 0 {
		panic("round < 0")
	}
	size = r3.Scale(0.5, size)
	if round > d3.Min(size) {
		panic("round exceeds half of the smallest side")
	}
	return &box{
		size:  r3.Sub(size, d3.Elem(round)),
		round: round,
		bb:    r3.Box{Min: r3.Scale(-1, size), Max: size},
	}
}

// Evaluate returns the minimum distance to a 3d box.
func (s *box) Evaluate(p r3.Vec) float64 {
	return sdfBox3d(p, s.size) - s.round
}

// Bounds returns the bounding box for a 3d box.
func (s *box) Bounds() r3.Box {
	return s.bb
}

// sphere is a sphere (exact distance field).
type sphere struct {
	radius float64
	bb     r3.Box
}

// Sphere return an SDF3 for a sphere centered at the origin.
func Sphere(radius float64) *sphere {
	if radius <= 0 {
		panic("radius <= 0")
	}
	return &sphere{
		radius: radius,
		bb:     r3.Box{Min: d3.Elem(-radius), Max: d3.Elem(radius)},
	}
}

// Evaluate returns the minimum distance to a sphere.
func (s *sphere) Evaluate(p r3.Vec) float64 {
	return r3.Norm(p) - s.radius
}

// Bounds returns the bounding box for a sphere.
func (s *sphere) Bounds() r3.Box {
	return s.bb
}

// cylinder is a cylinder (exact distance field).
type cylinder struct {
	height float64
	radius float64
	round  float64
	bb     r3.Box
}

// Cylinder return an SDF3 for a cylinder along the z axis
// centered at the origin (rounded edges with round > 0).
func Cylinder(height, radius, round float64) *cylinder {
	switch {
	case radius <= 0:
		panic("radius <= 0")
	case height <= 0:
		panic("height <= 0")
	case round < 0:
		panic("round < 0")
	case round > radius:
		panic("round > radius")
	case height < 2*round:
		panic("height < 2 * round")
	}
	d := r3.Vec{X: radius, Y: radius, Z: height / 2}
	return &cylinder{
		height: height/2 - round,
		radius: radius - round,
		round:  round,
		bb:     r3.Box{Min: r3.Scale(-1, d), Max: d},
	}
}

// Evaluate returns the minimum distance to a cylinder.
func (s *cylinder) Evaluate(p r3.Vec) float64 {
	d := sdfBox2d(r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}, r2.Vec{X: s.radius, Y: s.height})
	return d - s.round
}

// Bounds returns the bounding box for a cylinder.
func (s *cylinder) Bounds() r3.Box {
	return s.bb
}

func sdfBox2d(p, s r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}

func sdfBox3d(p, s r3.Vec) float64 {
	d := r3.Sub(d3.AbsElem(p), s)
	switch {
	case d.X > 0 && d.Y > 0 && d.Z > 0:
		return r3.Norm(d)
	case d.X > 0 && d.Y > 0:
		return math.Hypot(d.X, d.Y)
	case d.X > 0 && d.Z > 0:
		return math.Hypot(d.X, d.Z)
	case d.Y > 0 && d.Z > 0:
		return math.Hypot(d.Y, d.Z)
	case d.X > 0:
		return d.X
	case d.Y > 0:
		return d.Y
	case d.Z > 0:
		return d.Z
	}
	return d3.Max(d)
}
