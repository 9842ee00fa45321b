package sdf

import (
	"math"

	"github.com/soypat/fanmount/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

type SDF2Union interface {
	SDF2
	SetMin(MinFunc)
}

type SDF2Diff interface {
	SDF2
	SetMax(MaxFunc)
}

// transform2 transforms an SDF2 with rotation, translation and scaling.
type transform2 struct {
	sdf  SDF2
	mInv m33
	bb   r2.Box
}

// Transform2D applies a transformation matrix to an SDF2.
// Distance is *not* preserved with scaling.
func Transform2D(sdf SDF2, m m33) SDF2 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	return &transform2{
		sdf:  sdf,
		mInv: m.Inverse(),
		bb:   m.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a transformed SDF2.
func (s *transform2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(s.mInv.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF2.
func (s *transform2) Bounds() r2.Box {
	return s.bb
}

// rotateCopy2 copies an SDF2 n times in a full circle.
type rotateCopy2 struct {
	sdf   SDF2
	theta float64
	bb    r2.Box
}

// RotateCopy2D rotates and copies an SDF2 n times in a full circle.
func RotateCopy2D(sdf SDF2, n int) SDF2 {
	if n <= 0 {
		panic("invalid number of steps")
	}
	s := rotateCopy2{
		sdf:   sdf,
		theta: tau / float64(n),
	}
	// find the bounding box vertex with the greatest distance from the origin
	rmax := 0.0
	for _, v := range d2.Box(sdf.Bounds()).Vertices() {
		rmax = math.Max(rmax, r2.Norm(v))
	}
	s.bb = r2.Box{Min: d2.Elem(-rmax), Max: d2.Elem(rmax)}
	return &s
}

// Evaluate returns the minimum distance to a rotate/copy SDF2.
func (s *rotateCopy2) Evaluate(p r2.Vec) float64 {
	// Map p to a point in the first copy sector.
	pnew := d2.PolarToXY(r2.Norm(p), SawTooth(math.Atan2(p.Y, p.X), s.theta))
	return s.sdf.Evaluate(pnew)
}

// Bounds returns the bounding box of a rotate/copy SDF2.
func (s *rotateCopy2) Bounds() r2.Box {
	return s.bb
}

// union2 is a union of multiple SDF2 objects.
type union2 struct {
	sdf []SDF2
	min MinFunc
	bb  r2.Box
}

// Union2D returns the union of multiple SDF2 objects.
func Union2D(sdf ...SDF2) SDF2Union {
	if len(sdf) <= 1 {
		panic("union requires at least 2 sdfs")
	}
	s := union2{sdf: sdf, min: math.Min}
	for _, x := range s.sdf {
		if x == nil {
			panic("nil argument found")
		}
	}
	bb := d2.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the SDF2 union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	// work out the min/max distance for every bounding box
	vs := make([]r2.Vec, len(s.sdf))
	minDist2 := -1.0
	minIndex := 0
	for i := range s.sdf {
		vs[i] = d2.Box(s.sdf[i].Bounds()).MinMaxDist2(p)
		// as we go record the sdf with the minimum minimum d2 value
		if minDist2 < 0 || vs[i].X < minDist2 {
			minDist2 = vs[i].X
			minIndex = i
		}
	}
	var d float64
	first := true
	for i := range s.sdf {
		// only an sdf whose min/max distances overlap
		// the minimum box are worthy of consideration
		if i == minIndex || d2.Overlap(vs[minIndex], vs[i]) {
			x := s.sdf[i].Evaluate(p)
			if first {
				first = false
				d = x
			} else {
				d = s.min(d, x)
			}
		}
	}
	return d
}

// SetMin sets the minimum function to control SDF2 blending.
func (s *union2) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF2 union.
func (s *union2) Bounds() r2.Box {
	return s.bb
}

// diff2 is the difference of two SDF2s.
type diff2 struct {
	s0  SDF2
	s1  SDF2
	max MaxFunc
	bb  r2.Box
}

// Difference2D returns the difference of two SDF2 objects, s0 - s1.
func Difference2D(s0, s1 SDF2) SDF2Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff2{s0: s0, s1: s1, max: math.Max, bb: s0.Bounds()}
}

// Evaluate returns the minimum distance to the difference of two SDF2s.
func (s *diff2) Evaluate(p r2.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff2) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the difference of two SDF2s.
func (s *diff2) Bounds() r2.Box {
	return s.bb
}

// intersection2 is the intersection of two SDF2s.
type intersection2 struct {
	s0  SDF2
	s1  SDF2
	max MaxFunc
	bb  r2.Box
}

// Intersect2D returns the intersection of two SDF2s.
func Intersect2D(s0, s1 SDF2) SDF2Diff {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	b0, b1 := s0.Bounds(), s1.Bounds()
	bb := r2.Box{Min: d2.MaxElem(b0.Min, b1.Min), Max: d2.MinElem(b0.Max, b1.Max)}
	if bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y {
		// disjoint bounds, keep a degenerate box at the first center.
		c := d2.Box(b0).Center()
		bb = r2.Box{Min: c, Max: c}
	}
	return &intersection2{s0: s0, s1: s1, max: math.Max, bb: bb}
}

// Evaluate returns the minimum distance to the SDF2 intersection.
func (s *intersection2) Evaluate(p r2.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersection2) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF2 intersection.
func (s *intersection2) Bounds() r2.Box {
	return s.bb
}

// offset2 offsets the distance function of an existing SDF2.
type offset2 struct {
	sdf    SDF2
	offset float64
	bb     r2.Box
}

// Offset2D returns an SDF2 that offsets the distance function of another SDF2.
// A positive offset grows the shape.
func Offset2D(sdf SDF2, offset float64) SDF2 {
	bb := d2.Box(sdf.Bounds())
	return &offset2{
		sdf:    sdf,
		offset: offset,
		bb:     r2.Box(d2.NewBox(bb.Center(), r2.Add(bb.Size(), d2.Elem(2*offset)))),
	}
}

// Evaluate returns the minimum distance to an offset SDF2.
func (s *offset2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(p) - s.offset
}

// Bounds returns the bounding box of an offset SDF2.
func (s *offset2) Bounds() r2.Box {
	return s.bb
}

// LineOf2D returns a union of 2D objects positioned along a line from p0 to p1.
// Each character of pattern is a slot along the line, 'x' places an object.
// A pattern without any 'x' returns an empty SDF2.
func LineOf2D(s SDF2, p0, p1 r2.Vec, pattern string) SDF2 {
	var objects []SDF2
	if pattern != "" {
		x := p0
		dx := r2.Scale(1/float64(len(pattern)), r2.Sub(p1, p0))
		for _, c := range pattern {
			if c == 'x' {
				objects = append(objects, Transform2D(s, Translate2D(x)))
			}
			x = r2.Add(x, dx)
		}
	}
	switch len(objects) {
	case 0:
		return empty2From(s)
	case 1:
		return objects[0]
	}
	return Union2D(objects...)
}

// Multi2D creates a union of an SDF2 at a set of 2D positions.
func Multi2D(s SDF2, positions []r2.Vec) SDF2 {
	if s == nil {
		panic("nil sdf argument")
	}
	switch len(positions) {
	case 0:
		return empty2From(s)
	case 1:
		return Transform2D(s, Translate2D(positions[0]))
	}
	objects := make([]SDF2, len(positions))
	for i, p := range positions {
		objects[i] = Transform2D(s, Translate2D(p))
	}
	return Union2D(objects...)
}

func empty2From(s SDF2) empty2 {
	return empty2{center: d2.Box(s.Bounds()).Center()}
}

type empty2 struct {
	center r2.Vec
}

var _ SDF2 = empty2{}

func (e empty2) Evaluate(r2.Vec) float64 {
	return math.MaxFloat64
}

func (e empty2) Bounds() r2.Box {
	return r2.Box{Min: e.center, Max: e.center}
}
