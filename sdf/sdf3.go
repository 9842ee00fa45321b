package sdf

import (
	"math"
	"strconv"

	"github.com/soypat/fanmount/internal/d2"
	"github.com/soypat/fanmount/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

type SDF3Union interface {
	SDF3
	SetMin(MinFunc)
}

type SDF3Diff interface {
	SDF3
	SetMax(MaxFunc)
}

// revolution3 solid of revolution, SDF2 to SDF3.
type revolution3 struct {
	sdf   SDF2
	theta float64 // angle for partial revolutions
	norm  r2.Vec  // pre-calculated normal to theta line
	bb    r3.Box
}

// Revolve3D returns an SDF3 for a solid of revolution about the z axis.
// The SDF2's X axis maps to the radius and its Y axis to z.
// theta is in radians. For a full revolution call
//
//	Revolve3D(s0, 2*math.Pi)
func Revolve3D(sdf SDF2, theta float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if theta <= 0 {
		return empty3{}
	}
	if math.Abs(theta-tau) < tolerance {
		theta = 0 // internally theta=0 is a full revolution.
	}
	s := revolution3{sdf: sdf}
	s.theta = math.Mod(math.Abs(theta), tau)
	sin, cos := math.Sincos(s.theta)
	s.norm = r2.Vec{X: -sin, Y: cos}
	var vset d2.Set
	if s.theta == 0 {
		vset = d2.Set{{X: 1, Y: 1}, {X: -1, Y: -1}}
	} else {
		vset = d2.Set{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: cos, Y: sin}}
		if s.theta > 0.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: 1})
		}
		if s.theta > pi {
			vset = append(vset, r2.Vec{X: -1, Y: 0})
		}
		if s.theta > 1.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: -1})
		}
	}
	bb := sdf.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	vmin := r2.Scale(l, vset.Min())
	vmax := r2.Scale(l, vset.Max())
	s.bb = r3.Box{
		Min: r3.Vec{X: vmin.X, Y: vmin.Y, Z: bb.Min.Y},
		Max: r3.Vec{X: vmax.X, Y: vmax.Y, Z: bb.Max.Y},
	}
	return &s
}

// Evaluate returns the minimum distance to a solid of revolution.
func (s *revolution3) Evaluate(p r3.Vec) float64 {
	x := math.Hypot(p.X, p.Y)
	a := s.sdf.Evaluate(r2.Vec{X: x, Y: p.Z})
	b := a
	if s.theta != 0 {
		// combine two vertical planes to give an intersection wedge
		d := r2.Dot(s.norm, r2.Vec{X: p.X, Y: p.Y})
		if s.theta < pi {
			b = math.Max(-p.Y, d) // intersect
		} else {
			b = math.Min(-p.Y, d) // union
		}
	}
	return math.Max(a, b)
}

// Bounds returns the bounding box for a solid of revolution.
func (s *revolution3) Bounds() r3.Box {
	return s.bb
}

// extrude3 extrudes an SDF2 to an SDF3.
type extrude3 struct {
	sdf     SDF2
	height  float64
	extrude ExtrudeFunc
	bb      r3.Box
}

// Extrude3D does a linear extrude on an SDF2.
// The extrusion is centered on z=0 and spans height.
func Extrude3D(sdf SDF2, height float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	s := extrude3{
		sdf:     sdf,
		height:  height / 2,
		extrude: NormalExtrude,
	}
	bb := sdf.Bounds()
	s.bb = r3.Box{
		Min: d3.FromR2(bb.Min, -s.height),
		Max: d3.FromR2(bb.Max, s.height),
	}
	return &s
}

// Evaluate returns the minimum distance to an extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	// sdf for the projected 2d surface
	a := s.sdf.Evaluate(s.extrude(p))
	// sdf for the extrusion region: z = [-height, height]
	b := math.Abs(p.Z) - s.height
	return math.Max(a, b)
}

// SetExtrude sets the extrusion control function.
func (s *extrude3) SetExtrude(extrude ExtrudeFunc) {
	s.extrude = extrude
}

// Bounds returns the bounding box for an extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}

// transform3 is an SDF3 transformed with a 4x4 transformation matrix.
type transform3 struct {
	sdf     SDF3
	inverse m44
	bb      r3.Box
}

// Transform3D applies a transformation matrix to an SDF3.
// Distance is *not* preserved with scaling.
func Transform3D(sdf SDF3, matrix m44) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	return &transform3{
		sdf:     sdf,
		inverse: matrix.Inverse(),
		bb:      matrix.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a transformed SDF3.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inverse.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	min MinFunc
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
// Union3D will panic if arguments list is empty or if
// an argument SDF3 is nil.
func Union3D(sdf ...SDF3) SDF3Union {
	if len(sdf) < 2 {
		panic("union require at least 2 sdfs")
	}
	s := union3{sdf: sdf, min: math.Min}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
	}
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = s.min(d, x.Evaluate(p))
	}
	return d
}

// SetMin sets the minimum function to control blending.
func (s *union3) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two SDF3s, s0 - s1.
type diff3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Difference3D returns the difference of two SDF3s, s0 - s1.
// Difference3D will panic if one any of the arguments is nil.
func Difference3D(s0, s1 SDF3) SDF3Diff {
	if s1 == nil || s0 == nil {
		panic("nil argument to Difference3D")
	}
	return &diff3{s0: s0, s1: s1, max: math.Max, bb: s0.Bounds()}
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// intersection3 is the intersection of two SDF3s.
type intersection3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Intersect3D returns the intersection of two SDF3s.
// Intersect3D will panic if any of the arguments are nil.
func Intersect3D(s0, s1 SDF3) SDF3Diff {
	if s0 == nil || s1 == nil {
		panic("nil argument to Intersect3D")
	}
	b0, b1 := s0.Bounds(), s1.Bounds()
	bb := r3.Box{Min: d3.MaxElem(b0.Min, b1.Min), Max: d3.MinElem(b0.Max, b1.Max)}
	if bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y || bb.Min.Z > bb.Max.Z {
		c := d3.Box(b0).Center()
		bb = r3.Box{Min: c, Max: c}
	}
	return &intersection3{s0: s0, s1: s1, max: math.Max, bb: bb}
}

// Evaluate returns the minimum distance to the SDF3 intersection.
func (s *intersection3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersection3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF3 intersection.
func (s *intersection3) Bounds() r3.Box {
	return s.bb
}

type empty3 struct {
	center r3.Vec
}

var _ SDF3 = empty3{}

func (e empty3) Evaluate(r3.Vec) float64 {
	return math.MaxFloat64
}

func (e empty3) Bounds() r3.Box {
	return r3.Box{Min: e.center, Max: e.center}
}

// rotateCopy3 rotates and creates N copies of an SDF3 about the z-axis.
type rotateCopy3 struct {
	sdf   SDF3
	theta float64
	bb    r3.Box
}

// RotateCopy3D rotates and creates n copies of an SDF3 about the z-axis.
func RotateCopy3D(sdf SDF3, n int) SDF3 {
	if n <= 0 {
		panic("invalid number of steps")
	}
	s := rotateCopy3{sdf: sdf, theta: tau / float64(n)}
	bb := d3.Box(sdf.Bounds())
	// find the bounding box vertex with the greatest distance from the z-axis
	rmax := 0.0
	for _, v := range bb.Vertices() {
		rmax = math.Max(rmax, math.Hypot(v.X, v.Y))
	}
	s.bb = r3.Box{
		Min: r3.Vec{X: -rmax, Y: -rmax, Z: bb.Min.Z},
		Max: r3.Vec{X: rmax, Y: rmax, Z: bb.Max.Z},
	}
	return &s
}

// Evaluate returns the minimum distance to a rotate/copy SDF3.
func (s *rotateCopy3) Evaluate(p r3.Vec) float64 {
	// Map p to a point in the first copy sector.
	p2 := d2.PolarToXY(math.Hypot(p.X, p.Y), SawTooth(math.Atan2(p.Y, p.X), s.theta))
	return s.sdf.Evaluate(d3.FromR2(p2, p.Z))
}

// Bounds returns the bounding box of a rotate/copy SDF3.
func (s *rotateCopy3) Bounds() r3.Box {
	return s.bb
}
