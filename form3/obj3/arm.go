package obj3

import (
	"fmt"
	"math"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/form2/obj2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tang is a snap-fit hook protruding from the tip face of an arm.
type Tang struct {
	HeightPct float64 // protrusion as a percentage of the tip thickness
	Angle     float64 // inclination of the lead face [degrees]
	PivotPct  float64 // start of the lead face along the tip face, from its inner edge
}

// NewTang builds a Tang from zero, one (HeightPct) or three
// (HeightPct, Angle, PivotPct) values. Zero values return a nil Tang.
// Angle defaults to 45 and PivotPct to 100.
func NewTang(values ...float64) (*Tang, error) {
	var t Tang
	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		t = Tang{HeightPct: values[0], Angle: 45, PivotPct: 100}
	case 3:
		t = Tang{HeightPct: values[0], Angle: values[1], PivotPct: values[2]}
	default:
		return nil, fmt.Errorf("%w: tang takes 0, 1 or 3 values, got %d", obj2.ErrBadDimension, len(values))
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t Tang) validate() error {
	switch {
	case !(t.HeightPct > 0):
		return fmt.Errorf("%w: tang height %g%%", obj2.ErrBadDimension, t.HeightPct)
	case !(t.Angle > 0 && t.Angle < 90):
		return fmt.Errorf("%w: tang angle %g outside (0, 90)", obj2.ErrBadDimension, t.Angle)
	case !(t.PivotPct > 0 && t.PivotPct <= 100):
		return fmt.Errorf("%w: tang pivot %g%% outside (0, 100]", obj2.ErrBadDimension, t.PivotPct)
	}
	return nil
}

// vertices returns the tang outline for an arm of the given size whose
// tip face has thickness tip.
func (t Tang) vertices(size r2.Vec, tip float64) []r2.Vec {
	d := t.HeightPct / 100 * tip
	yb := size.Y - tip
	yp := yb + tip*t.PivotPct/100
	yc := math.Max(yp-d/math.Tan(sdf.DtoR(t.Angle)), yb)
	return []r2.Vec{
		{X: size.X, Y: yb},
		{X: size.X + d, Y: yb},
		{X: size.X + d, Y: yc},
		{X: size.X, Y: yp},
	}
}

// TaperedArmParms defines a 3D connector arm. The silhouette lies in the
// XY plane as drawn by obj2.ArmMixed and the arm width runs along z.
type TaperedArmParms struct {
	Size        r2.Vec  // silhouette width and height
	Base        r2.Vec  // base face width (z) and thickness
	Tip         r2.Vec  // tip face width (z) and thickness
	Tang        *Tang   // optional, may be nil
	StraightPct float64 // straight section as a percentage of Size.Y
	Curvature   float64
	Balance     float64 // share of the width on the +z side as a percentage, 50 is symmetric
	Segments    int
}

func (k TaperedArmParms) validate() error {
	switch {
	case !(k.Size.X > 0 && k.Size.Y > 0):
		return fmt.Errorf("%w: arm size %v", obj2.ErrBadDimension, k.Size)
	case !(k.Base.X > 0 && k.Base.Y > 0):
		return fmt.Errorf("%w: arm base profile %v", obj2.ErrBadDimension, k.Base)
	case !(k.Tip.X > 0 && k.Tip.Y > 0):
		return fmt.Errorf("%w: arm tip profile %v", obj2.ErrBadDimension, k.Tip)
	case !(k.Balance >= 0 && k.Balance <= 100):
		return fmt.Errorf("%w: arm balance %g outside [0, 100]", obj2.ErrBadDimension, k.Balance)
	case !(k.StraightPct >= 0 && k.StraightPct <= 100):
		return fmt.Errorf("%w: arm straight percent %g outside [0, 100]", obj2.ErrBadDimension, k.StraightPct)
	}
	if k.Tang != nil {
		return k.Tang.validate()
	}
	return nil
}

// TaperedArm returns a connector arm whose width tapers from Base.X at
// y=0 to Tip.X at y=Size.Y. The width is split between the +z and -z
// sides by Balance.
func TaperedArm(k TaperedArmParms) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	s2, err := obj2.ArmMixed(k.Size, k.Base.Y, k.Tip.Y, k.StraightPct, k.Curvature, k.Segments)
	if err != nil {
		return nil, err
	}
	reach := k.Size.X
	if k.Tang != nil {
		tang, err := form2.Polygon(k.Tang.vertices(k.Size, k.Tip.Y))
		if err != nil {
			return nil, err
		}
		s2 = sdf.Union2D(s2, tang)
		reach = tang.Bounds().Max.X
	}

	maxW := math.Max(k.Base.X, k.Tip.X)
	depth := 2 * maxW
	if k.Balance == 50 && k.Base.X == k.Tip.X {
		depth = maxW
	}
	arm := sdf.Extrude3D(s2, depth)

	clip, err := taperClip(k, reach)
	if err != nil {
		return nil, err
	}
	return sdf.Intersect3D(arm, clip), nil
}

// taperClip returns a prism running along x whose (y,z) section holds the
// balanced arm width at every height.
func taperClip(k TaperedArmParms, reach float64) (sdf.SDF3, error) {
	const margin = 1.0
	left := k.Balance / 100
	right := 1 - left
	straight := k.Size.Y * k.StraightPct / 100
	y0, y1 := -margin, k.Size.Y+margin
	bw, tw := k.Base.X, k.Tip.X
	section, err := form2.Polygon([]r2.Vec{
		{X: y0, Y: -bw * right},
		{X: straight, Y: -bw * right},
		{X: k.Size.Y, Y: -tw * right},
		{X: y1, Y: -tw * right},
		{X: y1, Y: tw * left},
		{X: k.Size.Y, Y: tw * left},
		{X: straight, Y: bw * left},
		{X: y0, Y: bw * left},
	})
	if err != nil {
		return nil, err
	}
	length := reach + 2*margin
	prism := sdf.Extrude3D(section, length)
	// local (X,Y,Z) maps to world (Z,X,Y), then center over the arm.
	m := sdf.Translate3D(r3.Vec{X: reach / 2}).Mul(sdf.RotateZ(math.Pi / 2)).Mul(sdf.RotateX(math.Pi / 2))
	return sdf.Transform3D(prism, m), nil
}

// Expo3D extrudes obj2.Expo over z in [0, size.Z].
func Expo3D(size r3.Vec, curvature float64, segments int) (sdf.SDF3, error) {
	if !(size.Z > 0) {
		return nil, fmt.Errorf("%w: expo depth %g", obj2.ErrBadDimension, size.Z)
	}
	s2, err := obj2.Expo(r2.Vec{X: size.X, Y: size.Y}, curvature, segments)
	if err != nil {
		return nil, err
	}
	return sdf.Transform3D(sdf.Extrude3D(s2, size.Z), sdf.Translate3D(r3.Vec{Z: size.Z / 2})), nil
}
