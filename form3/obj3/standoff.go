package obj3

import (
	"fmt"
	"math"

	"github.com/soypat/fanmount/form2/must2"
	"github.com/soypat/fanmount/form2/obj2"
	"github.com/soypat/fanmount/form3/must3"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Fan standoffs hold a fan off its panel so air can reach the blades.

// StandoffParams defines the parameters for a standoff pillar.
type StandoffParams struct {
	PillarHeight   float64
	PillarDiameter float64
	HoleDepth      float64 // > 0 is a hole, < 0 is a support stub
	HoleDiameter   float64
	NumberWebs     int // number of triangular gussets around the standoff base
	WebHeight      float64
	WebDiameter    float64
	WebWidth       float64
}

func (k StandoffParams) validate() error {
	switch {
	case !(k.PillarHeight > 0) || !(k.PillarDiameter > 0):
		return fmt.Errorf("%w: pillar %gx%g", obj2.ErrBadDimension, k.PillarDiameter, k.PillarHeight)
	case k.HoleDiameter < 0 || math.Abs(k.HoleDepth) > k.PillarHeight:
		return fmt.Errorf("%w: pillar hole %gx%g", obj2.ErrBadDimension, k.HoleDiameter, k.HoleDepth)
	case k.NumberWebs < 0:
		return fmt.Errorf("%w: %d webs", obj2.ErrBadDimension, k.NumberWebs)
	case k.NumberWebs > 0 && !(k.WebHeight > 0 && k.WebDiameter > k.PillarDiameter && k.WebWidth > 0):
		return fmt.Errorf("%w: web %gx%gx%g", obj2.ErrBadDimension, k.WebDiameter, k.WebHeight, k.WebWidth)
	}
	return nil
}

// Standoff returns a single standoff centered on the origin.
func Standoff(k StandoffParams) (s sdf.SDF3, err error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, fmt.Errorf("obj3: standoff: %v", a)
		}
	}()
	s = pillar(k)
	if k.NumberWebs > 0 {
		webs := sdf.RotateCopy3D(pillarWeb(k), k.NumberWebs)
		s = sdf.Union3D(s, webs)
		// Cut off any part of the webs that protrude from the top of the pillar
		cut := must3.Cylinder(k.PillarHeight, k.WebDiameter, 0)
		s = sdf.Intersect3D(s, cut)
	}
	// Add the pillar hole/stub
	hole := pillarHole(k)
	switch {
	case hole == nil:
	case k.HoleDepth > 0:
		s = sdf.Difference3D(s, hole)
	default:
		// support stub
		s = sdf.Union3D(s, hole)
	}
	return s, nil
}

// pillarWeb returns a single pillar web
func pillarWeb(k StandoffParams) sdf.SDF3 {
	w := must2.NewPolygon()
	w.Add(0, 0)
	w.Add(0.5*k.WebDiameter, 0)
	w.Add(0, k.WebHeight)
	p := must2.Polygon(w.Vertices())
	s := sdf.Extrude3D(p, k.WebWidth)
	m := sdf.Translate3D(r3.Vec{Z: -0.5 * k.PillarHeight}).Mul(sdf.RotateX(sdf.DtoR(90.0)))
	return sdf.Transform3D(s, m)
}

// pillar returns a cylindrical pillar
func pillar(k StandoffParams) sdf.SDF3 {
	return must3.Cylinder(k.PillarHeight, 0.5*k.PillarDiameter, 0)
}

// pillarHole returns a pillar screw hole (or support stub)
func pillarHole(k StandoffParams) sdf.SDF3 {
	if k.HoleDiameter == 0.0 || k.HoleDepth == 0.0 {
		// no hole
		return nil
	}
	s := must3.Cylinder(math.Abs(k.HoleDepth), 0.5*k.HoleDiameter, 0)
	zOfs := 0.5 * (k.PillarHeight - k.HoleDepth)
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: zOfs}))
}
