package obj3

import (
	"fmt"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/form2/obj2"
	"github.com/soypat/fanmount/form3"
	"github.com/soypat/fanmount/internal/d3"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Panel returns a 3d panel with holes on the edges.
func Panel(k obj2.PanelParams) (sdf.SDF3, error) {
	if !(k.Thickness > 0) {
		return nil, fmt.Errorf("%w: panel thickness %g", obj2.ErrBadDimension, k.Thickness)
	}
	s, err := obj2.Panel(k)
	if err != nil {
		return nil, err
	}
	return sdf.Extrude3D(s, k.Thickness), nil
}

// FanPanel returns obj2.FanPanel extruded to thickness and centered on z=0.
func FanPanel(size, cornerRadius, thickness float64, grill bool) (sdf.SDF3, error) {
	if !(thickness > 0) {
		return nil, fmt.Errorf("%w: panel thickness %g", obj2.ErrBadDimension, thickness)
	}
	s, err := obj2.FanPanel(size, cornerRadius, grill)
	if err != nil {
		return nil, err
	}
	return sdf.Extrude3D(s, thickness), nil
}

// RoundedBox returns a box with rounded vertical edges of the given radius.
// It is centered on the origin in x and y and spans z in [0, size.Z].
func RoundedBox(size r3.Vec, radius float64) (sdf.SDF3, error) {
	if d3.LTEZero(size) {
		return nil, fmt.Errorf("%w: box size %v", obj2.ErrBadDimension, size)
	}
	s, err := form2.Box(r2.Vec{X: size.X, Y: size.Y}, radius)
	if err != nil {
		return nil, err
	}
	return sdf.Transform3D(sdf.Extrude3D(s, size.Z), sdf.Translate3D(r3.Vec{Z: size.Z / 2})), nil
}

// PanelHoleParams defines the parameters for a panel hole.
type PanelHoleParams struct {
	Diameter    float64 // hole diameter
	Thickness   float64 // panel thickness
	Indent      r3.Vec  // indent size
	Offset      float64 // indent offset from main axis
	Orientation float64 // orientation of indent, 0 == x-axis
}

// PanelHole returns a panel hole and an indent for a retention pin.
func PanelHole(k PanelHoleParams) (sdf.SDF3, error) {
	switch {
	case !(k.Diameter > 0):
		return nil, fmt.Errorf("%w: hole diameter %g", obj2.ErrBadDimension, k.Diameter)
	case !(k.Thickness > 0):
		return nil, fmt.Errorf("%w: hole thickness %g", obj2.ErrBadDimension, k.Thickness)
	case k.Indent.X < 0 || k.Indent.Y < 0 || k.Indent.Z < 0:
		return nil, fmt.Errorf("%w: indent %v", obj2.ErrBadDimension, k.Indent)
	case k.Offset < 0:
		return nil, fmt.Errorf("%w: indent offset %g", obj2.ErrBadDimension, k.Offset)
	}
	s, err := form3.Cylinder(k.Thickness, k.Diameter*0.5, 0)
	if err != nil {
		return nil, err
	}
	if k.Offset == 0 || k.Indent.X == 0 || k.Indent.Y == 0 || k.Indent.Z == 0 {
		return s, nil
	}

	indent, err := form3.Box(k.Indent, 0)
	if err != nil {
		return nil, err
	}
	zOfs := (k.Thickness - k.Indent.Z) * 0.5
	indent = sdf.Transform3D(indent, sdf.Translate3D(r3.Vec{X: k.Offset, Z: zOfs}))

	s = sdf.Union3D(s, indent)
	if k.Orientation != 0 {
		s = sdf.Transform3D(s, sdf.RotateZ(k.Orientation))
	}
	return s, nil
}
