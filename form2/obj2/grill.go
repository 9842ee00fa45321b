package obj2

import (
	"fmt"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// GrillParms defines a circular fan guard centered on the origin.
type GrillParms struct {
	Radius    float64 // outer radius of the guard
	HubRadius float64 // radius of the solid center, may be 0
	Rings     int     // number of annular openings
	BarWidth  float64 // width of the rim, the bars between rings and the spokes
	Spokes    int     // number of radial spokes crossing the openings
}

// ringWidth returns the radial width of each opening.
func (k GrillParms) ringWidth() float64 {
	open := k.Radius - k.HubRadius - float64(k.Rings)*k.BarWidth
	return open / float64(k.Rings)
}

func (k GrillParms) validate() error {
	switch {
	case !(k.Radius > 0):
		return fmt.Errorf("%w: grill radius %g", ErrBadDimension, k.Radius)
	case k.HubRadius < 0 || k.HubRadius >= k.Radius:
		return fmt.Errorf("%w: grill hub radius %g", ErrBadDimension, k.HubRadius)
	case k.Rings < 1:
		return fmt.Errorf("%w: grill needs at least one ring", ErrBadDimension)
	case !(k.BarWidth > 0):
		return fmt.Errorf("%w: grill bar width %g", ErrBadDimension, k.BarWidth)
	case k.Spokes < 0:
		return fmt.Errorf("%w: grill spokes %d", ErrBadDimension, k.Spokes)
	case !(k.ringWidth() > 0):
		return fmt.Errorf("%w: %d rings of bar width %g do not fit in radius %g", ErrBadDimension, k.Rings, k.BarWidth, k.Radius)
	}
	return nil
}

// GrillOpenings returns the open area of a grill: concentric annular slots
// between the hub and the rim, interrupted by radial spokes.
func GrillOpenings(k GrillParms) (sdf.SDF2, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	w := k.ringWidth()
	rings := make([]sdf.SDF2, k.Rings)
	r := k.HubRadius
	for i := range rings {
		ri, ro := r, r+w
		outer, err := form2.Circle(ro)
		if err != nil {
			return nil, err
		}
		if ri == 0 {
			rings[i] = outer
		} else {
			inner, err := form2.Circle(ri)
			if err != nil {
				return nil, err
			}
			rings[i] = sdf.Difference2D(outer, inner)
		}
		r = ro + k.BarWidth
	}
	var open sdf.SDF2 = rings[0]
	if len(rings) > 1 {
		open = sdf.Union2D(rings...)
	}
	if k.Spokes == 0 {
		return open, nil
	}
	spokes, err := PolarLines(k.Spokes, k.HubRadius, k.Radius, k.BarWidth)
	if err != nil {
		return nil, err
	}
	return sdf.Difference2D(open, spokes), nil
}

// Grill returns the solid of a circular fan guard.
func Grill(k GrillParms) (sdf.SDF2, error) {
	open, err := GrillOpenings(k)
	if err != nil {
		return nil, err
	}
	disc, err := form2.Circle(k.Radius)
	if err != nil {
		return nil, err
	}
	return sdf.Difference2D(disc, open), nil
}

// PolarLines returns n bars of the given width running radially from
// inner to outer, evenly spaced about the origin. The first bar lies
// on the +X axis.
func PolarLines(n int, inner, outer, width float64) (sdf.SDF2, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one line", ErrBadDimension)
	}
	if inner < 0 || !(outer > inner) {
		return nil, fmt.Errorf("%w: line radii [%g, %g]", ErrBadDimension, inner, outer)
	}
	bar, err := form2.Box(r2.Vec{X: outer - inner, Y: width}, 0)
	if err != nil {
		return nil, err
	}
	bar = sdf.Transform2D(bar, sdf.Translate2D(r2.Vec{X: (inner + outer) / 2}))
	return sdf.RotateCopy2D(bar, n), nil
}
