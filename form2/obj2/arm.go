package obj2

import (
	"fmt"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// Arm returns a curved connector arm inside the rectangle [0,size.X]x[0,size.Y].
// The base face lies on y=0 over x in [0,base]. The tip face lies on x=size.X
// over y in [size.Y-tip, size.Y]. Thickness varies smoothly in between.
func Arm(size r2.Vec, base, tip, curvature float64, segments int) (sdf.SDF2, error) {
	if !(base > 0 && base < size.X) {
		return nil, fmt.Errorf("%w: arm base %g outside (0, %g)", ErrBadDimension, base, size.X)
	}
	if !(tip > 0 && tip < size.Y) {
		return nil, fmt.Errorf("%w: arm tip %g outside (0, %g)", ErrBadDimension, tip, size.Y)
	}
	outer, err := Expo(size, curvature, segments)
	if err != nil {
		return nil, err
	}
	inner, err := Expo(r2.Vec{X: size.X - base, Y: size.Y - tip}, curvature, segments)
	if err != nil {
		return nil, err
	}
	inner = sdf.Transform2D(inner, sdf.Translate2D(r2.Vec{X: base}))
	return sdf.Difference2D(outer, inner), nil
}

// ArmMixed returns an arm that starts with a straight section of width base
// spanning straightPct percent of size.Y, followed by an Arm over the rest.
// straightPct of 0 is an Arm and 100 is a plain bar.
func ArmMixed(size r2.Vec, base, tip, straightPct, curvature float64, segments int) (sdf.SDF2, error) {
	if !(straightPct >= 0 && straightPct <= 100) {
		return nil, fmt.Errorf("%w: straight percent %g outside [0, 100]", ErrBadDimension, straightPct)
	}
	if straightPct == 0 {
		return Arm(size, base, tip, curvature, segments)
	}
	if !(base > 0 && base < size.X) {
		return nil, fmt.Errorf("%w: arm base %g outside (0, %g)", ErrBadDimension, base, size.X)
	}
	straight := size.Y * straightPct / 100
	bar, err := form2.Box(r2.Vec{X: base, Y: straight}, 0)
	if err != nil {
		return nil, err
	}
	bar = sdf.Transform2D(bar, sdf.Translate2D(r2.Vec{X: base / 2, Y: straight / 2}))
	if straightPct == 100 {
		return bar, nil
	}
	curved, err := Arm(r2.Vec{X: size.X, Y: size.Y - straight}, base, tip, curvature, segments)
	if err != nil {
		return nil, err
	}
	curved = sdf.Transform2D(curved, sdf.Translate2D(r2.Vec{Y: straight}))
	return sdf.Union2D(bar, curved), nil
}
