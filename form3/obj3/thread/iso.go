package thread

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fanmount/form2/must2"
	"github.com/soypat/fanmount/sdf"
)

// ISO is a standardized metric thread.
// Pitch is usually the number following the diameter
// i.e: for M16x2 the pitch is 2mm
type ISO struct {
	// D is the thread nominal diameter [mm].
	D float64
	// P is the thread pitch [mm].
	P float64
	// Is external or internal thread. Ext set to true means external thread.
	Ext bool
}

var _ Threader = ISO{} // Compile time check of interface implementation.

func (iso ISO) Parameters() Parameters {
	p := basic{D: iso.D, P: iso.P}.Parameters()
	p.Name = fmt.Sprintf("M%gx%g", iso.D, iso.P)
	return p
}

// Thread returns the profile of one pitch period of the thread.
// The external profile is the rod; the internal profile is the
// bore to be removed from a blank.
func (iso ISO) Thread() (sdf.SDF2, error) {
	if iso.D <= 0 || iso.P <= 0 {
		return nil, errors.New("ISO thread needs positive diameter and pitch")
	}
	radius := iso.D / 2
	theta := 30.0 * math.Pi / 180.
	h := iso.P / (2.0 * math.Tan(theta))
	rMajor := radius
	r0 := rMajor - (7.0/8.0)*h
	if r0 <= 0 {
		return nil, errors.New("ISO thread pitch too coarse for diameter")
	}
	floor := -iso.P // below the screw axis

	poly := must2.NewPolygon()
	if iso.Ext {
		rRoot := (iso.P / 8.0) / math.Cos(theta)
		xOfs := (1.0 / 16.0) * iso.P
		poly.Add(iso.P, floor)
		poly.Add(iso.P, r0+h)
		poly.Add(iso.P/2.0, r0).Smooth(rRoot, 5)
		poly.Add(xOfs, rMajor)
		poly.Add(-xOfs, rMajor)
		poly.Add(-iso.P/2.0, r0).Smooth(rRoot, 5)
		poly.Add(-iso.P, r0+h)
		poly.Add(-iso.P, floor)
	} else {
		rMinor := r0 + (1.0/4.0)*h
		rCrest := (iso.P / 16.0) / math.Cos(theta)
		xOfs := (1.0 / 8.0) * iso.P
		poly.Add(iso.P, floor)
		poly.Add(iso.P, rMinor)
		poly.Add(iso.P/2-xOfs, rMinor)
		poly.Add(0, r0+h).Smooth(rCrest, 5)
		poly.Add(-iso.P/2+xOfs, rMinor)
		poly.Add(-iso.P, rMinor)
		poly.Add(-iso.P, floor)
	}
	return must2.Polygon(poly.Vertices()), nil
}
