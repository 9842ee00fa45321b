package must3

import (
	"math"

	"github.com/soypat/fanmount/form2/must2"
	"github.com/soypat/fanmount/sdf"
)

// ChamferedCylinder intersects a chamfered cylinder with an SDF3.
// The cylinder's half length and radius are taken from the bounding box
// of s, which must be centered on the z axis. kb and kt are the bottom
// and top chamfer sizes as a fraction of the radius.
func ChamferedCylinder(s sdf.SDF3, kb, kt float64) sdf.SDF3 {
	if kb < 0 || kt < 0 {
		panic("negative chamfer")
	}
	bb := s.Bounds()
	l := bb.Max.Z
	r := bb.Max.X
	p := must2.NewPolygon()
	// the profile crosses the axis so points on it evaluate as interior.
	p.Add(-r, -l)
	p.Add(r, -l).Chamfer(r * kb)
	p.Add(r, l).Chamfer(r * kt)
	p.Add(-r, l)
	cc := sdf.Revolve3D(must2.Polygon(p.Vertices()), 2*math.Pi)
	return sdf.Intersect3D(s, cc)
}
