package thread

import (
	"errors"
	"math"

	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Screws
// Screws are made by taking a 2D thread profile, rotating it about the z-axis and
// spiralling it upwards as we move along z.
//
// The 2D thread profiles are a polygon of a single thread centered on the y-axis with
// the x-axis as the screw axis. The profile extends below the x-axis so that points
// on the screw axis evaluate as interior.
//
// This code doesn't deal with thread tolerancing. If you want threads to fit properly
// the radius of the thread will need to be tweaked (+/-) to give internal/external thread
// clearance.

// Threader is a thread form that can produce its 2D profile.
type Threader interface {
	Thread() (sdf.SDF2, error)
	Parameters() Parameters
}

// screw is a 3d screw form.
type screw struct {
	thread sdf.SDF2 // 2D thread profile
	pitch  float64  // thread to thread distance
	lead   float64  // distance per turn (starts * pitch)
	length float64  // half length of screw
	taper  float64  // thread taper angle
	bb     r3.Box   // bounding box
}

// Screw returns a screw SDF3 of the given length centered on the origin
// with its axis along z.
func Screw(length float64, thread Threader) (sdf.SDF3, error) {
	if thread == nil {
		return nil, errors.New("nil threader")
	}
	if length <= 0 {
		return nil, errors.New("need greater than zero length")
	}
	tsdf, err := thread.Thread()
	if err != nil {
		return nil, err
	}
	params := thread.Parameters()
	if params.Pitch <= 0 {
		return nil, errors.New("need greater than zero pitch")
	}
	s := screw{
		thread: tsdf,
		pitch:  params.Pitch,
		length: length / 2,
		taper:  params.Taper,
		lead:   -params.Pitch * float64(params.Starts),
	}
	// The max-y axis of the sdf2 bounding box is the radius of the thread.
	r := tsdf.Bounds().Max.Y + s.length*math.Tan(s.taper)
	s.bb = r3.Box{Min: r3.Vec{X: -r, Y: -r, Z: -s.length}, Max: r3.Vec{X: r, Y: r, Z: s.length}}
	return &s, nil
}

// Evaluate returns the minimum distance to a 3d screw form.
func (s *screw) Evaluate(p r3.Vec) float64 {
	// the distance from the 3d z-axis maps to the 2d y-axis
	p0 := r2.Vec{Y: math.Hypot(p.X, p.Y)}
	if s.taper != 0 {
		p0.Y += p.Z * math.Atan(s.taper)
	}
	// the x/y angle and the z-height map to the 2d x-axis
	// ie: the position along thread pitch
	theta := math.Atan2(p.Y, p.X)
	z := p.Z + s.lead*theta/(2*math.Pi)
	p0.X = sdf.SawTooth(z, s.pitch)
	d0 := s.thread.Evaluate(p0)
	// clip to the screw length
	d1 := math.Abs(p.Z) - s.length
	return math.Max(d0, d1)
}

// Bounds returns the bounding box for a 3d screw form.
func (s *screw) Bounds() r3.Box {
	return s.bb
}
