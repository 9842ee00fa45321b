package thread

import (
	"errors"
	"fmt"

	"github.com/soypat/fanmount/form3"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Primitive builds threaded solids from thread names understood by Lookup.
// Every solid starts at z=0 and extends along +z for turns*pitch.
type Primitive struct{}

// ExternalThread returns a threaded rod. A positive higbeeArc (degrees)
// chamfers both ends of the rod over the axial advance of that arc,
// removing the feather edge of the incomplete first turn.
func (Primitive) ExternalThread(name string, turns, higbeeArc float64) (sdf.SDF3, error) {
	t, err := Lookup(name, true)
	if err != nil {
		return nil, err
	}
	return build(t, turns, higbeeArc)
}

// InternalThread returns the bore solid to remove from a blank to cut
// an internal thread. The lead-in is not applied to bores.
func (Primitive) InternalThread(name string, turns, higbeeArc float64) (sdf.SDF3, error) {
	t, err := Lookup(name, false)
	if err != nil {
		return nil, err
	}
	return build(t, turns, 0)
}

func build(t Threader, turns, higbeeArc float64) (sdf.SDF3, error) {
	if turns <= 0 {
		return nil, errors.New("thread: turns must be positive")
	}
	if higbeeArc < 0 || higbeeArc >= 360 {
		return nil, fmt.Errorf("thread: higbee arc %g outside [0, 360)", higbeeArc)
	}
	params := t.Parameters()
	length := turns * params.Pitch
	s, err := Screw(length, t)
	if err != nil {
		return nil, err
	}
	if higbeeArc > 0 {
		// Chamfer(size) cuts size/√2 along each edge of a square corner.
		cut := params.Pitch * higbeeArc / 360
		k := cut / sqrtHalf / s.Bounds().Max.X
		s, err = form3.ChamferedCylinder(s, k, k)
		if err != nil {
			return nil, fmt.Errorf("thread: lead-in: %w", err)
		}
	}
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: length / 2})), nil
}

const sqrtHalf = 0.7071067811865476
