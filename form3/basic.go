// Package form3 exposes the 3D primitives of must3 with errors
// returned instead of panics.
package form3

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/fanmount/form3/must3"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidShape matches every error returned by this package.
var ErrInvalidShape = errors.New("form3: invalid shape")

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("form3: %v", s.panicObj)
}

func (s *shapeErr) Is(target error) bool {
	return target == ErrInvalidShape
}

func catch(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Box return an SDF3 for a 3d box (rounded corners with round > 0).
func Box(size r3.Vec, round float64) (s sdf.SDF3, err error) {
	defer catch(&err)
	return must3.Box(size, round), err
}

// Sphere return an SDF3 for a sphere.
func Sphere(radius float64) (s sdf.SDF3, err error) {
	defer catch(&err)
	return must3.Sphere(radius), err
}

// Cylinder return an SDF3 for a cylinder (rounded edges with round > 0).
func Cylinder(height, radius, round float64) (s sdf.SDF3, err error) {
	defer catch(&err)
	return must3.Cylinder(height, radius, round), err
}

// ChamferedCylinder intersects a chamfered cylinder with an SDF3.
func ChamferedCylinder(s sdf.SDF3, kb, kt float64) (c sdf.SDF3, err error) {
	defer catch(&err)
	return must3.ChamferedCylinder(s, kb, kt), err
}
