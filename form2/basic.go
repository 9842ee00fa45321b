// Package form2 exposes the 2D primitives of must2 with errors
// returned instead of panics.
package form2

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/fanmount/form2/must2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidShape matches every error returned by this package.
var ErrInvalidShape = errors.New("form2: invalid shape")

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("form2: %v", s.panicObj)
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

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Circle(radius), err
}

// Box returns a 2d box.
func Box(size r2.Vec, round float64) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Box(size, round), err
}

// Line returns a line from (-l/2,0) to (l/2,0).
func Line(l, round float64) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Line(l, round), err
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Polygon(vertex), err
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (v []r2.Vec, err error) {
	defer catch(&err)
	return must2.Nagon(n, radius), err
}
