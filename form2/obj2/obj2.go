// Package obj2 builds 2D parts for fan mounts: exponential curve
// profiles, connector arms, tangent hulls, grills and panels.
package obj2

import "errors"

var (
	// ErrBadDimension is returned for non-positive or out of range sizes.
	ErrBadDimension = errors.New("obj2: bad dimension")
	// ErrZeroCurvature is returned when a curve profile has zero curvature.
	ErrZeroCurvature = errors.New("obj2: zero curvature")
	// ErrInsideCircle is returned when a tangent is requested from a point
	// on or inside the circle.
	ErrInsideCircle = errors.New("obj2: point inside circle")
	// ErrNoSimpleHull is returned when no tangent quadrilateral is simple.
	ErrNoSimpleHull = errors.New("obj2: no simple hull")
	// ErrUnknownOrder is returned for unrecognized pair ordering criteria.
	ErrUnknownOrder = errors.New("obj2: unknown order")
)
