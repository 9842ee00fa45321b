package obj2

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// TangentPoints returns the two points on the circle of center c and
// radius r where lines through p touch the circle. p must lie outside
// the circle.
func TangentPoints(p, c r2.Vec, r float64) ([2]r2.Vec, error) {
	if !(r > 0) {
		return [2]r2.Vec{}, fmt.Errorf("%w: tangent circle radius %g", ErrBadDimension, r)
	}
	pc := r2.Sub(c, p)
	d := r2.Norm(pc)
	if r >= d {
		return [2]r2.Vec{}, fmt.Errorf("%w: %v is %g from center, radius %g", ErrInsideCircle, p, d, r)
	}
	alpha := math.Asin(r / d)
	base := math.Atan2(pc.Y, pc.X)
	l := math.Sqrt(d*d - r*r)
	var t [2]r2.Vec
	for i, a := range [2]float64{base + alpha, base - alpha} {
		sin, cos := math.Sincos(a)
		t[i] = r2.Add(p, r2.Vec{X: l * cos, Y: l * sin})
	}
	return t, nil
}

// ArmToCircleHull returns the quadrilateral joining p1 and p2 to the
// circle (c, r) through one tangent point of each. Of the four candidates
// the largest simple one is chosen.
func ArmToCircleHull(p1, p2, c r2.Vec, r float64) ([]r2.Vec, error) {
	t1, err := TangentPoints(p1, c, r)
	if err != nil {
		return nil, err
	}
	t2, err := TangentPoints(p2, c, r)
	if err != nil {
		return nil, err
	}
	candidates := make([][]r2.Vec, 0, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			candidates = append(candidates, []r2.Vec{p1, p2, t2[j], t1[i]})
		}
	}
	return largestSimple(candidates)
}

// largestSimple returns the candidate polygon of greatest area that does
// not self-intersect. The first of equal areas wins.
func largestSimple(candidates [][]r2.Vec) ([]r2.Vec, error) {
	best, bestSimple := -1, -1
	bestArea, bestSimpleArea := -1.0, -1.0
	for i, poly := range candidates {
		area := PolygonArea(poly)
		if area > bestArea {
			best, bestArea = i, area
		}
		if area > bestSimpleArea && IsSimplePolygon(poly) {
			bestSimple, bestSimpleArea = i, area
		}
	}
	switch {
	case bestSimple < 0:
		return nil, ErrNoSimpleHull
	case bestSimple != best:
		log.Warn().
			Int("candidate", best).
			Float64("area", bestArea).
			Int("fallback", bestSimple).
			Float64("fallback_area", bestSimpleArea).
			Msg("largest tangent hull self-intersects, using largest simple hull")
	}
	return candidates[bestSimple], nil
}

// ArmToCircle returns the hull from ArmToCircleHull as an SDF2,
// joined with the circle itself when withCircle is set.
func ArmToCircle(p1, p2, c r2.Vec, r float64, withCircle bool) (sdf.SDF2, error) {
	hull, err := ArmToCircleHull(p1, p2, c, r)
	if err != nil {
		return nil, err
	}
	s, err := form2.Polygon(hull)
	if err != nil {
		return nil, err
	}
	if !withCircle {
		return s, nil
	}
	circle, err := form2.Circle(r)
	if err != nil {
		return nil, err
	}
	return sdf.Union2D(s, sdf.Transform2D(circle, sdf.Translate2D(c))), nil
}

// PolygonArea returns the unsigned shoelace area of the polygon v.
func PolygonArea(v []r2.Vec) float64 {
	var sum float64
	for i := range v {
		sum += r2.Cross(v[i], v[(i+1)%len(v)])
	}
	return math.Abs(sum) / 2
}

// IsSimplePolygon reports whether no two non-adjacent edges of the
// closed polygon v intersect.
func IsSimplePolygon(v []r2.Vec) bool {
	n := len(v)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := v[i], v[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if segmentsIntersect(a0, a1, v[j], v[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, q1, q2 r2.Vec) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// onSegment reports whether c, collinear with a and b, lies between them.
func onSegment(a, b, c r2.Vec) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}
