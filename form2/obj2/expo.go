package obj2

import (
	"fmt"
	"math"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// ExpoVertices returns the closed silhouette of an exponential curve
// spanning size. The first vertex is (0,0), the curve ends at
// (size.X,size.Y) and the last vertex is (size.X,0).
//
// Positive curvature bends the curve above the diagonal, negative
// curvature mirrors it below. Smaller magnitudes give a sharper knee.
func ExpoVertices(size r2.Vec, curvature float64, segments int) ([]r2.Vec, error) {
	switch {
	case !(size.X > 0) || !(size.Y > 0):
		return nil, fmt.Errorf("%w: expo size %v must be positive", ErrBadDimension, size)
	case segments < 1:
		return nil, fmt.Errorf("%w: expo needs at least one segment, got %d", ErrBadDimension, segments)
	case curvature == 0:
		return nil, ErrZeroCurvature
	case math.IsNaN(curvature) || math.IsInf(curvature, 0):
		return nil, fmt.Errorf("%w: curvature %v", ErrBadDimension, curvature)
	}
	w, h := size.X, size.Y
	s := math.Abs(curvature)
	off := 0.01 * s
	raw := func(x float64) float64 {
		x += off
		return (1 - math.Exp(-x/s)) / x
	}

	samples := make([]float64, segments+1)
	peak, floor := math.Inf(-1), math.Inf(1)
	for i := range samples {
		v := raw(w * float64(i) / float64(segments))
		samples[i] = v
		peak = math.Max(peak, v)
		floor = math.Min(floor, v)
	}
	span := peak - floor
	if span == 0 {
		return nil, fmt.Errorf("%w: curvature %g flattens the curve", ErrBadDimension, curvature)
	}

	v := make([]r2.Vec, 0, segments+2)
	for i, sample := range samples {
		v = append(v, r2.Vec{
			X: w * float64(i) / float64(segments),
			Y: (peak - sample) / span * h,
		})
	}
	v[0] = r2.Vec{}
	v[segments] = r2.Vec{X: w, Y: h}
	if curvature < 0 {
		for i := range v {
			v[i] = r2.Vec{X: v[i].Y / h * w, Y: v[i].X / w * h}
		}
	}
	return append(v, r2.Vec{X: w}), nil
}

// Expo returns the polygon enclosed by ExpoVertices.
func Expo(size r2.Vec, curvature float64, segments int) (sdf.SDF2, error) {
	v, err := ExpoVertices(size, curvature, segments)
	if err != nil {
		return nil, err
	}
	return form2.Polygon(v)
}
