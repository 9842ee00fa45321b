package obj2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestExpoVerticesEndpoints(t *testing.T) {
	for _, test := range []struct {
		size      r2.Vec
		curvature float64
		segments  int
	}{
		{size: r2.Vec{X: 10, Y: 10}, curvature: 2, segments: 60},
		{size: r2.Vec{X: 30, Y: 5}, curvature: -4, segments: 12},
		{size: r2.Vec{X: 1, Y: 40}, curvature: 0.5, segments: 1},
	} {
		v, err := ExpoVertices(test.size, test.curvature, test.segments)
		require.NoError(t, err)
		require.Len(t, v, test.segments+2)
		assert.Equal(t, r2.Vec{}, v[0])
		assert.Equal(t, r2.Vec{X: test.size.X}, v[len(v)-1])
		assert.Equal(t, test.size, v[len(v)-2])
	}
}

func TestExpoVerticesMonotonic(t *testing.T) {
	v, err := ExpoVertices(r2.Vec{X: 20, Y: 8}, 3, 40)
	require.NoError(t, err)
	curve := v[:len(v)-1]
	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i].X, curve[i-1].X)
		assert.GreaterOrEqual(t, curve[i].Y, curve[i-1].Y)
		assert.LessOrEqual(t, curve[i].Y, 8.0)
	}
}

func TestExpoVerticesReflection(t *testing.T) {
	size := r2.Vec{X: 12, Y: 7}
	pos, err := ExpoVertices(size, 2.5, 30)
	require.NoError(t, err)
	neg, err := ExpoVertices(size, -2.5, 30)
	require.NoError(t, err)
	require.Len(t, neg, len(pos))
	for i := 0; i < len(pos)-1; i++ {
		want := r2.Vec{X: pos[i].Y / size.Y * size.X, Y: pos[i].X / size.X * size.Y}
		assert.InDelta(t, want.X, neg[i].X, 1e-12)
		assert.InDelta(t, want.Y, neg[i].Y, 1e-12)
	}
	assert.Equal(t, r2.Vec{X: size.X}, neg[len(neg)-1])
}

func TestExpoVerticesErrors(t *testing.T) {
	_, err := ExpoVertices(r2.Vec{X: 0, Y: 1}, 1, 10)
	assert.ErrorIs(t, err, ErrBadDimension)
	_, err = ExpoVertices(r2.Vec{X: 1, Y: -1}, 1, 10)
	assert.ErrorIs(t, err, ErrBadDimension)
	_, err = ExpoVertices(r2.Vec{X: 1, Y: 1}, 1, 0)
	assert.ErrorIs(t, err, ErrBadDimension)
	_, err = ExpoVertices(r2.Vec{X: 1, Y: 1}, 0, 10)
	assert.ErrorIs(t, err, ErrZeroCurvature)
}

func TestExpoShape(t *testing.T) {
	s, err := Expo(r2.Vec{X: 10, Y: 10}, 2, 60)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 0, bb.Min.X, 1e-12)
	assert.InDelta(t, 10, bb.Max.Y, 1e-12)
	for _, p := range []r2.Vec{{X: 1, Y: 1}, {X: 5, Y: 7}, {X: 9, Y: 1}} {
		assert.Less(t, s.Evaluate(p), 0.0, "under the curve %v", p)
	}
	for _, p := range []r2.Vec{{X: 1, Y: 5}, {X: 5, Y: 9}, {X: 11, Y: 5}} {
		assert.Greater(t, s.Evaluate(p), 0.0, "above the curve %v", p)
	}
}
