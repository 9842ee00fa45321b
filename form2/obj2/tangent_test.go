package obj2

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTangentPointsPerpendicular(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := r2.Vec{X: rng.Float64()*40 - 20, Y: rng.Float64()*40 - 20}
		r := 0.1 + rng.Float64()*10
		dir := rng.Float64() * 2 * math.Pi
		dist := r * (1.01 + rng.Float64()*5)
		p := r2.Add(c, r2.Vec{X: dist * math.Cos(dir), Y: dist * math.Sin(dir)})

		tp, err := TangentPoints(p, c, r)
		require.NoError(t, err)
		for _, pt := range tp {
			radial := r2.Sub(pt, c)
			assert.InDelta(t, r, r2.Norm(radial), 1e-9)
			assert.InDelta(t, 0, r2.Dot(radial, r2.Sub(pt, p)), 1e-9*dist*dist)
		}
		assert.Greater(t, r2.Norm(r2.Sub(tp[0], tp[1])), 0.0)
	}
}

func TestTangentPointsErrors(t *testing.T) {
	c := r2.Vec{X: 1, Y: 1}
	_, err := TangentPoints(r2.Vec{X: 1, Y: 2}, c, 2)
	assert.ErrorIs(t, err, ErrInsideCircle)
	_, err = TangentPoints(r2.Vec{X: 1, Y: 3}, c, 2)
	assert.ErrorIs(t, err, ErrInsideCircle, "on the circle")
	_, err = TangentPoints(r2.Vec{X: 9, Y: 9}, c, 0)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestArmToCircleHull(t *testing.T) {
	p1, p2 := r2.Vec{X: -10, Y: -20}, r2.Vec{X: 10, Y: -20}
	c, r := r2.Vec{}, 5.0
	hull, err := ArmToCircleHull(p1, p2, c, r)
	require.NoError(t, err)
	require.Len(t, hull, 4)
	assert.True(t, IsSimplePolygon(hull))
	assert.Equal(t, p1, hull[0])
	assert.Equal(t, p2, hull[1])

	t1, err := TangentPoints(p1, c, r)
	require.NoError(t, err)
	t2, err := TangentPoints(p2, c, r)
	require.NoError(t, err)
	area := PolygonArea(hull)
	for _, a := range t1 {
		for _, b := range t2 {
			assert.GreaterOrEqual(t, area, PolygonArea([]r2.Vec{p1, p2, b, a}))
		}
	}
	// The outer tangents of a symmetric pair are mirror images.
	assert.InDelta(t, -hull[2].X, hull[3].X, 1e-9)
	assert.InDelta(t, hull[2].Y, hull[3].Y, 1e-9)
}

func TestArmToCircleHullCoincidentEnds(t *testing.T) {
	p := r2.Vec{X: -5, Y: -5}
	hull, err := ArmToCircleHull(p, p, r2.Vec{}, 1)
	assert.ErrorIs(t, err, ErrNoSimpleHull)
	assert.Nil(t, hull)
	_, err = ArmToCircle(p, p, r2.Vec{}, 1, true)
	assert.ErrorIs(t, err, ErrNoSimpleHull)
}

func TestLargestSimpleFallback(t *testing.T) {
	unit := []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	// Edges (0,0)-(10,0) and (10,10)-(5,-1) cross; shoelace area is 20.
	crossed := []r2.Vec{{}, {X: 10}, {X: 10, Y: 10}, {X: 5, Y: -1}}
	square := []r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}
	require.False(t, IsSimplePolygon(crossed))
	require.Greater(t, PolygonArea(crossed), PolygonArea(square))

	got, err := largestSimple([][]r2.Vec{unit, crossed, square})
	require.NoError(t, err)
	assert.Equal(t, square, got)

	got, err = largestSimple([][]r2.Vec{unit, square, square})
	require.NoError(t, err)
	assert.Equal(t, square, got)

	_, err = largestSimple([][]r2.Vec{crossed})
	assert.ErrorIs(t, err, ErrNoSimpleHull)
	_, err = largestSimple(nil)
	assert.ErrorIs(t, err, ErrNoSimpleHull)
}

func TestArmToCircle(t *testing.T) {
	p1, p2 := r2.Vec{X: -10, Y: -20}, r2.Vec{X: 10, Y: -20}
	bare, err := ArmToCircle(p1, p2, r2.Vec{}, 5, false)
	require.NoError(t, err)
	full, err := ArmToCircle(p1, p2, r2.Vec{}, 5, true)
	require.NoError(t, err)
	top := r2.Vec{Y: 4.5}
	assert.Greater(t, bare.Evaluate(top), 0.0)
	assert.Less(t, full.Evaluate(top), 0.0)
	assert.Less(t, bare.Evaluate(r2.Vec{Y: -15}), 0.0)
}

func TestPolygonArea(t *testing.T) {
	square := []r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}
	assert.Equal(t, 4.0, PolygonArea(square))
	reversed := []r2.Vec{{Y: 2}, {X: 2, Y: 2}, {X: 2}, {}}
	assert.Equal(t, 4.0, PolygonArea(reversed))
}

func TestIsSimplePolygon(t *testing.T) {
	assert.True(t, IsSimplePolygon([]r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}))
	bowtie := []r2.Vec{{}, {X: 2, Y: 2}, {X: 2}, {Y: 2}}
	assert.False(t, IsSimplePolygon(bowtie))
	assert.False(t, IsSimplePolygon([]r2.Vec{{}, {X: 1}}))
}
