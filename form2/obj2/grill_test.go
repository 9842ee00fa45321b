package obj2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func polar(r, deg float64) r2.Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return r2.Vec{X: r * c, Y: r * s}
}

func TestGrill(t *testing.T) {
	// openings are [5, 10.5] and [12.5, 18] with spokes on the axes.
	s, err := Grill(GrillParms{Radius: 20, HubRadius: 5, Rings: 2, BarWidth: 2, Spokes: 4})
	require.NoError(t, err)
	solid := []r2.Vec{{}, polar(7.5, 0), polar(7.5, 90), polar(11.5, 45), polar(19, 45)}
	for _, p := range solid {
		assert.Less(t, s.Evaluate(p), 0.0, "solid at %v", p)
	}
	open := []r2.Vec{polar(7.5, 45), polar(15, 45), polar(15, 200)}
	for _, p := range open {
		assert.Greater(t, s.Evaluate(p), 0.0, "open at %v", p)
	}
	assert.Greater(t, s.Evaluate(polar(21, 30)), 0.0)
}

func TestGrillErrors(t *testing.T) {
	good := GrillParms{Radius: 20, HubRadius: 5, Rings: 2, BarWidth: 2, Spokes: 4}
	for _, mutate := range []func(*GrillParms){
		func(k *GrillParms) { k.Radius = 0 },
		func(k *GrillParms) { k.HubRadius = -1 },
		func(k *GrillParms) { k.HubRadius = 20 },
		func(k *GrillParms) { k.Rings = 0 },
		func(k *GrillParms) { k.BarWidth = 0 },
		func(k *GrillParms) { k.Spokes = -2 },
		func(k *GrillParms) { k.Rings = 8 },
	} {
		k := good
		mutate(&k)
		_, err := Grill(k)
		assert.ErrorIs(t, err, ErrBadDimension, "%+v", k)
	}
}

func TestPolarLines(t *testing.T) {
	s, err := PolarLines(3, 2, 10, 1)
	require.NoError(t, err)
	for _, deg := range []float64{0, 120, 240} {
		assert.Less(t, s.Evaluate(polar(6, deg)), 0.0, "bar at %g", deg)
	}
	assert.Greater(t, s.Evaluate(polar(6, 60)), 0.0)
	assert.Greater(t, s.Evaluate(r2.Vec{}), 0.0, "inside inner radius")

	_, err = PolarLines(0, 2, 10, 1)
	assert.ErrorIs(t, err, ErrBadDimension)
	_, err = PolarLines(3, 10, 2, 1)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestFanPanel(t *testing.T) {
	s, err := FanPanel(80, 3, false)
	require.NoError(t, err)
	hole := 71.5 / 2
	for _, c := range []r2.Vec{{X: hole, Y: hole}, {X: -hole, Y: hole}, {X: hole, Y: -hole}, {X: -hole, Y: -hole}} {
		assert.Greater(t, s.Evaluate(c), 0.0, "hole at %v", c)
	}
	assert.Less(t, s.Evaluate(polar(17.7, 45)), 0.0)
	assert.Greater(t, s.Evaluate(r2.Vec{X: 41}), 0.0)

	g, err := FanPanel(80, 3, true)
	require.NoError(t, err)
	assert.Less(t, g.Evaluate(r2.Vec{}), 0.0, "hub")
	assert.Greater(t, g.Evaluate(polar(17.7, 45)), 0.0, "first ring opening")

	_, err = FanPanel(50, 3, false)
	assert.ErrorIs(t, err, ErrBadDimension)
	assert.Len(t, FanSizes(), 6)
}

func TestPanelHolePattern(t *testing.T) {
	s, err := Panel(PanelParams{
		Size:         r2.Vec{X: 100, Y: 40},
		CornerRadius: 2,
		HoleDiameter: 4,
		HoleMargin:   [4]float64{5, 5, 5, 5},
		HolePattern:  [4]string{"x.x", "", "", ""},
	})
	require.NoError(t, err)
	// top edge from (-45,15) to (45,15) in three slots of 30.
	assert.Greater(t, s.Evaluate(r2.Vec{X: -45, Y: 15}), 0.0)
	assert.Less(t, s.Evaluate(r2.Vec{X: -15, Y: 15}), 0.0)
	assert.Greater(t, s.Evaluate(r2.Vec{X: 15, Y: 15}), 0.0)
	assert.Less(t, s.Evaluate(r2.Vec{X: 45, Y: -15}), 0.0)
}
