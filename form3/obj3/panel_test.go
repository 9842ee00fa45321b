package obj3

import (
	"testing"

	"github.com/soypat/fanmount/form2/obj2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRoundedBox(t *testing.T) {
	s, err := RoundedBox(r3.Vec{X: 20, Y: 10, Z: 4}, 2)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-12)
	assert.InDelta(t, 4, bb.Max.Z, 1e-12)
	assert.InDelta(t, 10, bb.Max.X, 1e-12)
	assert.Less(t, s.Evaluate(r3.Vec{Z: 2}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: 9.9, Y: 4.9, Z: 2}), 0.0, "rounded corner")
	assert.Less(t, s.Evaluate(r3.Vec{X: 9.9, Z: 2}), 0.0)

	_, err = RoundedBox(r3.Vec{X: 20, Y: 10}, 2)
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
	_, err = RoundedBox(r3.Vec{X: 20, Y: 10, Z: 1}, 6)
	assert.Error(t, err, "radius larger than half the short side")
}

func TestPanel(t *testing.T) {
	k := obj2.PanelParams{
		Size:         r2.Vec{X: 60, Y: 30},
		CornerRadius: 3,
		HoleDiameter: 3,
		HoleMargin:   [4]float64{4, 4, 4, 4},
		HolePattern:  [4]string{"x", "x", "x", "x"},
	}
	_, err := Panel(k)
	assert.ErrorIs(t, err, obj2.ErrBadDimension)

	k.Thickness = 2
	s, err := Panel(k)
	require.NoError(t, err)
	assert.Less(t, s.Evaluate(r3.Vec{}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{Z: 1.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: -26, Y: 11}), 0.0, "top left hole")
}

func TestFanPanel(t *testing.T) {
	s, err := FanPanel(120, 5, 3, true)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 1.5, bb.Max.Z, 1e-12)
	assert.InDelta(t, 60, bb.Max.X, 1e-12)
	assert.Less(t, s.Evaluate(r3.Vec{}), 0.0, "hub")

	_, err = FanPanel(120, 5, 0, true)
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
	_, err = FanPanel(100, 5, 3, true)
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
}

func TestPanelHole(t *testing.T) {
	s, err := PanelHole(PanelHoleParams{
		Diameter:  4,
		Thickness: 3,
		Indent:    r3.Vec{X: 1, Y: 1, Z: 1},
		Offset:    4,
	})
	require.NoError(t, err)
	assert.Less(t, s.Evaluate(r3.Vec{}), 0.0)
	assert.Less(t, s.Evaluate(r3.Vec{X: 4, Z: 1.2}), 0.0, "indent")
	assert.Greater(t, s.Evaluate(r3.Vec{X: 4, Z: -1.2}), 0.0)

	_, err = PanelHole(PanelHoleParams{Thickness: 3})
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
}

func TestStandoff(t *testing.T) {
	s, err := Standoff(StandoffParams{
		PillarHeight:   10,
		PillarDiameter: 6,
		HoleDepth:      5,
		HoleDiameter:   3,
		NumberWebs:     4,
		WebHeight:      4,
		WebDiameter:    12,
		WebWidth:       1,
	})
	require.NoError(t, err)
	assert.Greater(t, s.Evaluate(r3.Vec{Z: 4.9}), 0.0, "screw hole")
	assert.Less(t, s.Evaluate(r3.Vec{Z: -4}), 0.0)
	assert.Less(t, s.Evaluate(r3.Vec{X: 4.5, Z: -4.9}), 0.0, "web")
	assert.Less(t, s.Evaluate(r3.Vec{Y: -4.5, Z: -4.9}), 0.0, "web copy")
	assert.Greater(t, s.Evaluate(r3.Vec{X: 3.18, Y: 3.18, Z: -4.9}), 0.0, "between webs")

	_, err = Standoff(StandoffParams{PillarHeight: 10})
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
	_, err = Standoff(StandoffParams{PillarHeight: 10, PillarDiameter: 6, NumberWebs: 3, WebDiameter: 4, WebHeight: 1, WebWidth: 1})
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
}
