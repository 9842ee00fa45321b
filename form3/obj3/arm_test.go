package obj3

import (
	"testing"

	"github.com/soypat/fanmount/form2/obj2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func testArmParms() TaperedArmParms {
	return TaperedArmParms{
		Size:        r2.Vec{X: 30, Y: 40},
		Base:        r2.Vec{X: 10, Y: 3},
		Tip:         r2.Vec{X: 4, Y: 3},
		StraightPct: 20,
		Curvature:   5,
		Balance:     25,
		Segments:    60,
	}
}

func TestTaperedArmWidths(t *testing.T) {
	s, err := TaperedArm(testArmParms())
	require.NoError(t, err)

	// base: 10 wide, a quarter on +z.
	base := r3.Vec{X: 1.5, Y: 0.5}
	for z, inside := range map[float64]bool{2.3: true, 2.7: false, -7.3: true, -7.7: false} {
		p := base
		p.Z = z
		assert.Equal(t, inside, s.Evaluate(p) < 0, "base z=%g", z)
	}
	// tip: close to 4 wide, a quarter on +z.
	tip := r3.Vec{X: 29.8, Y: 39.8}
	for z, inside := range map[float64]bool{0.8: true, 1.2: false, -2.8: true, -3.2: false} {
		p := tip
		p.Z = z
		assert.Equal(t, inside, s.Evaluate(p) < 0, "tip z=%g", z)
	}
}

func TestTaperedArmSymmetricDepth(t *testing.T) {
	k := testArmParms()
	k.Base.X, k.Tip.X, k.Balance = 6, 6, 50
	s, err := TaperedArm(k)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 3, bb.Max.Z, 1e-9)
	assert.InDelta(t, -3, bb.Min.Z, 1e-9)
}

func TestTaperedArmTang(t *testing.T) {
	k := testArmParms()
	probe := r3.Vec{X: 30.5, Y: 37.5}
	plain, err := TaperedArm(k)
	require.NoError(t, err)
	assert.Greater(t, plain.Evaluate(probe), 0.0)

	k.Tang, err = NewTang(50)
	require.NoError(t, err)
	hooked, err := TaperedArm(k)
	require.NoError(t, err)
	assert.Less(t, hooked.Evaluate(probe), 0.0)
	// the lead face slopes back to the tip face at the pivot.
	assert.Greater(t, hooked.Evaluate(r3.Vec{X: 31.2, Y: 39.8}), 0.0)
}

func TestTaperedArmErrors(t *testing.T) {
	for _, mutate := range []func(*TaperedArmParms){
		func(k *TaperedArmParms) { k.Size.X = 0 },
		func(k *TaperedArmParms) { k.Base.X = 0 },
		func(k *TaperedArmParms) { k.Tip.Y = -1 },
		func(k *TaperedArmParms) { k.Balance = 101 },
		func(k *TaperedArmParms) { k.StraightPct = -1 },
		func(k *TaperedArmParms) { k.Tang = &Tang{HeightPct: 50, Angle: 45} },
	} {
		k := testArmParms()
		mutate(&k)
		_, err := TaperedArm(k)
		assert.ErrorIs(t, err, obj2.ErrBadDimension, "%+v", k)
	}
}

func TestNewTang(t *testing.T) {
	tang, err := NewTang()
	require.NoError(t, err)
	assert.Nil(t, tang)

	tang, err = NewTang(30)
	require.NoError(t, err)
	assert.Equal(t, Tang{HeightPct: 30, Angle: 45, PivotPct: 100}, *tang)

	tang, err = NewTang(30, 60, 80)
	require.NoError(t, err)
	assert.Equal(t, Tang{HeightPct: 30, Angle: 60, PivotPct: 80}, *tang)

	for _, values := range [][]float64{{1, 2}, {1, 2, 3, 4}, {0}, {30, 90, 50}, {30, 45, 0}} {
		_, err = NewTang(values...)
		assert.ErrorIs(t, err, obj2.ErrBadDimension, "%v", values)
	}
}

func TestExpo3D(t *testing.T) {
	s, err := Expo3D(r3.Vec{X: 10, Y: 10, Z: 5}, 2, 60)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-12)
	assert.InDelta(t, 5, bb.Max.Z, 1e-12)
	assert.Less(t, s.Evaluate(r3.Vec{X: 1, Y: 1, Z: 2.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: 1, Y: 1, Z: 5.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: 1, Y: 5, Z: 2.5}), 0.0)

	_, err = Expo3D(r3.Vec{X: 10, Y: 10}, 2, 60)
	assert.ErrorIs(t, err, obj2.ErrBadDimension)
	_, err = Expo3D(r3.Vec{X: 10, Y: 10, Z: 1}, 0, 60)
	assert.ErrorIs(t, err, obj2.ErrZeroCurvature)
}
