package thread

import (
	"math"
	"testing"

	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLookup(t *testing.T) {
	for _, test := range []struct {
		name   string
		radius float64
		pitch  float64
		taper  bool
	}{
		{name: "M6x1", radius: 3, pitch: 1},
		{name: "M2.5x0.45", radius: 1.25, pitch: 0.45},
		{name: "1/4-20", radius: 0.125 * 25.4, pitch: 25.4 / 20},
		{name: "#10-24", radius: 0.095 * 25.4, pitch: 25.4 / 24},
		{name: "1-1/4-7", radius: 0.625 * 25.4, pitch: 25.4 / 7},
		{name: "npt_1/2", radius: 0.42 * 25.4, pitch: 25.4 / 14, taper: true},
	} {
		th, err := Lookup(test.name, true)
		require.NoError(t, err, test.name)
		p := th.Parameters()
		assert.InDelta(t, test.radius, p.Radius, 1e-9, test.name)
		assert.InDelta(t, test.pitch, p.Pitch, 1e-9, test.name)
		assert.Equal(t, test.taper, p.Taper != 0, test.name)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "M6", "Mxx1", "1/4", "1/0-20", "npt_9/7", "bolt"} {
		_, err := Lookup(name, true)
		assert.ErrorIs(t, err, ErrUnknownThread, name)
	}
}

// The estimated hex sizes agree with the thread database of sdfx.
func TestMetricF2F(t *testing.T) {
	for _, name := range []string{"M6x1", "M8x1.25", "M10x1.5", "M12x1.75", "M16x2", "M20x2.5", "M24x3"} {
		want, err := sdfx.ThreadLookup(name)
		require.NoError(t, err, name)
		th, err := Lookup(name, true)
		require.NoError(t, err, name)
		got := th.Parameters()
		assert.InDelta(t, want.Radius, got.Radius, 1e-9, name)
		assert.InDelta(t, want.Pitch, got.Pitch, 1e-9, name)
		assert.Equal(t, want.HexFlat2Flat, got.HexF2F, name)
		assert.InDelta(t, want.HexRadius(), got.HexRadius(), 1e-9, name)
	}
}

func TestExternalThread(t *testing.T) {
	s, err := Primitive{}.ExternalThread("M6x1", 8, 0)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-9)
	assert.InDelta(t, 8, bb.Max.Z, 1e-9)
	assert.GreaterOrEqual(t, bb.Max.X, 3.0)

	assert.Less(t, s.Evaluate(r3.Vec{Z: 4}), 0.0, "axis is solid")
	assert.Less(t, s.Evaluate(r3.Vec{X: 2, Z: 4}), 0.0, "below thread root")
	assert.Greater(t, s.Evaluate(r3.Vec{X: 3.5, Z: 4}), 0.0, "beyond major radius")
	assert.Greater(t, s.Evaluate(r3.Vec{Z: 8.5}), 0.0, "past the end")
}

func TestExternalThreadLeadIn(t *testing.T) {
	plain, err := Primitive{}.ExternalThread("M6x1", 4, 0)
	require.NoError(t, err)
	lead, err := Primitive{}.ExternalThread("M6x1", 4, 90)
	require.NoError(t, err)
	// The chamfer removes material at the rod ends only.
	corner := r3.Vec{X: 2.95, Z: 0.02}
	assert.Greater(t, lead.Evaluate(corner), 0.0)
	mid := r3.Vec{X: 2, Z: 2}
	assert.InDelta(t, plain.Evaluate(mid), lead.Evaluate(mid), 1e-9)
}

func TestInternalThread(t *testing.T) {
	s, err := Primitive{}.InternalThread("M6x1", 5, 20)
	require.NoError(t, err)
	bb := s.Bounds()
	assert.InDelta(t, 5, bb.Max.Z-bb.Min.Z, 1e-9)
	assert.Less(t, s.Evaluate(r3.Vec{Z: 2.5}), 0.0)
	assert.Greater(t, s.Evaluate(r3.Vec{X: 3.3, Z: 2.5}), 0.0)
	// The bore crest sits outside the rod root so the two mesh.
	assert.Greater(t, bb.Max.X, 3-5.0/8*math.Sqrt(3)/2)
}

func TestPrimitiveErrors(t *testing.T) {
	_, err := Primitive{}.ExternalThread("M6x1", 0, 0)
	assert.Error(t, err)
	_, err = Primitive{}.ExternalThread("M6x1", 1, 400)
	assert.Error(t, err)
	_, err = Primitive{}.InternalThread("nonsense", 1, 0)
	assert.ErrorIs(t, err, ErrUnknownThread)
}
