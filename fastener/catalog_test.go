package fastener

import (
	"errors"
	"strings"
	"testing"

	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/fanmount/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	names := cat.Names()
	require.Len(t, names, 22)
	assert.Equal(t, "M2", names[0])
	assert.Equal(t, "M2.5", names[1])
	assert.Equal(t, "#6-32", names[15])
	assert.Equal(t, "1/2-13", names[len(names)-1])

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, cat, again)

	m6, err := cat.Spec("M6")
	require.NoError(t, err)
	keys := m6.Keys()
	assert.Equal(t, []string{AttrThreadSpec, AttrThreadPitch, AttrThreadDiameter}, keys[:3])
	assert.Equal(t, AttrFenderThickness, keys[len(keys)-1])
}

func TestSpecAccessors(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	m6, err := cat.Spec("M6")
	require.NoError(t, err)
	assert.Equal(t, "M6", m6.Name())

	spec, err := m6.Text(AttrThreadSpec)
	require.NoError(t, err)
	assert.Equal(t, "M6x1", spec)
	_, err = m6.Float(AttrThreadSpec)
	assert.ErrorIs(t, err, ErrNotNumeric)

	f, err := m6.Float(AttrHeadAcrossFlats)
	require.NoError(t, err)
	assert.Equal(t, 10.0, f)
	txt, err := m6.Text(AttrThreadPitch)
	require.NoError(t, err)
	assert.Equal(t, "1", txt)

	_, err = m6.Float("thread_color")
	var lerr *attr.LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "thread_color", lerr.Key)
	z, err := m6.FloatOrZero("thread_color")
	require.NoError(t, err)
	assert.Zero(t, z)

	uts, err := cat.Spec("#10-24")
	require.NoError(t, err)
	spec, err = uts.Text(AttrThreadSpec)
	require.NoError(t, err)
	assert.Equal(t, "#10-24", spec)
}

func TestCatalogRefs(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	_, err = cat.Spec("M7")
	assert.ErrorIs(t, err, attr.ErrNotFound)
	_, err = cat.Attribute(Name("M7"), AttrThreadPitch)
	assert.ErrorIs(t, err, attr.ErrNotFound)
	_, err = cat.Resolve(nil)
	assert.Error(t, err)

	byName, err := cat.Attribute(Name("M8"), AttrThreadPitch)
	require.NoError(t, err)
	m8, err := cat.Spec("M8")
	require.NoError(t, err)
	bySpec, err := cat.Attribute(m8, AttrThreadPitch)
	require.NoError(t, err)
	assert.Equal(t, 1.25, byName)
	assert.Equal(t, byName, bySpec)

	// Specs outside the catalog resolve to themselves.
	own, err := NewSpec("custom", attr.Pair[Value]{Key: AttrThreadPitch, Value: Number(0.7)})
	require.NoError(t, err)
	p, err := cat.Attribute(own, AttrThreadPitch)
	require.NoError(t, err)
	assert.Equal(t, 0.7, p)
}

func TestMissingFenderWasher(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	has, err := cat.HasAttribute(Name("M42"), AttrFenderThickness)
	require.NoError(t, err)
	assert.False(t, has)
	v, err := cat.AttributeOrZero(Name("M42"), AttrFenderThickness)
	require.NoError(t, err)
	assert.Zero(t, v)
	_, err = cat.Attribute(Name("M42"), AttrFenderThickness)
	assert.ErrorIs(t, err, attr.ErrNotFound)

	has, err = cat.HasAttribute(Name("M6"), AttrFenderThickness)
	require.NoError(t, err)
	assert.True(t, has)
	_, err = cat.AttributeOrZero(Name("M99"), AttrFenderThickness)
	assert.ErrorIs(t, err, attr.ErrNotFound)
}

func TestParse(t *testing.T) {
	cat, err := Parse(strings.NewReader(`
zeta:
  b: 2
  a: "3"
  c: 1.5e1
alpha:
  name: plain text
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, cat.Names())
	zeta, err := cat.Spec("zeta")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, zeta.Keys())
	_, err = zeta.Float("a")
	assert.ErrorIs(t, err, ErrNotNumeric, "quoted scalars are text")
	c, err := zeta.Float("c")
	require.NoError(t, err)
	assert.Equal(t, 15.0, c)

	empty, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Names())
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"sequence root":   "- 1\n- 2\n",
		"scalar spec":     "M6: 1\n",
		"nested value":    "M6:\n  pitch: [1, 2]\n",
		"duplicate spec":  "M6:\n  a: 1\nM6:\n  b: 2\n",
		"duplicate attr":  "M6:\n  a: 1\n  a: 2\n",
		"malformed input": "M6: [\n",
	} {
		_, err := Parse(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, 11.547005, HexFlatsToDiameter(10), 1e-6)
	assert.InDelta(t, 5.7735027, HexFlatsToRadius(10), 1e-6)

	cat, err := Default()
	require.NoError(t, err)
	m6, err := cat.Spec("M6")
	require.NoError(t, err)
	turns, err := m6.DistanceToTurns(8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, turns)
	d, err := m6.TurnsToDistance(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	r, err := m6.NominalCircularRadius()
	require.NoError(t, err)
	assert.InDelta(t, 5.7735027, r, 1e-6)

	quarter, err := cat.Spec("1/4-20")
	require.NoError(t, err)
	turns, err = quarter.DistanceToTurns(25.4)
	require.NoError(t, err)
	assert.InDelta(t, 20, turns, 1e-9)

	nopitch, err := NewSpec("nopitch")
	require.NoError(t, err)
	_, err = nopitch.DistanceToTurns(1)
	assert.ErrorIs(t, err, attr.ErrNotFound)
	flat, err := NewSpec("flat", attr.Pair[Value]{Key: AttrThreadPitch, Value: Number(0)})
	require.NoError(t, err)
	_, err = flat.TurnsToDistance(1)
	assert.ErrorIs(t, err, ErrPrecondition)
}

// The hexagon conversions agree with the head sizes of sdfx.
func TestHexRadiusMatchesSdfx(t *testing.T) {
	for _, name := range []string{"M6x1", "M8x1.25", "M12x1.75", "M24x3"} {
		th, err := sdfx.ThreadLookup(name)
		require.NoError(t, err, name)
		assert.InDelta(t, th.HexRadius(), HexFlatsToRadius(th.HexFlat2Flat), 1e-9, name)
	}
}
