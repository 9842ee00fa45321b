package attr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOrder(t *testing.T) {
	tb, err := New(
		Pair[int]{Key: "c", Value: 3},
		Pair[int]{Key: "a", Value: 1},
		Pair[int]{Key: "b", Value: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, tb.Keys())
	assert.Equal(t, 3, tb.Len())

	keys := tb.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "c", tb.Keys()[0], "Keys must return a copy")
}

func TestTableLookup(t *testing.T) {
	tb, err := New(Pair[float64]{Key: "pitch", Value: 1}, Pair[float64]{Key: "zero", Value: 0})
	require.NoError(t, err)

	v, err := tb.Get("pitch")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// present zero is distinct from missing.
	assert.True(t, tb.Exists("zero"))
	assert.False(t, tb.Exists("missing"))
	assert.Equal(t, 7.0, tb.GetOrDefault("missing", 7))
	assert.Equal(t, 0.0, tb.GetOrDefault("zero", 7))

	_, err = tb.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
	var lerr *LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "missing", lerr.Key)
}

func TestTableDuplicate(t *testing.T) {
	_, err := New(Pair[string]{Key: "a"}, Pair[string]{Key: "a"})
	assert.Error(t, err)
}

func TestZeroTable(t *testing.T) {
	var tb Table[int]
	assert.Equal(t, 0, tb.Len())
	assert.Empty(t, tb.Keys())
	_, err := tb.Get("x")
	assert.ErrorIs(t, err, ErrNotFound)
}
