package obj2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestOrderPair3(t *testing.T) {
	ref := r3.Vec{}
	a := r3.Vec{X: 1, Y: 5, Z: -3}
	b := r3.Vec{X: -4, Y: 1, Z: 2}
	pair := [2]r3.Vec{a, b}
	for _, test := range []struct {
		o     Order
		first r3.Vec
	}{
		{OrderFirst, a},
		{OrderLast, b},
		{OrderClosest, b}, // |a|=5.92, |b|=4.58
		{OrderFarthest, a},
		{OrderClosestX, a},
		{OrderFarthestX, b},
		{OrderClosestY, b},
		{OrderFarthestY, a},
		{OrderClosestZ, b},
		{OrderFarthestZ, a},
	} {
		got, err := OrderPair3(ref, pair, test.o)
		require.NoError(t, err, test.o)
		assert.Equal(t, test.first, got[0], test.o.String())
	}
}

func TestOrderPairTies(t *testing.T) {
	ref := r2.Vec{}
	pair := [2]r2.Vec{{X: 3, Y: 4}, {X: -4, Y: 3}}
	for _, o := range []Order{OrderClosest, OrderFarthest} {
		got, err := OrderPair(ref, pair, o)
		require.NoError(t, err)
		assert.Equal(t, pair, got, "equal distances keep the first operand first for %v", o)
	}
	same := [2]r2.Vec{{X: 2, Y: 1}, {X: 2, Y: -7}}
	got, err := OrderPair(ref, same, OrderClosestX)
	require.NoError(t, err)
	assert.Equal(t, same, got)
}

func TestOrderPairClosestThenFarthest(t *testing.T) {
	ref := r2.Vec{X: 1, Y: 1}
	pairs := [][2]r2.Vec{
		{{X: 10, Y: 0}, {X: 2, Y: 2}},
		{{X: 2, Y: 2}, {X: 10, Y: 0}},
		{{X: -3, Y: 8}, {X: 0, Y: 0}},
	}
	for _, pair := range pairs {
		closest, err := OrderPair(ref, pair, OrderClosest)
		require.NoError(t, err)
		again, err := OrderPair(ref, closest, OrderClosest)
		require.NoError(t, err)
		assert.Equal(t, closest, again, "closest is idempotent")
		farthest, err := OrderPair(ref, closest, OrderFarthest)
		require.NoError(t, err)
		assert.Equal(t, closest[0], farthest[1])
	}
}

func TestParseOrder(t *testing.T) {
	for o := OrderFirst; o <= OrderFarthestZ; o++ {
		got, err := ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseOrder("nearest")
	assert.ErrorIs(t, err, ErrUnknownOrder)

	var o Order
	require.NoError(t, o.UnmarshalText([]byte("farthest-y")))
	assert.Equal(t, OrderFarthestY, o)
	assert.ErrorIs(t, o.UnmarshalText([]byte("Closest")), ErrUnknownOrder)
}

func TestOrderPairUnknown(t *testing.T) {
	_, err := OrderPair3(r3.Vec{}, [2]r3.Vec{}, Order(42))
	assert.ErrorIs(t, err, ErrUnknownOrder)
	_, err = Order(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOrder)
}
