package obj2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Order is a criterion for ordering a pair of points relative to a
// reference point.
type Order int

const (
	OrderFirst Order = iota // keep the pair as is
	OrderLast               // swap the pair
	OrderClosest
	OrderFarthest
	OrderClosestX
	OrderClosestY
	OrderClosestZ
	OrderFarthestX
	OrderFarthestY
	OrderFarthestZ
)

var orderNames = [...]string{
	OrderFirst:     "first",
	OrderLast:      "last",
	OrderClosest:   "closest",
	OrderFarthest:  "farthest",
	OrderClosestX:  "closest-x",
	OrderClosestY:  "closest-y",
	OrderClosestZ:  "closest-z",
	OrderFarthestX: "farthest-x",
	OrderFarthestY: "farthest-y",
	OrderFarthestZ: "farthest-z",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder returns the Order named s.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if name == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	v, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(orderNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(o))
	}
	return []byte(orderNames[o]), nil
}

// OrderPair3 returns pair reordered by o relative to ref. When both points
// score equally the first point stays first.
func OrderPair3(ref r3.Vec, pair [2]r3.Vec, o Order) ([2]r3.Vec, error) {
	a, b := pair[0], pair[1]
	var swap bool
	switch o {
	case OrderFirst:
	case OrderLast:
		swap = true
	case OrderClosest:
		swap = r3.Norm(r3.Sub(b, ref)) < r3.Norm(r3.Sub(a, ref))
	case OrderFarthest:
		swap = r3.Norm(r3.Sub(b, ref)) > r3.Norm(r3.Sub(a, ref))
	case OrderClosestX, OrderClosestY, OrderClosestZ:
		axis := o - OrderClosestX
		swap = axisDist(b, ref, axis) < axisDist(a, ref, axis)
	case OrderFarthestX, OrderFarthestY, OrderFarthestZ:
		axis := o - OrderFarthestX
		swap = axisDist(b, ref, axis) > axisDist(a, ref, axis)
	default:
		return pair, fmt.Errorf("%w: %d", ErrUnknownOrder, int(o))
	}
	if swap {
		return [2]r3.Vec{b, a}, nil
	}
	return pair, nil
}

// OrderPair orders 2D points as OrderPair3 does with all points at z=0.
func OrderPair(ref r2.Vec, pair [2]r2.Vec, o Order) ([2]r2.Vec, error) {
	lift := func(v r2.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y} }
	got, err := OrderPair3(lift(ref), [2]r3.Vec{lift(pair[0]), lift(pair[1])}, o)
	if err != nil {
		return pair, err
	}
	return [2]r2.Vec{{X: got[0].X, Y: got[0].Y}, {X: got[1].X, Y: got[1].Y}}, nil
}

func axisDist(p, ref r3.Vec, axis Order) float64 {
	d := r3.Sub(p, ref)
	switch axis {
	case 0:
		return math.Abs(d.X)
	case 1:
		return math.Abs(d.Y)
	}
	return math.Abs(d.Z)
}
