package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// NewBox creates a 2d box with a given center and size.
func NewBox(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{Min: MinElem(a.Min, b.Min), Max: MaxElem(a.Max, b.Max)}
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{r2.Add(a.Min, v), r2.Add(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Enlarge returns a new 2d box enlarged by a size vector.
func (a Box) Enlarge(v r2.Vec) Box {
	v = r2.Scale(0.5, v)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// Vertices returns a slice of 2d box corner vertices.
func (a Box) Vertices() Set {
	return Set{
		a.Min,
		{X: a.Max.X, Y: a.Min.Y},
		{X: a.Min.X, Y: a.Max.Y},
		a.Max,
	}
}

// MinMaxDist2 returns the minimum and maximum dist * dist from a point to a box.
// Points within the box have minimum distance = 0.
func (a Box) MinMaxDist2(p r2.Vec) r2.Vec {
	a = a.Translate(r2.Scale(-1, p))
	vs := a.Vertices()
	minDist2 := r2.Norm2(vs[0])
	maxDist2 := minDist2
	for _, v := range vs[1:] {
		d2 := r2.Norm2(v)
		minDist2 = math.Min(minDist2, d2)
		maxDist2 = math.Max(maxDist2, d2)
	}
	withinX := a.Min.X < 0 && a.Max.X > 0
	withinY := a.Min.Y < 0 && a.Max.Y > 0
	switch {
	case withinX && withinY:
		minDist2 = 0
	case withinX:
		d := math.Min(math.Abs(a.Max.Y), math.Abs(a.Min.Y))
		minDist2 = math.Min(minDist2, d*d)
	case withinY:
		d := math.Min(math.Abs(a.Max.X), math.Abs(a.Min.X))
		minDist2 = math.Min(minDist2, d*d)
	}
	return r2.Vec{X: minDist2, Y: maxDist2}
}
