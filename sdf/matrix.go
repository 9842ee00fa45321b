package sdf

import (
	"math"

	"github.com/soypat/fanmount/internal/d2"
	"github.com/soypat/fanmount/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// m33 is a row-major 3x3 homogeneous transform acting on 2D points.
type m33 [9]float64

// m44 is a row-major 4x4 homogeneous transform acting on 3D points.
type m44 [16]float64

// Identity3d returns the 3D identity transform.
func Identity3d() m44 {
	return m44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate2D returns a 3x3 translation matrix.
func Translate2D(v r2.Vec) m33 {
	return m33{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// Scale2D returns a 3x3 scaling matrix.
// Distance is not preserved unless the scale is uniform.
func Scale2D(v r2.Vec) m33 {
	return m33{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, 1,
	}
}

// Rotate2D returns a matrix rotating counterclockwise by a radians.
func Rotate2D(a float64) m33 {
	s, c := math.Sincos(a)
	return m33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// MirrorY returns a matrix that reflects across the Y axis (x -> -x).
func MirrorY() m33 {
	return m33{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate3D returns a 4x4 translation matrix.
func Translate3D(v r3.Vec) m44 {
	return m44{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale3D returns a 4x4 scaling matrix.
func Scale3D(v r3.Vec) m44 {
	return m44{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a 4x4 matrix rotating a radians about the x axis.
func RotateX(a float64) m44 {
	s, c := math.Sincos(a)
	return m44{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a 4x4 matrix rotating a radians about the y axis.
func RotateY(a float64) m44 {
	s, c := math.Sincos(a)
	return m44{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a 4x4 matrix rotating a radians about the z axis.
func RotateZ(a float64) m44 {
	s, c := math.Sincos(a)
	return m44{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b. Applied to a point, b acts first.
func (a m33) Mul(b m33) m33 {
	var m m33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				m[i*3+j] += a[i*3+k] * b[k*3+j]
			}
		}
	}
	return m
}

// MulPosition transforms point v.
func (a m33) MulPosition(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: a[0]*v.X + a[1]*v.Y + a[2],
		Y: a[3]*v.X + a[4]*v.Y + a[5],
	}
}

// MulBox returns the axis aligned box enclosing the transformed corners of box.
func (a m33) MulBox(box r2.Box) r2.Box {
	vs := d2.Box(box).Vertices()
	for i := range vs {
		vs[i] = a.MulPosition(vs[i])
	}
	return r2.Box{Min: vs.Min(), Max: vs.Max()}
}

// Inverse panics if a is singular.
func (a m33) Inverse() m33 {
	var m m33
	invert(3, a[:], m[:])
	return m
}

// Mul returns a*b. Applied to a point, b acts first.
func (a m44) Mul(b m44) m44 {
	var m m44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				m[i*4+j] += a[i*4+k] * b[k*4+j]
			}
		}
	}
	return m
}

// MulPosition transforms point v.
func (a m44) MulPosition(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z + a[3],
		Y: a[4]*v.X + a[5]*v.Y + a[6]*v.Z + a[7],
		Z: a[8]*v.X + a[9]*v.Y + a[10]*v.Z + a[11],
	}
}

// MulBox returns the axis aligned box enclosing the transformed corners of box.
func (a m44) MulBox(box r3.Box) r3.Box {
	vs := d3.Box(box).Vertices()
	for i := range vs {
		vs[i] = a.MulPosition(vs[i])
	}
	return r3.Box{Min: vs.Min(), Max: vs.Max()}
}

// Inverse panics if a is singular.
func (a m44) Inverse() m44 {
	var m m44
	invert(4, a[:], m[:])
	return m
}

// invert writes the inverse of the n×n row-major matrix src into dst.
func invert(n int, src, dst []float64) {
	data := make([]float64, len(src))
	copy(data, src)
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(n, n, data)); err != nil {
		panic("sdf: singular transform: " + err.Error())
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = inv.At(i, j)
		}
	}
}
