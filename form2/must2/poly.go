package must2

import (
	"math"

	"github.com/soypat/fanmount/internal/d2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	sqrtHalf  = 0.7071067811865476
	tolerance = 1e-9
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
// Consecutive duplicate vertices are dropped. The vertex order may
// be clockwise or counterclockwise.
func Polygon(vertex []r2.Vec) sdf.SDF2 {
	verts := make([]r2.Vec, 0, len(vertex)+1)
	for _, v := range vertex {
		if !d2.IsFinite(v) {
			panic("non-finite polygon vertex")
		}
		if len(verts) > 0 && d2.EqualWithin(v, verts[len(verts)-1], tolerance) {
			continue
		}
		verts = append(verts, v)
	}
	// Close the loop (if necessary)
	if n := len(verts); n > 1 && !d2.EqualWithin(verts[0], verts[n-1], tolerance) {
		verts = append(verts, verts[0])
	}
	if len(verts) < 4 {
		panic("number of vertices < 3")
	}
	s := polygon{vertex: verts}
	nsegs := len(verts) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	vmin := verts[0]
	vmax := verts[0]
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(verts[i+1], verts[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
		vmin = d2.MinElem(vmin, verts[i])
		vmax = d2.MaxElem(vmax, verts[i])
	}
	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]
		pa := pb
		pb = r2.Sub(p, b)
		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// winding number, see http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 {
				wn++ // upward crossing, p left of segment
			}
		} else if b.Y <= p.Y && dn > 0 {
			wn-- // downward crossing, p right of segment
		}
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	closed bool            // is the polygon closed or open?
	vlist  []polygonVertex // list of polygon vertices
}

// polygonVertex is a polygon vertex.
type polygonVertex struct {
	relative bool    // vertex position is relative to previous vertex
	smooth   bool    // round the corner at this vertex
	vertex   r2.Vec  // vertex coordinates
	facets   int     // number of polygon facets to create when smoothing
	radius   float64 // radius of smoothing (0 == none)
}

// Rel positions the polygon vertex relative to the prior vertex.
func (v *polygonVertex) Rel() *polygonVertex {
	v.relative = true
	return v
}

// Smooth marks the polygon vertex for smoothing.
func (v *polygonVertex) Smooth(radius float64, facets int) *polygonVertex {
	if radius > 0 && facets > 0 {
		v.radius = radius
		v.facets = facets
		v.smooth = true
	}
	return v
}

// Chamfer marks the polygon vertex for chamfering.
// Size is exact for 90 degree corners.
func (v *polygonVertex) Chamfer(size float64) *polygonVertex {
	if size > 0 {
		v.radius = size * sqrtHalf
		v.facets = 1
		v.smooth = true
	}
	return v
}

// NewPolygon returns an empty polygon.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Close closes the polygon so the first and last vertices may be smoothed.
func (p *PolygonBuilder) Close() {
	p.closed = true
}

// Add an x,y vertex to a polygon.
func (p *PolygonBuilder) Add(x, y float64) *polygonVertex {
	return p.AddV2(r2.Vec{X: x, Y: y})
}

// AddV2 adds a vertex to a polygon.
func (p *PolygonBuilder) AddV2(x r2.Vec) *polygonVertex {
	p.vlist = append(p.vlist, polygonVertex{vertex: x})
	return &p.vlist[len(p.vlist)-1]
}

// Vertices returns the vertices of the polygon with relative
// positions resolved and marked corners smoothed.
func (p *PolygonBuilder) Vertices() []r2.Vec {
	if len(p.vlist) == 0 {
		panic("empty vertex list. was PolygonBuilder initialized?")
	}
	p.relToAbs()
	p.smoothVertices()
	v := make([]r2.Vec, len(p.vlist))
	for i, pv := range p.vlist {
		v[i] = pv.vertex
	}
	return v
}

func (p *PolygonBuilder) nextVertex(i int) *polygonVertex {
	if i == len(p.vlist)-1 {
		if p.closed {
			return &p.vlist[0]
		}
		return nil
	}
	return &p.vlist[i+1]
}

func (p *PolygonBuilder) prevVertex(i int) *polygonVertex {
	if i == 0 {
		if p.closed {
			return &p.vlist[len(p.vlist)-1]
		}
		return nil
	}
	return &p.vlist[i-1]
}

func (p *PolygonBuilder) relToAbs() {
	for i := range p.vlist {
		v := &p.vlist[i]
		if !v.relative {
			continue
		}
		if i == 0 {
			panic("relative vertex needs an absolute reference")
		}
		v.vertex = r2.Add(v.vertex, p.vlist[i-1].vertex)
		v.relative = false
	}
}

// smoothVertex replaces the i-th vertex with an arc, returns true if it did.
func (p *PolygonBuilder) smoothVertex(i int) bool {
	v := p.vlist[i]
	if !v.smooth {
		return false
	}
	p.vlist[i].smooth = false
	vn := p.nextVertex(i)
	vp := p.prevVertex(i)
	if vp == nil || vn == nil {
		// can't smooth the endpoints of an open polygon
		return false
	}
	v0 := r2.Unit(r2.Sub(vp.vertex, v.vertex))
	v1 := r2.Unit(r2.Sub(vn.vertex, v.vertex))
	theta := math.Acos(sdf.Clamp(r2.Dot(v0, v1), -1, 1))
	// distance from vertex to circle tangent
	d1 := v.radius / math.Tan(theta/2)
	if d1 > r2.Norm(r2.Sub(vp.vertex, v.vertex)) || d1 > r2.Norm(r2.Sub(vn.vertex, v.vertex)) {
		// radius is too large for the adjacent edges
		return false
	}
	p0 := r2.Add(v.vertex, r2.Scale(d1, v0))
	// center of circle
	dc := v.radius / math.Sin(theta/2)
	c := r2.Add(v.vertex, r2.Scale(dc, r2.Unit(r2.Add(v0, v1))))
	dtheta := math.Copysign(1, r2.Cross(v1, v0)) * (math.Pi - theta) / float64(v.facets)
	rm := sdf.Rotate2D(dtheta)
	rv := r2.Sub(p0, c)
	points := make([]polygonVertex, v.facets+1)
	for j := range points {
		points[j] = polygonVertex{vertex: r2.Add(c, rv)}
		rv = rm.MulPosition(rv)
	}
	p.vlist = append(p.vlist[:i], append(points, p.vlist[i+1:]...)...)
	return true
}

func (p *PolygonBuilder) smoothVertices() {
	for done := false; !done; {
		done = true
		for i := range p.vlist {
			if p.smoothVertex(i) {
				done = false
				break
			}
		}
	}
}

// Nagon return the vertices of a N sided regular polygon
// with circumradius radius. The first vertex lies on the +X axis.
func Nagon(n int, radius float64) []r2.Vec {
	if n < 3 {
		panic("n < 3")
	}
	if radius <= 0 {
		panic("radius <= 0")
	}
	v := make([]r2.Vec, n)
	for i := range v {
		v[i] = d2.PolarToXY(radius, 2*math.Pi*float64(i)/float64(n))
	}
	return v
}
