package obj2

import (
	"fmt"

	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

/*

2D Panel with rounded corners and edge holes.

Note: The hole pattern is used to layout multiple holes along an edge.

Examples:

"x" - single hole on edge
"xx" - two holes on edge
"x.x" = two holes on edge with spacing
"xx.x.xx" = five holes on edge with spacing
etc.

*/

// PanelParams defines the parameters for a 2D panel.
type PanelParams struct {
	Size         r2.Vec     // size of the panel
	CornerRadius float64    // radius of rounded corners
	HoleDiameter float64    // diameter of panel holes
	HoleMargin   [4]float64 // hole margins for top, right, bottom, left
	HolePattern  [4]string  // hole pattern for top, right, bottom, left
	Thickness    float64    // panel thickness (3d only)
}

// Panel returns a 2d panel with holes on the edges.
func Panel(k PanelParams) (sdf.SDF2, error) {
	s0, err := form2.Box(k.Size, k.CornerRadius)
	if err != nil {
		return nil, err
	}
	if k.HoleDiameter <= 0.0 {
		// no holes
		return s0, nil
	}

	// corners
	tl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	tr := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	br := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: -0.5*k.Size.Y + k.HoleMargin[2]}
	bl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: -0.5*k.Size.Y + k.HoleMargin[2]}

	hole, err := form2.Circle(0.5 * k.HoleDiameter)
	if err != nil {
		return nil, err
	}
	// clockwise: top, right, bottom, left
	holes := sdf.Union2D(
		sdf.LineOf2D(hole, tl, tr, k.HolePattern[0]),
		sdf.LineOf2D(hole, tr, br, k.HolePattern[1]),
		sdf.LineOf2D(hole, br, bl, k.HolePattern[2]),
		sdf.LineOf2D(hole, bl, tl, k.HolePattern[3]),
	)
	return sdf.Difference2D(s0, holes), nil
}

// Axial fan frames: square frame size, mounting hole center to center
// spacing and hole diameter [mm].
type fanFrame struct {
	size    float64
	spacing float64
	hole    float64
}

var fanFrames = []fanFrame{
	{size: 40, spacing: 32, hole: 3.4},
	{size: 60, spacing: 50, hole: 3.4},
	{size: 80, spacing: 71.5, hole: 4.3},
	{size: 92, spacing: 82.5, hole: 4.3},
	{size: 120, spacing: 105, hole: 4.3},
	{size: 140, spacing: 124.5, hole: 4.3},
}

// FanSizes returns the supported fan frame sizes in millimetres.
func FanSizes() []float64 {
	sizes := make([]float64, len(fanFrames))
	for i, f := range fanFrames {
		sizes[i] = f.size
	}
	return sizes
}

// FanGrill returns the grill that fits a fan frame of the given size.
func FanGrill(size float64) (GrillParms, error) {
	f, err := lookupFan(size)
	if err != nil {
		return GrillParms{}, err
	}
	return fanGrill(f), nil
}

func fanGrill(f fanFrame) GrillParms {
	return GrillParms{
		Radius:    0.47 * f.size,
		HubRadius: 0.2 * f.size,
		Rings:     int(f.size/20 + 0.5),
		BarWidth:  f.size / 40,
		Spokes:    4,
	}
}

// FanPanel returns a square panel for mounting a fan of frame size size
// with its four holes at the standard spacing. With grill set the panel
// is cut with the grill openings of FanGrill.
func FanPanel(size, cornerRadius float64, grill bool) (sdf.SDF2, error) {
	f, err := lookupFan(size)
	if err != nil {
		return nil, err
	}
	margin := (f.size - f.spacing) / 2
	s, err := Panel(PanelParams{
		Size:         r2.Vec{X: f.size, Y: f.size},
		CornerRadius: cornerRadius,
		HoleDiameter: f.hole,
		HoleMargin:   [4]float64{margin, margin, margin, margin},
		HolePattern:  [4]string{"x", "x", "x", "x"},
	})
	if err != nil || !grill {
		return s, err
	}
	openings, err := GrillOpenings(fanGrill(f))
	if err != nil {
		return nil, err
	}
	return sdf.Difference2D(s, openings), nil
}

func lookupFan(size float64) (fanFrame, error) {
	for _, f := range fanFrames {
		if f.size == size {
			return f, nil
		}
	}
	return fanFrame{}, fmt.Errorf("%w: no standard fan frame of %gmm", ErrBadDimension, size)
}
