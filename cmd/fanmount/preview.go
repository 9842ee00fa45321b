package main

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/soypat/fanmount/form2/obj2"
	"github.com/soypat/fanmount/sdf"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	previewOutput     string
	previewResolution int

	expoSize      []float64
	expoCurvature float64

	armSize      []float64
	armBase      float64
	armTip       float64
	armStraight  float64
	armCurvature float64

	grillSize float64

	fanSize   float64
	fanRadius float64
	fanGrill  bool

	hullP1     []float64
	hullP2     []float64
	hullCenter []float64
	hullRadius float64
	hullCircle bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Plot 2D silhouettes",
	Long: `Plot a 2D silhouette to an image file. The output format follows the
file extension (svg, png, pdf, eps).`,
}

var previewExpoCmd = &cobra.Command{
	Use:   "expo",
	Short: "Exponential curve profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := vecFlag("size", expoSize)
		if err != nil {
			return err
		}
		v, err := obj2.ExpoVertices(size, expoCurvature, cfg.CurveSegments())
		if err != nil {
			return err
		}
		p, err := polylinePlot(v)
		if err != nil {
			return err
		}
		p.Title.Text = fmt.Sprintf("expo %gx%g c=%g", size.X, size.Y, expoCurvature)
		return savePlot(cmd, p, previewOutput)
	},
}

var previewArmCmd = &cobra.Command{
	Use:   "arm",
	Short: "Curved arm silhouette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := vecFlag("size", armSize)
		if err != nil {
			return err
		}
		s, err := obj2.ArmMixed(size, armBase, armTip, armStraight, armCurvature, cfg.CurveSegments())
		if err != nil {
			return err
		}
		return previewSDF(cmd, s, "arm")
	},
}

var previewGrillCmd = &cobra.Command{
	Use:   "grill",
	Short: "Fan grill for a standard fan size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := obj2.FanGrill(grillSize)
		if err != nil {
			return err
		}
		s, err := obj2.Grill(k)
		if err != nil {
			return err
		}
		return previewSDF(cmd, s, fmt.Sprintf("grill %gmm", grillSize))
	},
}

var previewFanCmd = &cobra.Command{
	Use:   "fan",
	Short: "Fan mounting panel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := obj2.FanPanel(fanSize, fanRadius, fanGrill)
		if err != nil {
			return err
		}
		return previewSDF(cmd, s, fmt.Sprintf("fan panel %gmm", fanSize))
	},
}

var previewHullCmd = &cobra.Command{
	Use:   "hull",
	Short: "Arm end joined to a circle by its tangent hull",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var pts [3]r2.Vec
		for i, f := range []struct {
			name string
			v    []float64
		}{{"p1", hullP1}, {"p2", hullP2}, {"center", hullCenter}} {
			v, err := vecFlag(f.name, f.v)
			if err != nil {
				return err
			}
			pts[i] = v
		}
		s, err := obj2.ArmToCircle(pts[0], pts[1], pts[2], hullRadius, hullCircle)
		if err != nil {
			return err
		}
		return previewSDF(cmd, s, "tangent hull")
	},
}

func init() {
	previewCmd.PersistentFlags().StringVarP(&previewOutput, "output", "o", "preview.svg", "Output image file")
	previewCmd.PersistentFlags().IntVar(&previewResolution, "resolution", 200, "Contour grid samples along the longest side")

	previewExpoCmd.Flags().Float64SliceVar(&expoSize, "size", []float64{30, 40}, "Curve width,height")
	previewExpoCmd.Flags().Float64Var(&expoCurvature, "curvature", 3, "Curvature, negative flips the curve")

	previewArmCmd.Flags().Float64SliceVar(&armSize, "size", []float64{30, 40}, "Arm width,height")
	previewArmCmd.Flags().Float64Var(&armBase, "base", 3, "Width at the base")
	previewArmCmd.Flags().Float64Var(&armTip, "tip", 1, "Width at the tip")
	previewArmCmd.Flags().Float64Var(&armStraight, "straight", 0, "Straight section as a percentage of the height")
	previewArmCmd.Flags().Float64Var(&armCurvature, "curvature", 3, "Curvature, negative flips the curve")

	previewGrillCmd.Flags().Float64Var(&grillSize, "size", 120, "Fan size in mm")

	previewFanCmd.Flags().Float64Var(&fanSize, "size", 120, "Fan size in mm")
	previewFanCmd.Flags().Float64Var(&fanRadius, "radius", 5, "Corner radius")
	previewFanCmd.Flags().BoolVar(&fanGrill, "grill", true, "Cut the grill openings")

	previewHullCmd.Flags().Float64SliceVar(&hullP1, "p1", []float64{-10, -20}, "First arm end point x,y")
	previewHullCmd.Flags().Float64SliceVar(&hullP2, "p2", []float64{10, -20}, "Second arm end point x,y")
	previewHullCmd.Flags().Float64SliceVar(&hullCenter, "center", []float64{0, 0}, "Circle center x,y")
	previewHullCmd.Flags().Float64Var(&hullRadius, "radius", 5, "Circle radius")
	previewHullCmd.Flags().BoolVar(&hullCircle, "circle", true, "Include the circle")

	previewCmd.AddCommand(previewExpoCmd)
	previewCmd.AddCommand(previewArmCmd)
	previewCmd.AddCommand(previewGrillCmd)
	previewCmd.AddCommand(previewFanCmd)
	previewCmd.AddCommand(previewHullCmd)
}

func vecFlag(name string, v []float64) (r2.Vec, error) {
	if len(v) != 2 {
		return r2.Vec{}, fmt.Errorf("--%s takes two values, got %d", name, len(v))
	}
	return r2.Vec{X: v[0], Y: v[1]}, nil
}

func polylinePlot(v []r2.Vec) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(v))
	for i, p := range v {
		xys[i].X, xys[i].Y = p.X, p.Y
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Add(l, plotter.NewGrid())
	return p, nil
}

func previewSDF(cmd *cobra.Command, s sdf.SDF2, title string) error {
	p, err := contourPlot(s, previewResolution)
	if err != nil {
		return err
	}
	p.Title.Text = title
	return savePlot(cmd, p, previewOutput)
}

// contourPlot draws the zero level set of s.
func contourPlot(s sdf.SDF2, resolution int) (*plot.Plot, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("resolution %d below 2", resolution)
	}
	g := newSDFGrid(s, resolution)
	c := plotter.NewContour(g, []float64{0}, palette.Heat(4, 1))
	p := plot.New()
	p.Add(c)
	p.X.Min, p.X.Max = g.X(0), g.X(g.nx-1)
	p.Y.Min, p.Y.Max = g.Y(0), g.Y(g.ny-1)
	return p, nil
}

func savePlot(cmd *cobra.Command, p *plot.Plot, out string) error {
	const side = 12 * vg.Centimeter
	w, h := side, side
	if dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min; dx > 0 && dy > 0 {
		if dx > dy {
			h = vg.Length(float64(side) * math.Max(dy/dx, 0.25))
		} else {
			w = vg.Length(float64(side) * math.Max(dx/dy, 0.25))
		}
	}
	if err := p.Save(w, h, out); err != nil {
		return err
	}
	log.Info().Str("file", out).Msg("wrote preview")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// sdfGrid samples an SDF2 over its padded bounding box.
type sdfGrid struct {
	s      sdf.SDF2
	lo     r2.Vec
	step   float64
	nx, ny int
}

var _ plotter.GridXYZ = sdfGrid{}

func newSDFGrid(s sdf.SDF2, resolution int) sdfGrid {
	bb := s.Bounds()
	size := r2.Sub(bb.Max, bb.Min)
	pad := 0.05 * math.Max(size.X, size.Y)
	if pad == 0 {
		pad = 1
	}
	lo := r2.Sub(bb.Min, r2.Vec{X: pad, Y: pad})
	size = r2.Add(size, r2.Vec{X: 2 * pad, Y: 2 * pad})
	step := math.Max(size.X, size.Y) / float64(resolution-1)
	return sdfGrid{
		s:    s,
		lo:   lo,
		step: step,
		nx:   int(math.Ceil(size.X/step-1e-9)) + 1,
		ny:   int(math.Ceil(size.Y/step-1e-9)) + 1,
	}
}

func (g sdfGrid) Dims() (c, r int) { return g.nx, g.ny }

func (g sdfGrid) X(c int) float64 { return g.lo.X + float64(c)*g.step }

func (g sdfGrid) Y(r int) float64 { return g.lo.Y + float64(r)*g.step }

func (g sdfGrid) Z(c, r int) float64 {
	return g.s.Evaluate(r2.Vec{X: g.X(c), Y: g.Y(r)})
}
