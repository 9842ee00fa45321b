package fastener

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/soypat/fanmount/attr"
	"github.com/soypat/fanmount/config"
	"github.com/soypat/fanmount/form2"
	"github.com/soypat/fanmount/form3"
	"github.com/soypat/fanmount/form3/obj3/thread"
	"github.com/soypat/fanmount/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Threader builds threaded solids. Solids start at z=0 and run along +z
// for turns times the thread pitch.
type Threader interface {
	ExternalThread(threadSpec string, turns, higbeeArc float64) (sdf.SDF3, error)
	InternalThread(threadSpec string, turns, higbeeArc float64) (sdf.SDF3, error)
}

var _ Threader = thread.Primitive{}

// Generator builds fastener solids from catalog specs.
type Generator struct {
	cat *Catalog
	th  Threader
	cfg config.Config
}

// NewGenerator returns a Generator. A nil threader uses thread.Primitive.
func NewGenerator(cat *Catalog, threader Threader, cfg config.Config) (*Generator, error) {
	if cat == nil {
		return nil, errors.New("fastener: nil catalog")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if threader == nil {
		threader = thread.Primitive{}
	}
	return &Generator{cat: cat, th: threader, cfg: cfg}, nil
}

// BoltParts are the separate solids of a hex bolt. The head sits below
// z=0 and the shank and thread run along +z. Shank and Thread are nil
// when they have no length.
type BoltParts struct {
	Head   sdf.SDF3
	Shank  sdf.SDF3
	Thread sdf.SDF3
}

// Solid returns the union of the non-nil parts.
func (b BoltParts) Solid() sdf.SDF3 {
	parts := []sdf.SDF3{b.Head}
	if b.Shank != nil {
		parts = append(parts, b.Shank)
	}
	if b.Thread != nil {
		parts = append(parts, b.Thread)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return sdf.Union3D(parts...)
}

// HexBoltParts builds a hex bolt of total threaded plus plain length
// and an unthreaded shank of length shank under the head.
func (g *Generator) HexBoltParts(ref Ref, length, shank float64) (BoltParts, error) {
	if length < 0 || shank < 0 || length < shank {
		return BoltParts{}, fmt.Errorf("%w: bolt length %g shank %g", ErrPrecondition, length, shank)
	}
	s, err := g.cat.Resolve(ref)
	if err != nil {
		return BoltParts{}, err
	}
	var parts BoltParts
	flats, err := s.Float(AttrHeadAcrossFlats)
	if err != nil {
		return BoltParts{}, err
	}
	k, err := s.Float(AttrHeadThickness)
	if err != nil {
		return BoltParts{}, err
	}
	parts.Head, err = hexPrism(flats, k)
	if err != nil {
		return BoltParts{}, fmt.Errorf("fastener: %s head: %w", s.name, err)
	}
	parts.Head = sdf.Transform3D(parts.Head, sdf.Translate3D(r3.Vec{Z: -k / 2}))

	d, err := s.Float(AttrThreadDiameter)
	if err != nil {
		return BoltParts{}, err
	}
	if shank > 0 {
		c, err := form3.Cylinder(shank, d/2, 0)
		if err != nil {
			return BoltParts{}, fmt.Errorf("fastener: %s shank: %w", s.name, err)
		}
		parts.Shank = sdf.Transform3D(c, sdf.Translate3D(r3.Vec{Z: shank / 2}))
	}
	if length > shank {
		spec, err := s.Text(AttrThreadSpec)
		if err != nil {
			return BoltParts{}, err
		}
		turns, err := s.DistanceToTurns(length - shank)
		if err != nil {
			return BoltParts{}, err
		}
		th, err := g.th.ExternalThread(spec, turns, g.cfg.HigbeeArc)
		if err != nil {
			return BoltParts{}, fmt.Errorf("fastener: %s thread: %w", s.name, err)
		}
		parts.Thread = sdf.Transform3D(th, sdf.Translate3D(r3.Vec{Z: shank}))
	}
	log.Debug().Str("spec", s.name).Float64("length", length).Float64("shank", shank).Msg("hex bolt")
	return parts, nil
}

// HexBolt returns a hex bolt as a single solid. See HexBoltParts.
func (g *Generator) HexBolt(ref Ref, length, shank float64) (sdf.SDF3, error) {
	parts, err := g.HexBoltParts(ref, length, shank)
	if err != nil {
		return nil, err
	}
	return parts.Solid(), nil
}

// HexNut returns a threaded hex nut centered on the origin. A zero
// thickness uses the catalog nut thickness.
func (g *Generator) HexNut(ref Ref, thickness float64) (sdf.SDF3, error) {
	s, err := g.cat.Resolve(ref)
	if err != nil {
		return nil, err
	}
	t, err := g.nominal(s, thickness, AttrNutThickness)
	if err != nil {
		return nil, err
	}
	flats, err := s.Float(AttrNutAcrossFlats)
	if errors.Is(err, attr.ErrNotFound) {
		flats, err = s.Float(AttrHeadAcrossFlats)
	}
	if err != nil {
		return nil, err
	}
	d, err := s.Float(AttrThreadDiameter)
	if err != nil {
		return nil, err
	}
	p, err := s.pitch()
	if err != nil {
		return nil, err
	}
	spec, err := s.Text(AttrThreadSpec)
	if err != nil {
		return nil, err
	}
	// One extra turn so the bore clears both faces of the blank.
	turns := t/p + 1
	bore, err := g.th.InternalThread(spec, turns, g.cfg.HigbeeArc)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s nut thread: %w", s.name, err)
	}
	bore = sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: -turns * p / 2}))
	blank, err := form3.Cylinder(t, d/2+p/4, 0)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s nut blank: %w", s.name, err)
	}
	threaded := sdf.Difference3D(blank, bore)

	collar, err := hexPrism(flats, t)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s nut: %w", s.name, err)
	}
	hole, err := form3.Cylinder(t+2*g.cfg.Smidge, d/2, 0)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s nut bore: %w", s.name, err)
	}
	log.Debug().Str("spec", s.name).Float64("thickness", t).Msg("hex nut")
	return sdf.Union3D(threaded, sdf.Difference3D(collar, hole)), nil
}

// Washer returns a flat washer over z∈[0,thickness]. A zero thickness
// uses the catalog washer thickness.
func (g *Generator) Washer(ref Ref, thickness float64) (sdf.SDF3, error) {
	return g.washer(ref, thickness, AttrWasherInner, AttrWasherOuter, AttrWasherThickness)
}

// FenderWasher returns a fender washer over z∈[0,thickness]. Sizes
// without fender washer attributes return an error matching
// attr.ErrNotFound.
func (g *Generator) FenderWasher(ref Ref, thickness float64) (sdf.SDF3, error) {
	return g.washer(ref, thickness, AttrFenderInner, AttrFenderOuter, AttrFenderThickness)
}

func (g *Generator) washer(ref Ref, thickness float64, inner, outer, thick string) (sdf.SDF3, error) {
	s, err := g.cat.Resolve(ref)
	if err != nil {
		return nil, err
	}
	t, err := g.nominal(s, thickness, thick)
	if err != nil {
		return nil, err
	}
	id, err := s.Float(inner)
	if err != nil {
		return nil, err
	}
	od, err := s.Float(outer)
	if err != nil {
		return nil, err
	}
	if id >= od {
		return nil, fmt.Errorf("%w: %s washer inner diameter %g not below outer %g", ErrPrecondition, s.name, id, od)
	}
	out, err := form3.Cylinder(t, od/2, 0)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s washer: %w", s.name, err)
	}
	in, err := form3.Cylinder(t+2*g.cfg.Smidge, id/2, 0)
	if err != nil {
		return nil, fmt.Errorf("fastener: %s washer: %w", s.name, err)
	}
	up := sdf.Translate3D(r3.Vec{Z: t / 2})
	return sdf.Difference3D(sdf.Transform3D(out, up), sdf.Transform3D(in, up)), nil
}

// nominal returns thickness or, when it is zero, the catalog value at key.
func (g *Generator) nominal(s *Spec, thickness float64, key string) (float64, error) {
	switch {
	case thickness < 0:
		return 0, fmt.Errorf("%w: %s negative thickness %g", ErrPrecondition, s.name, thickness)
	case thickness > 0:
		return thickness, nil
	}
	t, err := s.Float(key)
	if err != nil {
		return 0, err
	}
	if t <= 0 {
		return 0, fmt.Errorf("%w: %s %s=%g", ErrPrecondition, s.name, key, t)
	}
	return t, nil
}

// hexPrism extrudes a hexagon measuring flats across flats to height,
// centered on z=0.
func hexPrism(flats, height float64) (sdf.SDF3, error) {
	v, err := form2.Nagon(6, HexFlatsToRadius(flats))
	if err != nil {
		return nil, err
	}
	hex, err := form2.Polygon(v)
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: hex height %g", ErrPrecondition, height)
	}
	return sdf.Extrude3D(hex, height), nil
}
