package fastener

import (
	"fmt"
	"math"
)

var cos30 = math.Cos(math.Pi / 6)

// HexFlatsToDiameter returns the corner-to-corner diameter of a
// regular hexagon measuring flats across its flats.
func HexFlatsToDiameter(flats float64) float64 { return flats / cos30 }

// HexFlatsToRadius returns the circumradius of a regular hexagon
// measuring flats across its flats.
func HexFlatsToRadius(flats float64) float64 { return HexFlatsToDiameter(flats) / 2 }

func (s *Spec) pitch() (float64, error) {
	p, err := s.Float(AttrThreadPitch)
	if err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, fmt.Errorf("%w: %s thread pitch %g", ErrPrecondition, s.name, p)
	}
	return p, nil
}

// DistanceToTurns returns the number of thread turns in an axial distance.
func (s *Spec) DistanceToTurns(distance float64) (float64, error) {
	p, err := s.pitch()
	if err != nil {
		return 0, err
	}
	return distance / p, nil
}

// TurnsToDistance returns the axial advance of turns.
func (s *Spec) TurnsToDistance(turns float64) (float64, error) {
	p, err := s.pitch()
	if err != nil {
		return 0, err
	}
	return turns * p, nil
}

// NominalCircularDiameter is the diameter of the circle through the
// head's hexagon corners.
func (s *Spec) NominalCircularDiameter() (float64, error) {
	f, err := s.Float(AttrHeadAcrossFlats)
	if err != nil {
		return 0, err
	}
	return HexFlatsToDiameter(f), nil
}

// NominalCircularRadius is half of NominalCircularDiameter.
func (s *Spec) NominalCircularRadius() (float64, error) {
	d, err := s.NominalCircularDiameter()
	return d / 2, err
}
