package thread

import "math"

// Parameters describes a thread form. Lengths are in millimetres.
type Parameters struct {
	Name   string  // name of screw thread
	Radius float64 // nominal major radius of screw
	Pitch  float64 // thread to thread distance of screw
	Starts int     // number of threads
	Taper  float64 // thread taper (radians)
	HexF2F float64 // hex head flat to flat distance
}

// HexRadius returns the hex head radius.
func (t Parameters) HexRadius() float64 {
	return t.HexF2F / (2.0 * math.Cos(30*math.Pi/180))
}

// HexHeight returns the hex head height (empirical).
func (t Parameters) HexHeight() float64 {
	return 2.0 * t.HexRadius() * (5.0 / 12.0)
}

// Depth returns the radial depth of a 60 degree thread of this pitch
// measured from crest to root (5/8 of the fundamental triangle height).
func (t Parameters) Depth() float64 {
	h := t.Pitch / (2 * math.Tan(30*math.Pi/180))
	return 5.0 / 8.0 * h
}
