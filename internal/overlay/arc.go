package overlay

import "math"

// clockwiseShorter reports whether sweeping clockwise from start to end
// covers the smaller of the two angles between them.
func clockwiseShorter(start, end float64) bool {
	sweep := math.Mod(end-start, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return sweep <= math.Pi
}
