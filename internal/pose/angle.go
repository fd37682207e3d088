package pose

import "math"

// AngleAt returns the angle in degrees at vertex b, between the rays b->a and b->c,
// normalized into [0, 180].
//
// The second return value is false when the angle is undefined: a missing point,
// a non-finite coordinate, or a zero-length ray. Callers skip undefined angles,
// they never treat them as 0.
// Coincident rays (AngleAt(a, b, a)) are defined and give 0.
func AngleAt(a, b, c *Point) (float64, bool) {
	if a == nil || b == nil || c == nil {
		return 0, false
	}
	if !finite(a) || !finite(b) || !finite(c) {
		return 0, false
	}
	if *a == *b || *c == *b {
		return 0, false
	}

	radians := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	angle := math.Abs(radians * 180 / math.Pi)
	if angle > 180 {
		angle = 360 - angle
	}

	return angle, true
}

// Direction returns the angle of the ray from->to in radians, measured from the
// positive x axis. With image coordinates (y grows downwards) that is clockwise,
// the same convention canvas arcs use.
func Direction(from, to *Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func finite(p *Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
