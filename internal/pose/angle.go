package pose

import "math"

// Angle returns the angle at vertex b between the vectors b->a and b->c,
// in degrees within [0, 180]. It reports ok=false when the angle is
// undefined: a zero-length limb vector or a coordinate that is NaN.
// The cosine is clamped to [-1, 1] so floating point error near a fully
// extended joint cannot push acos out of its domain.
func Angle(a, b, c Point) (float64, bool) {
	v1x, v1y := a.X-b.X, a.Y-b.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y

	if math.IsNaN(v1x) || math.IsNaN(v1y) || math.IsNaN(v2x) || math.IsNaN(v2y) {
		return 0, false
	}

	n1 := math.Hypot(v1x, v1y)
	n2 := math.Hypot(v2x, v2y)
	if n1 == 0 || n2 == 0 {
		return 0, false
	}

	cos := (v1x*v2x + v1y*v2y) / (n1 * n2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi, true
}

// KneeAngle computes the hip-knee-ankle angle for the given side.
// It reports ok=false when landmarks are missing or any of the three
// falls below minVisibility, so a frame with an occluded leg yields
// "no angle" rather than a fabricated value.
func KneeAngle(lm *BodyLandmarks, side Side, minVisibility float64) (float64, bool) {
	if lm == nil {
		return 0, false
	}

	hipIdx, kneeIdx, ankleIdx := side.HipKneeAnkle()
	hip := lm.Points[hipIdx]
	knee := lm.Points[kneeIdx]
	ankle := lm.Points[ankleIdx]

	if hip.Visibility < minVisibility || knee.Visibility < minVisibility || ankle.Visibility < minVisibility {
		return 0, false
	}

	return Angle(hip, knee, ankle)
}
