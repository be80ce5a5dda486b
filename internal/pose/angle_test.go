package pose

import (
	"math"
	"testing"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    float64
		wantOK  bool
	}{
		{
			name:   "right angle",
			a:      Point{X: 0, Y: -10},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 10, Y: 0},
			want:   90,
			wantOK: true,
		},
		{
			name:   "straight leg",
			a:      Point{X: 0, Y: -10},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 0, Y: 10},
			want:   180,
			wantOK: true,
		},
		{
			name:   "fully folded",
			a:      Point{X: 10, Y: 0},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 10, Y: 0},
			want:   0,
			wantOK: true,
		},
		{
			name:   "sixty degrees",
			a:      Point{X: 1, Y: 0},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 0.5, Y: math.Sqrt(3) / 2},
			want:   60,
			wantOK: true,
		},
		{
			name:   "zero length vector undefined",
			a:      Point{X: 0, Y: 0},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 10, Y: 0},
			wantOK: false,
		},
		{
			name:   "NaN coordinate undefined",
			a:      Point{X: math.NaN(), Y: 0},
			b:      Point{X: 0, Y: 0},
			c:      Point{X: 10, Y: 0},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Angle(tt.a, tt.b, tt.c)
			if ok != tt.wantOK {
				t.Fatalf("Angle() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Angle() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestAngle_AlwaysWithinRange(t *testing.T) {
	// Collinear points can push the cosine just outside [-1, 1]; the
	// clamp keeps acos defined and the result within [0, 180].
	points := []Point{
		{X: 0.1, Y: 0.2},
		{X: 0.2, Y: 0.4},
		{X: 0.30000000000000004, Y: 0.6000000000000001},
	}

	got, ok := Angle(points[0], points[1], points[2])
	if !ok {
		t.Fatal("Angle() on collinear points should be defined")
	}
	if got < 0 || got > 180 {
		t.Errorf("Angle() = %f, want within [0, 180]", got)
	}
}

func TestKneeAngle(t *testing.T) {
	standing := StandingLandmarks()
	squatted := SquatBottomLandmarks()

	tests := []struct {
		name    string
		body    *BodyLandmarks
		side    Side
		wantMin float64
		wantMax float64
	}{
		{
			name:    "standing left knee nearly straight",
			body:    standing,
			side:    SideLeft,
			wantMin: 160,
			wantMax: 180,
		},
		{
			name:    "standing right knee nearly straight",
			body:    standing,
			side:    SideRight,
			wantMin: 160,
			wantMax: 180,
		},
		{
			name:    "squat bottom left knee deep",
			body:    squatted,
			side:    SideLeft,
			wantMin: 80,
			wantMax: 100,
		},
		{
			name:    "half squat left knee in the hysteresis band",
			body:    HalfSquatLandmarks(),
			side:    SideLeft,
			wantMin: 101,
			wantMax: 159,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KneeAngle(tt.body, tt.side, 0.5)
			if !ok {
				t.Fatal("KneeAngle() ok = false, want true")
			}
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("KneeAngle() = %f, want within [%f, %f]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestKneeAngle_VisibilityGate(t *testing.T) {
	body := StandingLandmarks()
	body.Points[LeftKnee].Visibility = 0.2

	if _, ok := KneeAngle(body, SideLeft, 0.5); ok {
		t.Error("KneeAngle() reported an angle for an occluded knee")
	}

	// The other side is unaffected.
	if _, ok := KneeAngle(body, SideRight, 0.5); !ok {
		t.Error("KneeAngle() right side should still be available")
	}
}

func TestKneeAngle_NilBody(t *testing.T) {
	if _, ok := KneeAngle(nil, SideLeft, 0.5); ok {
		t.Error("KneeAngle(nil) ok = true, want false")
	}
}
