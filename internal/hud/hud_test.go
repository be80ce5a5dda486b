package hud

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/squatcoach/internal/pose"
)

// nonZeroPixels counts pixels touched by drawing on a black frame.
func nonZeroPixels(t *testing.T, frame *gocv.Mat) int {
	t.Helper()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)

	return gocv.CountNonZero(gray)
}

func newFrame() gocv.Mat {
	return gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
}

func TestDrawStartScreen(t *testing.T) {
	frame := newFrame()
	defer frame.Close()

	DrawStartScreen(&frame)

	if nonZeroPixels(t, &frame) == 0 {
		t.Error("start screen drew nothing")
	}
}

func TestDrawWorkout(t *testing.T) {
	tests := []struct {
		name    string
		overlay Overlay
	}{
		{
			name: "with body and angle",
			overlay: Overlay{
				RepCount:      3,
				Target:        20,
				Stage:         "GOING DOWN",
				Angle:         124,
				HasAngle:      true,
				Knee:          image.Pt(320, 340),
				Body:          pose.StandingLandmarks(),
				MinVisibility: 0.5,
			},
		},
		{
			name: "no body detected",
			overlay: Overlay{
				RepCount: 3,
				Target:   20,
				Stage:    "STANDING UP",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := newFrame()
			defer frame.Close()

			DrawWorkout(&frame, tt.overlay)

			if nonZeroPixels(t, &frame) == 0 {
				t.Error("workout HUD drew nothing")
			}
		})
	}
}

func TestDrawSkeleton_RespectsVisibility(t *testing.T) {
	frame := newFrame()
	defer frame.Close()

	body := pose.StandingLandmarks()
	for i := range body.Points {
		body.Points[i].Visibility = 0.1
	}

	DrawSkeleton(&frame, body, 0.5)

	if got := nonZeroPixels(t, &frame); got != 0 {
		t.Errorf("skeleton drew %d pixels for an invisible body, want 0", got)
	}
}

func TestDrawFinishBanner(t *testing.T) {
	frame := newFrame()
	defer frame.Close()

	DrawFinishBanner(&frame)

	if nonZeroPixels(t, &frame) == 0 {
		t.Error("finish banner drew nothing")
	}
}
