// Package hud draws the on-screen interface for the squat coach:
// start screen, workout overlay and finish banner. Drawing only, no logic.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/squatcoach/internal/pose"
)

// UI palette (#6F0D3A, #8DBBC2, #4F362A).
var (
	// cherry wine for headers and hints, soft blue for labels,
	// deep brown for values.
	colorHeader  = color.RGBA{R: 111, G: 13, B: 58}
	colorSubhead = color.RGBA{R: 141, G: 187, B: 194}
	colorValue   = color.RGBA{R: 79, G: 54, B: 42}
	colorBody    = color.RGBA{R: 255, G: 255, B: 255}
	colorMarker  = color.RGBA{R: 255, G: 255, B: 0}
	colorBone    = color.RGBA{R: 141, G: 187, B: 194}
)

const headerText = "SQUAT FORM COACH"

// Overlay carries everything the workout HUD shows for one frame.
type Overlay struct {
	RepCount int
	Target   int
	Stage    string
	Angle    float64
	HasAngle bool
	Knee     image.Point
	Body     *pose.BodyLandmarks
	// MinVisibility hides skeleton segments whose endpoints the
	// detector is not confident about.
	MinVisibility float64
}

// DrawStartScreen renders the welcome overlay on top of the live feed.
func DrawStartScreen(frame *gocv.Mat) {
	h := frame.Rows()

	putCentered(frame, headerText, 70, 1.6, colorHeader, 3)

	startX := 40
	baseY := 130
	gocv.PutText(frame, "WELCOME", image.Pt(startX, baseY), gocv.FontHersheySimplex, 0.95, colorSubhead, 2)

	lines := []string{
		"Stand sideways to the camera, full body visible.",
		"Feet hip-width apart, arms free.",
		"Perform bodyweight squats to about 90 degrees.",
		"You will hear feedback when your form is good.",
	}
	y := baseY + 35
	for _, line := range lines {
		gocv.PutText(frame, line, image.Pt(startX, y), gocv.FontHersheySimplex, 0.75, colorBody, 2)
		y += 28
	}

	putCentered(frame, "PRESS S TO START    TO QUIT -> PRESS Q", h-40, 0.8, colorHeader, 2)
}

// DrawWorkout renders the in-session HUD: skeleton, knee angle, header,
// rep count on the left, stage on the right, quit hint at the bottom.
func DrawWorkout(frame *gocv.Mat, overlay Overlay) {
	w := frame.Cols()
	h := frame.Rows()

	if overlay.Body != nil {
		DrawSkeleton(frame, overlay.Body, overlay.MinVisibility)
	}

	if overlay.HasAngle {
		gocv.Circle(frame, overlay.Knee, 8, colorMarker, -1)
		angleText := fmt.Sprintf("%d deg", int(overlay.Angle))
		gocv.PutText(frame, angleText, image.Pt(overlay.Knee.X+10, overlay.Knee.Y-10),
			gocv.FontHersheySimplex, 0.7, colorHeader, 2)
	}

	putCentered(frame, headerText, 60, 1.4, colorHeader, 3)

	leftX := 40
	baseY := 150
	rightMargin := 40

	// Left column: rep count
	gocv.PutText(frame, "REP COUNT", image.Pt(leftX, baseY), gocv.FontHersheySimplex, 0.75, colorSubhead, 2)
	repText := fmt.Sprintf("%d/%d", overlay.RepCount, overlay.Target)
	gocv.PutText(frame, repText, image.Pt(leftX, baseY+45), gocv.FontHersheySimplex, 1.3, colorValue, 3)

	// Right column: stage, right-aligned
	putRightAligned(frame, "STATE", w-rightMargin, baseY, 0.75, colorSubhead, 2)
	putRightAligned(frame, overlay.Stage, w-rightMargin, baseY+45, 1.3, colorValue, 3)

	gocv.PutText(frame, "TO QUIT -> PRESS Q", image.Pt(40, h-40), gocv.FontHersheySimplex, 0.75, colorHeader, 2)
}

// DrawFinishBanner renders the centered end-of-session message.
func DrawFinishBanner(frame *gocv.Mat) {
	putCentered(frame, "TARGET REACHED, AMAZING WORK!", frame.Rows()/2, 1.2, colorSubhead, 3)
}

// DrawSkeleton draws the detected body as lines between landmark pairs,
// skipping segments with a low-visibility endpoint.
func DrawSkeleton(frame *gocv.Mat, body *pose.BodyLandmarks, minVisibility float64) {
	for _, conn := range pose.Connections {
		a := body.Points[conn[0]]
		b := body.Points[conn[1]]
		if a.Visibility < minVisibility || b.Visibility < minVisibility {
			continue
		}

		gocv.Line(frame,
			image.Pt(int(a.X), int(a.Y)),
			image.Pt(int(b.X), int(b.Y)),
			colorBone, 2)
	}

	for i, p := range body.Points {
		if p.Visibility < minVisibility {
			continue
		}
		// One dot per joint; skip the dense face detail points.
		if i > pose.Nose && i < pose.LeftShoulder {
			continue
		}
		gocv.Circle(frame, image.Pt(int(p.X), int(p.Y)), 3, colorBody, -1)
	}
}

// putCentered draws text horizontally centered at the given baseline y.
func putCentered(frame *gocv.Mat, text string, y int, scale float64, c color.RGBA, thickness int) {
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)
	x := (frame.Cols() - size.X) / 2
	gocv.PutText(frame, text, image.Pt(x, y), gocv.FontHersheySimplex, scale, c, thickness)
}

// putRightAligned draws text so that it ends at the given x coordinate.
func putRightAligned(frame *gocv.Mat, text string, right, y int, scale float64, c color.RGBA, thickness int) {
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)
	gocv.PutText(frame, text, image.Pt(right-size.X, y), gocv.FontHersheySimplex, scale, c, thickness)
}
