package app

import (
	"image"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/squatcoach/internal/hud"
	"github.com/ayusman/squatcoach/internal/pose"
	"github.com/ayusman/squatcoach/internal/rep"
)

// Run drives the session from the start screen to the finish banner.
// It owns the window loop: capture frame, process, draw, poll keys.
// The loop ends when the user quits, the frame source is exhausted, or
// the finish banner has been held long enough.
//
// Frame processing is fully sequential; the only asynchronous side
// effect is speech dispatch inside the coach, which never blocks here.
func (a *App) Run(window *gocv.Window) error {
	if err := a.camera.Open(); err != nil {
		return err
	}
	defer a.Close()

	a.coach.Intro()
	log.Println("Session started")

	for {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			// End of stream (camera unplugged or mock exhausted).
			log.Printf("Frame source ended: %v", err)
			return nil
		}

		if a.config.Mirror {
			gocv.Flip(*frame, frame, 1)
		}

		a.Step(frame)

		window.IMShow(*frame)
		frame.Close()

		if a.mode == modeDone && a.now().Sub(a.finishedAt) > FinishHold {
			return nil
		}

		key := window.WaitKey(a.frameDelayMs())
		switch key {
		case 'q', 'Q':
			log.Println("Session quit by user")
			return nil
		case 's', 'S':
			if a.mode == modeStart {
				a.StartWorkout()
			}
		}
	}
}

// StartWorkout switches from the start screen into tracking mode.
func (a *App) StartWorkout() {
	a.mode = modeWorkout
	a.counter.Reset()
	a.motion.Reset()
	a.active = true
	a.lastMotion = a.now()
	a.coach.SessionStart()
	a.camera.SetFPS(ActiveFPS)
	log.Println("Workout tracking started")
}

// Step processes one frame in place: pose detection, rep counting,
// feedback and HUD drawing, according to the current mode.
func (a *App) Step(frame *gocv.Mat) {
	switch a.mode {
	case modeStart:
		hud.DrawStartScreen(frame)

	case modeWorkout:
		a.stepWorkout(frame)

	case modeDone:
		hud.DrawWorkout(frame, a.overlay(nil, 0, false))
		hud.DrawFinishBanner(frame)
	}
}

// stepWorkout is the per-frame tracking path: motion gate, detect,
// knee angle, state machine, feedback, HUD.
func (a *App) stepWorkout(frame *gocv.Mat) {
	now := a.now()

	motionDetected, _ := a.motion.Detect(frame)
	if motionDetected {
		a.lastMotion = now
		if !a.active {
			a.active = true
			a.camera.SetFPS(ActiveFPS)
			log.Println("Motion detected, resuming tracking")
		}
	} else if a.active && now.Sub(a.lastMotion) > IdleTimeout {
		// Nobody is moving; save the pose subprocess the work.
		a.active = false
		a.camera.SetFPS(IdleFPS)
		log.Println("Scene still, pausing pose detection")
	}

	if !a.active {
		hud.DrawWorkout(frame, a.overlay(nil, 0, false))
		return
	}

	body, err := a.detector.Detect(frame)
	if err != nil {
		log.Printf("Error detecting pose: %v", err)
		hud.DrawWorkout(frame, a.overlay(nil, 0, false))
		return
	}

	angle, ok := 0.0, false
	if body != nil {
		angle, ok = pose.KneeAngle(body, a.config.Side, a.config.Pose.MinVisibility)
	}

	// A frame without a usable angle holds the current state; the
	// counter is only advanced on valid angles.
	if ok {
		events := a.counter.Observe(angle)
		a.coach.Announce(events)

		for _, ev := range events {
			if ev.Kind == rep.KindSessionComplete {
				a.mode = modeDone
				a.finishedAt = now
				log.Printf("Target reached: %d reps", ev.Count)
			}
		}
	}

	hud.DrawWorkout(frame, a.overlay(body, angle, ok))
	if a.mode == modeDone {
		hud.DrawFinishBanner(frame)
	}
}

// overlay assembles the HUD state for the current frame.
func (a *App) overlay(body *pose.BodyLandmarks, angle float64, hasAngle bool) hud.Overlay {
	o := hud.Overlay{
		RepCount:      a.counter.Count(),
		Target:        a.counter.Target(),
		Stage:         a.stageLabel(angle, hasAngle),
		Angle:         angle,
		HasAngle:      hasAngle,
		Body:          body,
		MinVisibility: a.config.Pose.MinVisibility,
	}

	if body != nil {
		_, kneeIdx, _ := a.config.Side.HipKneeAnkle()
		knee := body.Points[kneeIdx]
		o.Knee = image.Pt(int(knee.X), int(knee.Y))
	}

	return o
}

// stageLabel maps the counter state to the HUD stage text. While up
// with a partially bent knee the label reads as a descent in progress.
func (a *App) stageLabel(angle float64, hasAngle bool) string {
	switch a.counter.State() {
	case rep.StateDown:
		return "COMING UP"
	default:
		if hasAngle && angle < a.config.Rep.UpThreshold {
			return "GOING DOWN"
		}
		return "STANDING UP"
	}
}

// frameDelayMs converts the current capture FPS into the WaitKey poll
// interval.
func (a *App) frameDelayMs() int {
	fps := a.camera.FPS()
	if fps <= 0 {
		fps = ActiveFPS
	}
	return int(time.Second.Milliseconds()) / fps
}
