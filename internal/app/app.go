// Package app provides the main application logic for the squat coach session.
package app

import (
	"log"
	"time"

	"github.com/ayusman/squatcoach/internal/capture"
	"github.com/ayusman/squatcoach/internal/coach"
	"github.com/ayusman/squatcoach/internal/pose"
	"github.com/ayusman/squatcoach/internal/rep"
)

// Session timing constants.
const (
	// IdleFPS is the frame rate while the scene is still (nobody moving).
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeout is how long the scene must be still before dropping
	// to idle mode and skipping pose detection.
	IdleTimeout = 2 * time.Second
	// FinishHold keeps the final banner on screen long enough for the
	// closing message to play out.
	FinishHold = 5 * time.Second
)

// mode is the phase of the session interface.
type mode int

const (
	modeStart mode = iota
	modeWorkout
	modeDone
)

// Config holds configuration options for the session.
type Config struct {
	CameraID     int
	Mirror       bool
	MotionThresh float64

	Side pose.Side
	Pose pose.Config
	Rep  rep.Config

	SpeechCooldown time.Duration

	// Camera and Speaker override the defaults; tests inject mocks here.
	Camera  capture.Camera
	Speaker coach.Speaker
}

// App orchestrates one workout session: camera, pose detection, rep
// counting, HUD and spoken feedback.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector pose.Detector
	counter  *rep.Counter
	coach    *coach.Coach

	mode       mode
	active     bool
	lastMotion time.Time
	finishedAt time.Time

	// injectable clock for tests
	now func() time.Time
}

// New creates a new App instance with the given configuration.
// Threshold validation happens here, before any frame is processed.
func New(config Config) (*App, error) {
	counter, err := rep.NewCounter(config.Rep)
	if err != nil {
		return nil, err
	}

	if !config.Side.Valid() {
		config.Side = pose.SideLeft
	}

	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	camera := config.Camera
	if camera == nil {
		camera = capture.NewCamera(config.CameraID)
	}

	speaker := config.Speaker
	if speaker == nil {
		speaker = coach.NewCommandSpeaker()
	}

	a := &App{
		config:  config,
		camera:  camera,
		motion:  capture.NewMotionDetector(motionThreshold),
		counter: counter,
		coach:   coach.New(speaker, config.SpeechCooldown),
		mode:    modeStart,
		now:     time.Now,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := pose.NewMediaPipeDetector(config.Pose); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = pose.NewMockDetector()
	}

	return a, nil
}

// SetDetector sets the pose detector implementation to use.
func (a *App) SetDetector(d pose.Detector) {
	a.detector = d
}

// Counter returns the session's rep counter.
func (a *App) Counter() *rep.Counter {
	return a.counter
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Coach returns the feedback coach.
func (a *App) Coach() *coach.Coach {
	return a.coach
}

// Close releases the camera, motion detector and pose detector.
func (a *App) Close() {
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
}
