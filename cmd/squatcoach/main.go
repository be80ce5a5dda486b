package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/ayusman/squatcoach/internal/app"
	"github.com/ayusman/squatcoach/internal/coach"
	"github.com/ayusman/squatcoach/internal/config"
	"github.com/ayusman/squatcoach/internal/pose"
	"github.com/ayusman/squatcoach/internal/rep"
	"github.com/ayusman/squatcoach/internal/store"
)

const windowName = "Squat Form Coach"

func main() {
	fmt.Println("Squat Form Coach")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".squatcoach")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "squatcoach.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	profile, err := st.Profiles().GetByName(cfg.Session.Profile)
	if err != nil {
		log.Fatalf("Failed to load profile %q: %v", cfg.Session.Profile, err)
	}

	a, err := app.New(appConfig(cfg, profile))
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}

	window := gocv.NewWindow(windowName)
	defer window.Close()
	window.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)

	fmt.Printf("Tracking %q on camera %d, target %d reps\n",
		profile.Name, cfg.Camera.Device, profile.TargetReps)

	if err := a.Run(window); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

// appConfig assembles the session configuration from the config file
// and the stored exercise profile.
func appConfig(cfg *config.Config, profile *store.Profile) app.Config {
	poseConfig := pose.DefaultConfig()
	if cfg.Pose.MinConfidence > 0 {
		poseConfig.MinConfidence = cfg.Pose.MinConfidence
	}
	if cfg.Pose.MinTracking > 0 {
		poseConfig.MinTrackingConf = cfg.Pose.MinTracking
	}
	if cfg.Pose.MinVisibility > 0 {
		poseConfig.MinVisibility = cfg.Pose.MinVisibility
	}

	c := app.Config{
		CameraID: cfg.Camera.Device,
		Mirror:   cfg.Camera.Mirror,
		Side:     pose.Side(profile.Side),
		Pose:     poseConfig,
		Rep: rep.Config{
			DownThreshold:     profile.DownThreshold,
			UpThreshold:       profile.UpThreshold,
			TargetReps:        profile.TargetReps,
			MilestoneInterval: profile.MilestoneInterval,
		},
		SpeechCooldown: profile.SpeechCooldown(),
	}

	if !cfg.Session.Audio {
		c.Speaker = coach.NullSpeaker{}
	}

	return c
}
