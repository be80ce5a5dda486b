// Package config loads the optional squatcoach YAML configuration file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the session options that live outside the profile store:
// which camera and profile to use and whether audio is on.
type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Session SessionConfig `yaml:"session"`
	Pose    PoseConfig    `yaml:"pose"`
}

type CameraConfig struct {
	// Device is the capture device index.
	Device int `yaml:"device"`
	// Mirror flips frames horizontally so movement feels like a mirror.
	Mirror bool `yaml:"mirror"`
}

type SessionConfig struct {
	// Profile names the exercise profile to load from the store.
	Profile string `yaml:"profile"`
	// Audio enables spoken feedback.
	Audio bool `yaml:"audio"`
}

type PoseConfig struct {
	// MinConfidence and MinTracking override the detector defaults
	// when non-zero.
	MinConfidence float64 `yaml:"min_confidence"`
	MinTracking   float64 `yaml:"min_tracking"`
	// MinVisibility is the per-landmark cutoff below which a joint is
	// treated as missing.
	MinVisibility float64 `yaml:"min_visibility"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Device: 0,
			Mirror: true,
		},
		Session: SessionConfig{
			Profile: "squat",
			Audio:   true,
		},
		Pose: PoseConfig{
			MinConfidence: 0.5,
			MinTracking:   0.5,
			MinVisibility: 0.5,
		},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults are used. Env vars
// use the prefix SQUATCOACH_:
//
//	SQUATCOACH_CAMERA_DEVICE, SQUATCOACH_CAMERA_MIRROR,
//	SQUATCOACH_SESSION_PROFILE, SQUATCOACH_SESSION_AUDIO,
//	SQUATCOACH_POSE_MIN_CONFIDENCE, SQUATCOACH_POSE_MIN_TRACKING,
//	SQUATCOACH_POSE_MIN_VISIBILITY
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SQUATCOACH_CAMERA_DEVICE"); v != "" {
		if device, err := strconv.Atoi(v); err == nil {
			cfg.Camera.Device = device
		}
	}
	if v := os.Getenv("SQUATCOACH_CAMERA_MIRROR"); v != "" {
		if mirror, err := strconv.ParseBool(v); err == nil {
			cfg.Camera.Mirror = mirror
		}
	}
	if v := os.Getenv("SQUATCOACH_SESSION_PROFILE"); v != "" {
		cfg.Session.Profile = v
	}
	if v := os.Getenv("SQUATCOACH_SESSION_AUDIO"); v != "" {
		if audio, err := strconv.ParseBool(v); err == nil {
			cfg.Session.Audio = audio
		}
	}
	if v := os.Getenv("SQUATCOACH_POSE_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pose.MinConfidence = f
		}
	}
	if v := os.Getenv("SQUATCOACH_POSE_MIN_TRACKING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pose.MinTracking = f
		}
	}
	if v := os.Getenv("SQUATCOACH_POSE_MIN_VISIBILITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pose.MinVisibility = f
		}
	}
}

func (c *Config) validate() error {
	if c.Camera.Device < 0 {
		return fmt.Errorf("camera.device must not be negative")
	}
	if c.Session.Profile == "" {
		return fmt.Errorf("session.profile is required")
	}
	if c.Pose.MinConfidence < 0 || c.Pose.MinConfidence > 1 {
		return fmt.Errorf("pose.min_confidence must be within [0, 1]")
	}
	if c.Pose.MinTracking < 0 || c.Pose.MinTracking > 1 {
		return fmt.Errorf("pose.min_tracking must be within [0, 1]")
	}
	if c.Pose.MinVisibility < 0 || c.Pose.MinVisibility > 1 {
		return fmt.Errorf("pose.min_visibility must be within [0, 1]")
	}
	return nil
}
