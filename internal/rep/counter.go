// Package rep provides squat repetition counting over a stream of knee angles.
package rep

import "fmt"

// State represents the phase of the squat cycle.
type State string

const (
	// StateUp is the standing phase, knee close to fully extended.
	StateUp State = "up"
	// StateDown is the squatted phase, knee flexed past the depth threshold.
	StateDown State = "down"
)

// Default counter settings, in degrees and reps.
const (
	DefaultDownThreshold     = 100.0
	DefaultUpThreshold       = 160.0
	DefaultTargetReps        = 20
	DefaultMilestoneInterval = 5
)

// Config holds the thresholds and goals for a counting session.
//
// DownThreshold and UpThreshold form a hysteresis band: the state only
// flips to down at or below DownThreshold and back to up at or above
// UpThreshold, so angle noise between the two can never double-count.
type Config struct {
	// DownThreshold is the knee angle (degrees) at or below which the
	// squat is considered deep enough.
	DownThreshold float64

	// UpThreshold is the knee angle (degrees) at or above which the user
	// is considered standing again. Must be greater than DownThreshold.
	UpThreshold float64

	// TargetReps is the rep count at which the session completes.
	TargetReps int

	// MilestoneInterval emits progress feedback every N reps below the
	// target. Zero disables milestones.
	MilestoneInterval int
}

// DefaultConfig returns a Config with the standard squat thresholds.
func DefaultConfig() Config {
	return Config{
		DownThreshold:     DefaultDownThreshold,
		UpThreshold:       DefaultUpThreshold,
		TargetReps:        DefaultTargetReps,
		MilestoneInterval: DefaultMilestoneInterval,
	}
}

// Counter counts squat repetitions from a per-frame knee angle signal.
//
// A rep is counted on the down-to-up transition: the user must first
// reach a qualifying depth, then return above the up threshold. Strict
// up-down-up alternation means a transient dip that never registers as
// down can never count.
//
// Counter is not safe for concurrent use; the session loop owns it.
type Counter struct {
	config Config
	state  State
	count  int
	done   bool
}

// NewCounter creates a Counter in the up state.
// Malformed configuration is rejected here so no frame is ever processed
// against inverted thresholds.
func NewCounter(config Config) (*Counter, error) {
	if config.DownThreshold >= config.UpThreshold {
		return nil, fmt.Errorf("down threshold %.1f must be below up threshold %.1f",
			config.DownThreshold, config.UpThreshold)
	}
	if config.TargetReps <= 0 {
		return nil, fmt.Errorf("target reps must be positive, got %d", config.TargetReps)
	}
	if config.MilestoneInterval < 0 {
		return nil, fmt.Errorf("milestone interval must not be negative, got %d", config.MilestoneInterval)
	}

	return &Counter{
		config: config,
		state:  StateUp,
	}, nil
}

// Observe advances the state machine with one frame's knee angle and
// returns the events produced by that frame, in emission order. Frames
// with no valid angle must simply not be observed; the counter holds
// its state.
//
// At most one rep is counted per call. Once the target is reached the
// state keeps tracking for display but no further reps are counted and
// no further events are emitted.
func (c *Counter) Observe(angle float64) []Event {
	switch c.state {
	case StateUp:
		if angle <= c.config.DownThreshold {
			c.state = StateDown
		}
		return nil

	case StateDown:
		if angle < c.config.UpThreshold {
			return nil
		}
		c.state = StateUp

		if c.done {
			return nil
		}

		c.count++
		events := []Event{{Kind: KindRepCompleted, Count: c.count, Target: c.config.TargetReps}}

		if c.count >= c.config.TargetReps {
			c.done = true
			events = append(events, Event{Kind: KindSessionComplete, Count: c.count, Target: c.config.TargetReps})
			return events
		}

		if c.config.MilestoneInterval > 0 && c.count%c.config.MilestoneInterval == 0 {
			events = append(events, Event{Kind: KindMilestone, Count: c.count, Target: c.config.TargetReps})
		}
		return events
	}

	return nil
}

// State returns the current phase of the squat cycle.
func (c *Counter) State() State {
	return c.state
}

// Count returns the number of completed repetitions.
func (c *Counter) Count() int {
	return c.count
}

// Target returns the configured session target.
func (c *Counter) Target() int {
	return c.config.TargetReps
}

// Done reports whether the target has been reached.
func (c *Counter) Done() bool {
	return c.done
}

// Reset restores the counter to its initial state for a new session.
func (c *Counter) Reset() {
	c.state = StateUp
	c.count = 0
	c.done = false
}
