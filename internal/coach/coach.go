package coach

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ayusman/squatcoach/internal/rep"
)

// DefaultCooldown is the minimum gap between utterances so consecutive
// reps don't stack overlapping speech.
const DefaultCooldown = 2 * time.Second

// maxPhraseAttempts bounds the reselection loop that avoids repeating
// the previous praise phrase; with a pool of one we accept the repeat.
const maxPhraseAttempts = 4

// defaultPraise is the pool of short praise lines spoken after a rep.
var defaultPraise = []string{
	"Well done.",
	"That's it.",
	"There you go.",
	"Looks good.",
	"Nice depth.",
	"Form's looking good.",
}

// Coach turns rep counter events into spoken feedback.
//
// All events produced by a single frame are folded into one sentence so
// the final rep of a milestone reads naturally ("Nice depth. That's 10
// reps.") instead of racing two utterances against the cooldown.
type Coach struct {
	speaker    Speaker
	cooldown   time.Duration
	phrases    []string
	lastSpoken time.Time
	lastPhrase string

	// injectable for tests
	now func() time.Time
	rng *rand.Rand
}

// New creates a Coach speaking through the given speaker. A cooldown of
// zero or below falls back to DefaultCooldown.
func New(speaker Speaker, cooldown time.Duration) *Coach {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return &Coach{
		speaker:  speaker,
		cooldown: cooldown,
		phrases:  defaultPraise,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Intro speaks the welcome message shown with the start screen.
func (c *Coach) Intro() {
	c.say("Welcome to the Squat Form Coach. " +
		"Stand sideways to the camera, feet hip width apart. " +
		"When you're ready, press S to start.")
}

// SessionStart speaks the confirmation after the user starts tracking.
func (c *Coach) SessionStart() {
	c.say("Starting squat tracking. Let's go.")
}

// Announce converts the events of one frame into at most one utterance.
// If the cooldown since the previous utterance has not elapsed the whole
// announcement is dropped, not queued.
func (c *Coach) Announce(events []rep.Event) {
	if len(events) == 0 {
		return
	}

	var parts []string
	for _, ev := range events {
		switch ev.Kind {
		case rep.KindRepCompleted:
			parts = append(parts, c.pickPhrase())
		case rep.KindMilestone:
			parts = append(parts, fmt.Sprintf("That's %d reps. %d to go.", ev.Count, ev.Target-ev.Count))
		case rep.KindSessionComplete:
			parts = append(parts, "Target reached. Amazing work. Workout complete.")
		}
	}

	if len(parts) == 0 {
		return
	}
	c.say(strings.Join(parts, " "))
}

// say dispatches one utterance unless the cooldown is still running.
func (c *Coach) say(text string) {
	now := c.now()
	if !c.lastSpoken.IsZero() && now.Sub(c.lastSpoken) < c.cooldown {
		return
	}
	c.lastSpoken = now
	c.speaker.Speak(text)
}

// pickPhrase selects a praise phrase, avoiding an immediate repeat of
// the previous one when the pool allows it.
func (c *Coach) pickPhrase() string {
	if len(c.phrases) == 0 {
		return ""
	}

	phrase := c.phrases[c.rng.Intn(len(c.phrases))]
	for attempt := 0; phrase == c.lastPhrase && len(c.phrases) > 1; attempt++ {
		if attempt >= maxPhraseAttempts {
			// Random selection keeps colliding; step to the next
			// phrase in the pool instead.
			for i, p := range c.phrases {
				if p == phrase {
					phrase = c.phrases[(i+1)%len(c.phrases)]
					break
				}
			}
			break
		}
		phrase = c.phrases[c.rng.Intn(len(c.phrases))]
	}

	c.lastPhrase = phrase
	return phrase
}
