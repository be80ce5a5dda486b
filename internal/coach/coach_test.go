package coach

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/squatcoach/internal/rep"
)

// recordingSpeaker captures utterances for assertions.
type recordingSpeaker struct {
	spoken []string
}

func (s *recordingSpeaker) Speak(text string) {
	s.spoken = append(s.spoken, text)
}

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestCoach(speaker Speaker, cooldown time.Duration) (*Coach, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := New(speaker, cooldown)
	c.now = clock.now
	c.rng = rand.New(rand.NewSource(1))
	return c, clock
}

func repCompleted(count int) []rep.Event {
	return []rep.Event{{Kind: rep.KindRepCompleted, Count: count, Target: 20}}
}

func TestCoach_AnnouncesRep(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, _ := newTestCoach(speaker, time.Second)

	c.Announce(repCompleted(1))

	if len(speaker.spoken) != 1 {
		t.Fatalf("got %d utterances, want 1", len(speaker.spoken))
	}

	found := false
	for _, p := range defaultPraise {
		if speaker.spoken[0] == p {
			found = true
		}
	}
	if !found {
		t.Errorf("utterance %q is not from the praise pool", speaker.spoken[0])
	}
}

func TestCoach_CooldownDropsUtterances(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, clock := newTestCoach(speaker, 2*time.Second)

	c.Announce(repCompleted(1))
	clock.advance(500 * time.Millisecond)
	c.Announce(repCompleted(2)) // inside cooldown, dropped
	clock.advance(1900 * time.Millisecond)
	c.Announce(repCompleted(3)) // 2.4s after first, spoken

	if len(speaker.spoken) != 2 {
		t.Fatalf("got %d utterances, want 2 (middle one dropped): %v",
			len(speaker.spoken), speaker.spoken)
	}
}

func TestCoach_CooldownIsNotAQueue(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, clock := newTestCoach(speaker, 2*time.Second)

	c.Announce(repCompleted(1))
	c.Announce(repCompleted(2))
	c.Announce(repCompleted(3))

	// Dropped announcements must not play later.
	clock.advance(time.Minute)
	if len(speaker.spoken) != 1 {
		t.Fatalf("got %d utterances, want 1: %v", len(speaker.spoken), speaker.spoken)
	}
}

func TestCoach_NoImmediatePhraseRepeat(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, clock := newTestCoach(speaker, time.Second)

	var last string
	for i := 1; i <= 50; i++ {
		c.Announce(repCompleted(i))
		clock.advance(2 * time.Second)

		got := speaker.spoken[len(speaker.spoken)-1]
		if got == last {
			t.Fatalf("phrase %q repeated back to back at rep %d", got, i)
		}
		last = got
	}
}

func TestCoach_SinglePhrasePoolTerminates(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, clock := newTestCoach(speaker, time.Second)
	c.phrases = []string{"Well done."}

	// With a pool of one the repeat is accepted rather than looping.
	c.Announce(repCompleted(1))
	clock.advance(2 * time.Second)
	c.Announce(repCompleted(2))

	if len(speaker.spoken) != 2 {
		t.Fatalf("got %d utterances, want 2", len(speaker.spoken))
	}
	for _, s := range speaker.spoken {
		if s != "Well done." {
			t.Errorf("utterance = %q, want %q", s, "Well done.")
		}
	}
}

func TestCoach_MilestoneFoldedIntoOneUtterance(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, _ := newTestCoach(speaker, time.Second)

	c.Announce([]rep.Event{
		{Kind: rep.KindRepCompleted, Count: 10, Target: 20},
		{Kind: rep.KindMilestone, Count: 10, Target: 20},
	})

	if len(speaker.spoken) != 1 {
		t.Fatalf("got %d utterances, want 1: %v", len(speaker.spoken), speaker.spoken)
	}
	if !strings.Contains(speaker.spoken[0], "That's 10 reps. 10 to go.") {
		t.Errorf("utterance %q missing milestone progress", speaker.spoken[0])
	}
}

func TestCoach_SessionComplete(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, _ := newTestCoach(speaker, time.Second)

	c.Announce([]rep.Event{
		{Kind: rep.KindRepCompleted, Count: 20, Target: 20},
		{Kind: rep.KindSessionComplete, Count: 20, Target: 20},
	})

	if len(speaker.spoken) != 1 {
		t.Fatalf("got %d utterances, want 1: %v", len(speaker.spoken), speaker.spoken)
	}
	if !strings.Contains(speaker.spoken[0], "Workout complete.") {
		t.Errorf("utterance %q missing closing message", speaker.spoken[0])
	}
}

func TestCoach_EmptyEventsSilent(t *testing.T) {
	speaker := &recordingSpeaker{}
	c, _ := newTestCoach(speaker, time.Second)

	c.Announce(nil)
	c.Announce([]rep.Event{})

	if len(speaker.spoken) != 0 {
		t.Errorf("got %d utterances for empty events, want 0", len(speaker.spoken))
	}
}

func TestNullSpeaker(t *testing.T) {
	// Must simply not panic.
	NullSpeaker{}.Speak("anything")
}
