// Package coach provides spoken workout feedback with rate limiting.
package coach

import (
	"log"
	"os/exec"
)

// Speaker issues an utterance without blocking the caller.
// Implementations are fire-and-forget; failures are swallowed.
type Speaker interface {
	Speak(text string)
}

// ttsCommands lists platform text-to-speech commands in probe order.
// macOS ships `say`; Linux desktops usually have espeak or speech-dispatcher.
var ttsCommands = []struct {
	name string
	args []string
}{
	{name: "say"},
	{name: "espeak"},
	{name: "spd-say", args: []string{"--wait"}},
	{name: "flite", args: []string{"-t"}},
}

// CommandSpeaker speaks by shelling out to the platform's text-to-speech
// command. Each utterance runs on its own goroutine so the frame loop is
// never blocked while audio plays.
type CommandSpeaker struct {
	command string
	args    []string
}

// NewCommandSpeaker probes for an available text-to-speech command.
// If none is found the speaker is a silent no-op; the rest of the app
// keeps working without audio.
func NewCommandSpeaker() *CommandSpeaker {
	for _, c := range ttsCommands {
		if path, err := exec.LookPath(c.name); err == nil {
			return &CommandSpeaker{command: path, args: c.args}
		}
	}

	log.Println("No text-to-speech command found, spoken feedback disabled")
	return &CommandSpeaker{}
}

// Available reports whether a text-to-speech command was found.
func (s *CommandSpeaker) Available() bool {
	return s.command != ""
}

// Speak runs the text-to-speech command in the background.
// Errors are logged and otherwise ignored; speech has no feedback
// channel into the session.
func (s *CommandSpeaker) Speak(text string) {
	if s.command == "" {
		return
	}

	args := append(append([]string(nil), s.args...), text)
	go func() {
		if err := exec.Command(s.command, args...).Run(); err != nil {
			log.Printf("Speech command failed: %v", err)
		}
	}()
}

// NullSpeaker is a Speaker that discards all utterances.
type NullSpeaker struct{}

// Speak does nothing.
func (NullSpeaker) Speak(text string) {}
