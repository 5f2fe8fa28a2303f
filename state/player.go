package state

import (
	"fmt"
	"io"
)

// playerState is the per-mode behaviour. States receive the player so a
// transition can swap in the successor mode.
type playerState interface {
	play(p *MediaPlayer)
	pause(p *MediaPlayer)
	stop(p *MediaPlayer)
	name() string
}

// MediaPlayer is the context: three buttons, one current mode, and not a
// single mode conditional.
type MediaPlayer struct {
	w     io.Writer
	state playerState
}

// NewMediaPlayer returns a player in the stopped state, reporting to w.
func NewMediaPlayer(w io.Writer) *MediaPlayer {
	return &MediaPlayer{w: w, state: stoppedState{}}
}

// PressPlay forwards the play button to the current state.
func (p *MediaPlayer) PressPlay() { p.state.play(p) }

// PressPause forwards the pause button to the current state.
func (p *MediaPlayer) PressPause() { p.state.pause(p) }

// PressStop forwards the stop button to the current state.
func (p *MediaPlayer) PressStop() { p.state.stop(p) }

// State reports the current mode: "stopped", "playing" or "paused".
func (p *MediaPlayer) State() string { return p.state.name() }

type stoppedState struct{}

func (stoppedState) name() string { return "stopped" }

func (stoppedState) play(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Starting playback.")
	p.state = playingState{}
}

func (stoppedState) pause(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Cannot pause. Media is already stopped.")
}

func (stoppedState) stop(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Already stopped.")
}

type playingState struct{}

func (playingState) name() string { return "playing" }

func (playingState) play(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Already playing.")
}

func (playingState) pause(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Pausing playback.")
	p.state = pausedState{}
}

func (playingState) stop(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Stopping playback.")
	p.state = stoppedState{}
}

type pausedState struct{}

func (pausedState) name() string { return "paused" }

func (pausedState) play(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Resuming playback.")
	p.state = playingState{}
}

func (pausedState) pause(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Already paused.")
}

func (pausedState) stop(p *MediaPlayer) {
	fmt.Fprintln(p.w, "Stopping playback.")
	p.state = stoppedState{}
}
