package state_test

import (
	"os"

	"github.com/MSREDDY199/Design-Patterns/state"
)

func ExampleDemo() {
	_ = state.Demo(os.Stdout)

	// Output:
	// Starting playback.
	// Pausing playback.
	// Resuming playback.
	// Stopping playback.
	// Cannot pause. Media is already stopped.
}

// ExampleMediaPlayer shows the same button reaching different behaviour in
// different modes.
func ExampleMediaPlayer() {
	player := state.NewMediaPlayer(os.Stdout)

	player.PressPlay()
	player.PressPlay() // same button, different mode

	// Output:
	// Starting playback.
	// Already playing.
}
