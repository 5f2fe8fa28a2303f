// Package state demonstrates the State pattern: an object whose behaviour
// changes with its mode, without a single mode conditional in sight.
//
// What
//
//   - MediaPlayer is the context. It owns a current state and delegates
//     every button press (PressPlay, PressPause, PressStop) to it.
//   - stopped, playing and paused are the states. Each reacts to the three
//     buttons in its own way and, on a transition, swaps the player's state
//     for the next one.
//   - State reports the current mode name, so callers (and tests) can
//     observe transitions without parsing output.
//
// Why
//
//	The switch-statement version of a player grows a three-way conditional
//	in every method, and each new mode edits all of them. Here each mode is
//	one small type; the transition table is spread across the states but
//	every cell of it lives exactly once.
//
// Transitions
//
//	stopped --play--> playing   "Starting playback."
//	playing --pause-> paused    "Pausing playback."
//	paused  --play--> playing   "Resuming playback."
//	playing --stop--> stopped   "Stopping playback."
//	paused  --stop--> stopped   "Stopping playback."
//
// Everything else is a reported no-op that leaves the mode untouched:
// "Already playing.", "Already paused.", "Already stopped.", and the
// stopped player's refusal "Cannot pause. Media is already stopped."
//
// Usage
//
//	player := state.NewMediaPlayer(os.Stdout)
//	player.PressPlay()  // Starting playback.
//	player.PressPause() // Pausing playback.
package state
