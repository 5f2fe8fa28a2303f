package state

import "io"

// Demo runs a short listening session ending with a pause on a stopped
// player, which the player refuses.
func Demo(w io.Writer) error {
	player := NewMediaPlayer(w)

	player.PressPlay()  // Starting playback.
	player.PressPause() // Pausing playback.
	player.PressPlay()  // Resuming playback.
	player.PressStop()  // Stopping playback.
	player.PressPause() // Cannot pause. Media is already stopped.
	return nil
}
