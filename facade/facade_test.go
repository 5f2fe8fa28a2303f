package facade_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSREDDY199/Design-Patterns/facade"
)

// The whole point of the facade is the fixed sequence, so the test pins
// every line in order.
func TestWatchMovie_FullSequence(t *testing.T) {
	var sb strings.Builder
	facade.NewHomeTheater(&sb).WatchMovie()

	want := []string{
		"Getting ready to watch a movie...",
		"TV is turned on",
		"TV channel set to DVD",
		"DVD Player is turned on",
		"Sound System is turned on",
		"Sound System volume set to 20",
		"Projector is turned on",
		"DVD is playing",
		"Movie is now playing!",
	}
	got := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "line %d", i)
	}
}

// Devices remain directly usable without the facade.
func TestDevices_DirectUse(t *testing.T) {
	var sb strings.Builder
	sound := facade.NewSoundSystem(&sb)
	sound.TurnOn()
	sound.SetVolume(11)

	assert.Equal(t, "Sound System is turned on\nSound System volume set to 11\n", sb.String())
}
