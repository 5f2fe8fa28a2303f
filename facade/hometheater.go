package facade

import (
	"fmt"
	"io"
)

// TV is a subsystem device.
type TV struct {
	w io.Writer
}

// NewTV returns a TV reporting to w.
func NewTV(w io.Writer) *TV { return &TV{w: w} }

// TurnOn powers the TV up.
func (t *TV) TurnOn() { fmt.Fprintln(t.w, "TV is turned on") }

// SetInputChannel switches the TV input to the DVD channel.
func (t *TV) SetInputChannel() { fmt.Fprintln(t.w, "TV channel set to DVD") }

// DVDPlayer is a subsystem device.
type DVDPlayer struct {
	w io.Writer
}

// NewDVDPlayer returns a DVD player reporting to w.
func NewDVDPlayer(w io.Writer) *DVDPlayer { return &DVDPlayer{w: w} }

// TurnOn powers the player up.
func (d *DVDPlayer) TurnOn() { fmt.Fprintln(d.w, "DVD Player is turned on") }

// Play starts the disc.
func (d *DVDPlayer) Play() { fmt.Fprintln(d.w, "DVD is playing") }

// SoundSystem is a subsystem device.
type SoundSystem struct {
	w io.Writer
}

// NewSoundSystem returns a sound system reporting to w.
func NewSoundSystem(w io.Writer) *SoundSystem { return &SoundSystem{w: w} }

// TurnOn powers the amplifier up.
func (s *SoundSystem) TurnOn() { fmt.Fprintln(s.w, "Sound System is turned on") }

// SetVolume sets the output level.
func (s *SoundSystem) SetVolume(level int) {
	fmt.Fprintf(s.w, "Sound System volume set to %d\n", level)
}

// Projector is a subsystem device.
type Projector struct {
	w io.Writer
}

// NewProjector returns a projector reporting to w.
func NewProjector(w io.Writer) *Projector { return &Projector{w: w} }

// TurnOn powers the projector up.
func (p *Projector) TurnOn() { fmt.Fprintln(p.w, "Projector is turned on") }

// HomeTheater fronts the whole device set with intention-level calls.
type HomeTheater struct {
	w         io.Writer
	tv        *TV
	dvd       *DVDPlayer
	sound     *SoundSystem
	projector *Projector
}

// NewHomeTheater assembles the full subsystem reporting to w. Callers never
// see the individual devices unless they build them separately.
func NewHomeTheater(w io.Writer) *HomeTheater {
	return &HomeTheater{
		w:         w,
		tv:        NewTV(w),
		dvd:       NewDVDPlayer(w),
		sound:     NewSoundSystem(w),
		projector: NewProjector(w),
	}
}

// WatchMovie runs the whole power-on procedure in its one working order:
// announce, TV on and switched to DVD, player on, sound on at volume 20,
// projector on, play, confirm.
func (h *HomeTheater) WatchMovie() {
	fmt.Fprintln(h.w, "Getting ready to watch a movie...")
	h.tv.TurnOn()
	h.tv.SetInputChannel()
	h.dvd.TurnOn()
	h.sound.TurnOn()
	h.sound.SetVolume(20)
	h.projector.TurnOn()
	h.dvd.Play()
	fmt.Fprintln(h.w, "Movie is now playing!")
}
