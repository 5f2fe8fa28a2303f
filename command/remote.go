package command

import (
	"fmt"
	"io"
)

// Command packages one action together with the action that reverses it.
type Command interface {
	// Execute performs the action.
	Execute()
	// Undo reverses a prior Execute.
	Undo()
}

// Light is the receiver: the device the commands actually operate.
type Light struct {
	w io.Writer
}

// NewLight returns a light reporting to w.
func NewLight(w io.Writer) *Light { return &Light{w: w} }

// TurnOn switches the light on.
func (l *Light) TurnOn() { fmt.Fprintln(l.w, "The light is ON") }

// TurnOff switches the light off.
func (l *Light) TurnOff() { fmt.Fprintln(l.w, "The light is OFF") }

type turnOnCommand struct {
	light *Light
}

// NewTurnOnCommand wraps switching the light on; its inverse switches off.
func NewTurnOnCommand(light *Light) Command { return turnOnCommand{light: light} }

func (c turnOnCommand) Execute() { c.light.TurnOn() }
func (c turnOnCommand) Undo()    { c.light.TurnOff() }

type turnOffCommand struct {
	light *Light
}

// NewTurnOffCommand wraps switching the light off; its inverse switches on.
func NewTurnOffCommand(light *Light) Command { return turnOffCommand{light: light} }

func (c turnOffCommand) Execute() { c.light.TurnOff() }
func (c turnOffCommand) Undo()    { c.light.TurnOn() }

// RemoteControl is the invoker. It fires commands without inspecting them
// and keeps the two history stacks that make undo and redo possible.
type RemoteControl struct {
	w         io.Writer
	undoStack []Command
	redoStack []Command
}

// NewRemoteControl returns an invoker with empty history, reporting
// surplus undo/redo presses to w.
func NewRemoteControl(w io.Writer) *RemoteControl {
	return &RemoteControl{w: w}
}

// Execute runs the command and records it for undo. Any redoable history
// is discarded: a fresh action forks the timeline.
func (r *RemoteControl) Execute(cmd Command) {
	cmd.Execute()
	r.undoStack = append(r.undoStack, cmd)
	r.redoStack = r.redoStack[:0]
}

// Undo reverses the most recent command and moves it to the redo stack.
// With nothing to reverse it prints "Nothing to undo!" and changes nothing.
func (r *RemoteControl) Undo() {
	if len(r.undoStack) == 0 {
		fmt.Fprintln(r.w, "Nothing to undo!")
		return
	}
	last := r.undoStack[len(r.undoStack)-1]
	r.undoStack = r.undoStack[:len(r.undoStack)-1]
	last.Undo()
	r.redoStack = append(r.redoStack, last)
}

// Redo replays the most recently undone command and moves it back to the
// undo stack. With nothing to replay it prints "Nothing to redo!".
func (r *RemoteControl) Redo() {
	if len(r.redoStack) == 0 {
		fmt.Fprintln(r.w, "Nothing to redo!")
		return
	}
	last := r.redoStack[len(r.redoStack)-1]
	r.redoStack = r.redoStack[:len(r.redoStack)-1]
	last.Execute()
	r.undoStack = append(r.undoStack, last)
}
