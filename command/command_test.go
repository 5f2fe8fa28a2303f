package command_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSREDDY199/Design-Patterns/command"
)

func transcript(run func(light *command.Light, remote *command.RemoteControl)) string {
	var sb strings.Builder
	run(command.NewLight(&sb), command.NewRemoteControl(&sb))
	return sb.String()
}

func TestUndo_ReversesInLIFOOrder(t *testing.T) {
	got := transcript(func(light *command.Light, remote *command.RemoteControl) {
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Execute(command.NewTurnOffCommand(light))
		remote.Undo() // reverses the off: light back ON
		remote.Undo() // reverses the on: light back OFF
	})
	assert.Equal(t,
		"The light is ON\nThe light is OFF\nThe light is ON\nThe light is OFF\n",
		got)
}

func TestUndo_EmptyHistoryIsReportedNoOp(t *testing.T) {
	got := transcript(func(_ *command.Light, remote *command.RemoteControl) {
		remote.Undo()
	})
	assert.Equal(t, "Nothing to undo!\n", got)
}

// Three executes fully reversed by three undos leave the light where it
// started; a fourth undo has nothing left to reverse.
func TestUndo_FullReversalThenSurplus(t *testing.T) {
	got := transcript(func(light *command.Light, remote *command.RemoteControl) {
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Execute(command.NewTurnOffCommand(light))
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Undo()
		remote.Undo()
		remote.Undo()
		remote.Undo()
	})
	want := "The light is ON\n" +
		"The light is OFF\n" +
		"The light is ON\n" +
		"The light is OFF\n" + // undoes the second on
		"The light is ON\n" + // undoes the off
		"The light is OFF\n" + // undoes the first on: back to the start
		"Nothing to undo!\n"
	assert.Equal(t, want, got)
}

func TestRedo_ReplaysUndoneCommand(t *testing.T) {
	got := transcript(func(light *command.Light, remote *command.RemoteControl) {
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Undo()
		remote.Redo()
		remote.Redo() // redo stack exhausted
	})
	assert.Equal(t,
		"The light is ON\nThe light is OFF\nThe light is ON\nNothing to redo!\n",
		got)
}

// A fresh Execute after an undo forks history: the undone command must not
// be redoable anymore.
func TestExecute_ClearsRedoStack(t *testing.T) {
	got := transcript(func(light *command.Light, remote *command.RemoteControl) {
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Undo()
		remote.Execute(command.NewTurnOffCommand(light))
		remote.Redo()
	})
	assert.True(t, strings.HasSuffix(got, "Nothing to redo!\n"), "got %q", got)
}

func TestUndoRedo_RoundTripKeepsHistoryUsable(t *testing.T) {
	got := transcript(func(light *command.Light, remote *command.RemoteControl) {
		remote.Execute(command.NewTurnOnCommand(light))
		remote.Undo()
		remote.Redo()
		remote.Undo() // the redone command is undoable again
	})
	assert.Equal(t,
		"The light is ON\nThe light is OFF\nThe light is ON\nThe light is OFF\n",
		got)
}
