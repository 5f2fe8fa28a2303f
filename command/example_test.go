package command_test

import (
	"os"

	"github.com/MSREDDY199/Design-Patterns/command"
)

func ExampleDemo() {
	_ = command.Demo(os.Stdout)

	// Output:
	// The light is ON
	// The light is OFF
	// The light is ON
	// The light is OFF
	// Nothing to undo!
}

// ExampleRemoteControl_Redo replays an undone action.
func ExampleRemoteControl_Redo() {
	light := command.NewLight(os.Stdout)
	remote := command.NewRemoteControl(os.Stdout)

	remote.Execute(command.NewTurnOnCommand(light))
	remote.Undo()
	remote.Redo()

	// Output:
	// The light is ON
	// The light is OFF
	// The light is ON
}
