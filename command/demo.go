package command

import "io"

// Demo flips a light on and off through the remote, then presses undo three
// times: two reversals and one press into empty history.
func Demo(w io.Writer) error {
	light := NewLight(w)
	remote := NewRemoteControl(w)

	remote.Execute(NewTurnOnCommand(light))
	remote.Execute(NewTurnOffCommand(light))

	remote.Undo()
	remote.Undo()
	remote.Undo()
	return nil
}
