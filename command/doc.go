// Package command demonstrates the Command pattern: actions reified as
// objects, so an invoker can store, replay and reverse them without knowing
// what they do.
//
// What
//
//   - Command pairs an action with its inverse: Execute and Undo.
//   - Light is the receiver; TurnOnCommand and TurnOffCommand wrap its two
//     operations.
//   - RemoteControl is the invoker: Execute runs a command and records it
//     on the undo stack; Undo pops, reverses and moves the command to the
//     redo stack; Redo replays back. Executing anything new clears the redo
//     stack, because history has forked.
//
// Why
//
//	A button wired straight to "turn the light on" knows too much: add
//	undo, queuing or a second trigger (shortcut, menu item) and the wiring
//	multiplies. Once the action is an object, the button just holds one and
//	fires it, and undo is a stack of already-performed objects.
//
// Surplus calls are reported no-ops: undoing with an empty history prints
// "Nothing to undo!", redoing prints "Nothing to redo!".
//
// Usage
//
//	light := command.NewLight(w)
//	remote := command.NewRemoteControl(w)
//	remote.Execute(command.NewTurnOnCommand(light)) // The light is ON
//	remote.Undo()                                   // The light is OFF
//	remote.Redo()                                   // The light is ON
package command
