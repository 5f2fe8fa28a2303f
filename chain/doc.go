// Package chain demonstrates the Chain of Responsibility pattern: a help
// request climbs a UI containment tree until some component answers it.
//
// What
//
//   - Component is anything that can answer ShowHelp.
//   - Button, Panel and Dialog each carry optional help text (tooltip,
//     modal text, wiki URL). A component with text answers; one without
//     forwards the request to its container.
//   - SetContainer wires the parent links; the chain IS the containment
//     tree, assembled at runtime.
//
// Why
//
//	Pressing F1 on a button should show the most specific help available:
//	the button's own tooltip if it has one, else its panel's, else the
//	dialog's. Encoding that lookup in the caller means a hand-written
//	cascade that changes with every UI rearrangement. In the chain, each
//	component knows only itself and its parent; the cascade emerges from
//	the wiring.
//
// A request that reaches the top unanswered is silently dropped: the chain
// end is a no-op, not an error.
//
// Usage
//
//	button := chain.NewButton(w, "")   // no tooltip of its own
//	dialog := chain.NewDialog(w, "http://help.wiki/page")
//	button.SetContainer(dialog)
//	button.ShowHelp() // Dialog Help: Opening wiki page at http://help.wiki/page
package chain
