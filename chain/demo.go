package chain

import "io"

// Demo simulates pressing F1 on a button that has no tooltip, sitting in a
// panel with no help text, inside a dialog that has a wiki page. The
// request climbs two links and the dialog answers.
func Demo(w io.Writer) error {
	dialog := NewDialog(w, "http://help.wiki/page")
	panel := NewPanel(w, "")
	button := NewButton(w, "")

	button.SetContainer(panel)
	panel.SetContainer(dialog)

	button.ShowHelp()
	return nil
}
