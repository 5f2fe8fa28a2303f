package chain

import (
	"fmt"
	"io"
)

// Component is a UI element that can answer a help request.
type Component interface {
	// ShowHelp renders this component's help, or forwards the request to
	// its container when it has none to show.
	ShowHelp()
}

// relay is the link every component embeds: it stores the container (the
// parent in the UI tree) and forwards unanswered requests to it. At the top
// of the tree the forward is a silent no-op.
type relay struct {
	container Component
}

// SetContainer wires the component's parent in the chain.
func (r *relay) SetContainer(c Component) { r.container = c }

func (r *relay) forward() {
	if r.container != nil {
		r.container.ShowHelp()
	}
}

// Button is a leaf component with an optional tooltip.
type Button struct {
	relay
	w       io.Writer
	tooltip string
}

// NewButton returns a button reporting to w. An empty tooltip means the
// button has no help of its own and will forward requests.
func NewButton(w io.Writer, tooltip string) *Button {
	return &Button{w: w, tooltip: tooltip}
}

// ShowHelp prints the tooltip, or passes the request up the chain.
func (b *Button) ShowHelp() {
	if b.tooltip != "" {
		fmt.Fprintln(b.w, "Button Help: "+b.tooltip)
		return
	}
	b.forward()
}

// Panel is a container component with optional modal help text.
type Panel struct {
	relay
	w         io.Writer
	modalHelp string
}

// NewPanel returns a panel reporting to w. An empty help text means the
// panel forwards requests.
func NewPanel(w io.Writer, modalHelp string) *Panel {
	return &Panel{w: w, modalHelp: modalHelp}
}

// ShowHelp prints the modal help, or passes the request up the chain.
func (p *Panel) ShowHelp() {
	if p.modalHelp != "" {
		fmt.Fprintln(p.w, "Panel Help: "+p.modalHelp)
		return
	}
	p.forward()
}

// Dialog is the top-level component with an optional wiki page URL.
type Dialog struct {
	relay
	w       io.Writer
	wikiURL string
}

// NewDialog returns a dialog reporting to w. An empty URL means the dialog
// forwards requests (usually off the end of the chain).
func NewDialog(w io.Writer, wikiURL string) *Dialog {
	return &Dialog{w: w, wikiURL: wikiURL}
}

// ShowHelp opens the wiki page, or passes the request up the chain.
func (d *Dialog) ShowHelp() {
	if d.wikiURL != "" {
		fmt.Fprintln(d.w, "Dialog Help: Opening wiki page at "+d.wikiURL)
		return
	}
	d.forward()
}
