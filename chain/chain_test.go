package chain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSREDDY199/Design-Patterns/chain"
)

// buildChain wires button -> panel -> dialog and returns the button.
func buildChain(w *strings.Builder, tooltip, modalHelp, wikiURL string) *chain.Button {
	dialog := chain.NewDialog(w, wikiURL)
	panel := chain.NewPanel(w, modalHelp)
	button := chain.NewButton(w, tooltip)
	button.SetContainer(panel)
	panel.SetContainer(dialog)
	return button
}

func TestShowHelp_MostSpecificWins(t *testing.T) {
	cases := []struct {
		name      string
		tooltip   string
		modalHelp string
		wikiURL   string
		want      string
	}{
		{
			name:      "button answers itself",
			tooltip:   "Click to submit",
			modalHelp: "Panel text",
			wikiURL:   "http://help.wiki/page",
			want:      "Button Help: Click to submit\n",
		},
		{
			name:      "panel answers for a mute button",
			modalHelp: "This panel configures the order",
			wikiURL:   "http://help.wiki/page",
			want:      "Panel Help: This panel configures the order\n",
		},
		{
			name:    "dialog answers when nothing below has help",
			wikiURL: "http://help.wiki/page",
			want:    "Dialog Help: Opening wiki page at http://help.wiki/page\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			button := buildChain(&sb, tc.tooltip, tc.modalHelp, tc.wikiURL)
			button.ShowHelp()
			assert.Equal(t, tc.want, sb.String())
		})
	}
}

func TestShowHelp_UnansweredRequestIsSilent(t *testing.T) {
	var sb strings.Builder
	button := buildChain(&sb, "", "", "")
	button.ShowHelp()
	assert.Empty(t, sb.String(), "a fully mute chain must not print")
}

func TestShowHelp_UnwiredComponentIsSilent(t *testing.T) {
	var sb strings.Builder
	button := chain.NewButton(&sb, "")
	button.ShowHelp()
	assert.Empty(t, sb.String(), "no container, no output")
}

func TestShowHelp_OneAnswerOnly(t *testing.T) {
	var sb strings.Builder
	// Panel and dialog both have help; only the panel (closer to the
	// button) may answer.
	button := buildChain(&sb, "", "Panel text", "http://help.wiki/page")
	button.ShowHelp()
	assert.Equal(t, "Panel Help: Panel text\n", sb.String())
	assert.NotContains(t, sb.String(), "Dialog")
}
