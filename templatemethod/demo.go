package templatemethod

import (
	"fmt"
	"io"
)

// Demo plays one turn per race through the same skeleton. The two
// transcripts differ only where the races supplied different steps.
func Demo(w io.Writer) error {
	game := NewGame(w)

	fmt.Fprintln(w, "Orcs AI Turn:")
	game.Turn(NewOrcsAI(w))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Monsters AI Turn:")
	game.Turn(NewMonstersAI(w))
	return nil
}
