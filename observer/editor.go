package observer

import "path/filepath"

// Editor is the publisher: it edits files and fires events, with no idea
// who is subscribed. Events is exported so clients wire their own
// listeners.
type Editor struct {
	Events *EventManager

	file string
}

// NewEditor returns an editor with an empty subscription list and no file
// open.
func NewEditor() *Editor {
	return &Editor{Events: NewEventManager()}
}

// OpenFile opens the file at path and fires "open" with its base name.
func (e *Editor) OpenFile(path string) error {
	e.file = filepath.Base(path)
	return e.Events.Notify(EventOpen, e.file)
}

// SaveFile fires "save" for the open file. With no file open it does
// nothing: there is nothing to report a change about.
func (e *Editor) SaveFile() error {
	if e.file == "" {
		return nil
	}
	return e.Events.Notify(EventSave, e.file)
}
