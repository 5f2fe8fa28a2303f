package observer

import (
	"fmt"
	"io"
	"os"
)

// Demo wires a log listener to "open" and an email listener to "save",
// then opens and saves a file. The log lands in a throwaway temp file so
// the demo leaves nothing behind.
func Demo(w io.Writer) error {
	logFile, err := os.CreateTemp("", "editor-log-*.txt")
	if err != nil {
		return fmt.Errorf("observer: create temp log: %w", err)
	}
	logPath := logFile.Name()
	logFile.Close()
	defer os.Remove(logPath)

	editor := NewEditor()
	editor.Events.Subscribe(EventOpen,
		NewLogListener(w, logPath, "Someone has opened the file: %s"))
	editor.Events.Subscribe(EventSave,
		NewEmailAlertsListener(w, "admin@example.com", "Someone has changed the file: %s"))

	if err := editor.OpenFile("test_file.txt"); err != nil {
		return err
	}
	return editor.SaveFile()
}
