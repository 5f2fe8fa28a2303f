package observer

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogListener appends one line per event to a log file and echoes the line
// to its writer. The message is a template whose %s receives the filename.
type LogListener struct {
	w       io.Writer
	logPath string
	message string
}

// NewLogListener returns a listener appending to logPath and echoing to w.
func NewLogListener(w io.Writer, logPath, message string) *LogListener {
	return &LogListener{w: w, logPath: logPath, message: message}
}

// Update appends the filled-in message to the log file, creating it on
// first use, then echoes what was written.
func (l *LogListener) Update(filename string) error {
	line := strings.Replace(l.message, "%s", filename, 1)

	f, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("observer: open log %s: %w", l.logPath, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("observer: append log %s: %w", l.logPath, err)
	}

	fmt.Fprintln(l.w, "Writing the logs: "+line)
	return nil
}

// EmailAlertsListener reports the alert email it would send for each event.
type EmailAlertsListener struct {
	w       io.Writer
	email   string
	message string
}

// NewEmailAlertsListener returns a listener alerting the given address,
// reporting to w.
func NewEmailAlertsListener(w io.Writer, email, message string) *EmailAlertsListener {
	return &EmailAlertsListener{w: w, email: email, message: message}
}

// Update reports the outgoing alert with the filename filled in.
func (l *EmailAlertsListener) Update(filename string) error {
	fmt.Fprintf(l.w, "Sending email to %s: %s\n",
		l.email, strings.Replace(l.message, "%s", filename, 1))
	return nil
}
