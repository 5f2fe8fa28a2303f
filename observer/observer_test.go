package observer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSREDDY199/Design-Patterns/observer"
)

// recorder collects the filenames it was updated with.
type recorder struct {
	tag     string
	updates *[]string
	err     error
}

func (r *recorder) Update(filename string) error {
	*r.updates = append(*r.updates, r.tag+":"+filename)
	return r.err
}

func TestNotify_SubscriptionOrder(t *testing.T) {
	var updates []string
	first := &recorder{tag: "first", updates: &updates}
	second := &recorder{tag: "second", updates: &updates}

	m := observer.NewEventManager()
	m.Subscribe(observer.EventOpen, first)
	m.Subscribe(observer.EventOpen, second)

	require.NoError(t, m.Notify(observer.EventOpen, "a.txt"))
	assert.Equal(t, []string{"first:a.txt", "second:a.txt"}, updates)
}

func TestNotify_OnlyMatchingEventType(t *testing.T) {
	var updates []string
	m := observer.NewEventManager()
	m.Subscribe(observer.EventOpen, &recorder{tag: "open", updates: &updates})
	m.Subscribe(observer.EventSave, &recorder{tag: "save", updates: &updates})

	require.NoError(t, m.Notify(observer.EventSave, "a.txt"))
	assert.Equal(t, []string{"save:a.txt"}, updates,
		"save must reach the save listener and nobody else")

	require.NoError(t, m.Notify("rename", "a.txt"), "unknown event type is a no-op")
	assert.Len(t, updates, 1)
}

func TestUnsubscribe(t *testing.T) {
	var updates []string
	stay := &recorder{tag: "stay", updates: &updates}
	leave := &recorder{tag: "leave", updates: &updates}

	m := observer.NewEventManager()
	m.Subscribe(observer.EventSave, leave)
	m.Subscribe(observer.EventSave, stay)
	m.Unsubscribe(observer.EventSave, leave)
	m.Unsubscribe(observer.EventSave, &recorder{tag: "stranger", updates: &updates})

	require.NoError(t, m.Notify(observer.EventSave, "b.txt"))
	assert.Equal(t, []string{"stay:b.txt"}, updates)
}

func TestNotify_FirstErrorStopsFanOut(t *testing.T) {
	boom := errors.New("listener broke")
	var updates []string
	m := observer.NewEventManager()
	m.Subscribe(observer.EventOpen, &recorder{tag: "bad", updates: &updates, err: boom})
	m.Subscribe(observer.EventOpen, &recorder{tag: "after", updates: &updates})

	err := m.Notify(observer.EventOpen, "c.txt")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"bad:c.txt"}, updates, "later listeners are skipped")
}

func TestEditor_PublishesBaseName(t *testing.T) {
	var updates []string
	editor := observer.NewEditor()
	editor.Events.Subscribe(observer.EventOpen, &recorder{tag: "open", updates: &updates})
	editor.Events.Subscribe(observer.EventSave, &recorder{tag: "save", updates: &updates})

	require.NoError(t, editor.OpenFile(filepath.Join("some", "dir", "test_file.txt")))
	require.NoError(t, editor.SaveFile())

	assert.Equal(t, []string{"open:test_file.txt", "save:test_file.txt"}, updates)
}

func TestEditor_SaveBeforeOpenIsSilent(t *testing.T) {
	var updates []string
	editor := observer.NewEditor()
	editor.Events.Subscribe(observer.EventSave, &recorder{tag: "save", updates: &updates})

	require.NoError(t, editor.SaveFile())
	assert.Empty(t, updates)
}

func TestLogListener_AppendsAcrossEvents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.txt")
	var sb strings.Builder
	listener := observer.NewLogListener(&sb, logPath, "Someone has opened the file: %s")

	require.NoError(t, listener.Update("one.txt"))
	require.NoError(t, listener.Update("two.txt"))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Someone has opened the file: one.txt\nSomeone has opened the file: two.txt\n",
		string(data))
	assert.Equal(t,
		"Writing the logs: Someone has opened the file: one.txt\n"+
			"Writing the logs: Someone has opened the file: two.txt\n",
		sb.String())
}

func TestEmailAlertsListener_Report(t *testing.T) {
	var sb strings.Builder
	listener := observer.NewEmailAlertsListener(&sb, "admin@example.com",
		"Someone has changed the file: %s")

	require.NoError(t, listener.Update("test_file.txt"))
	assert.Equal(t,
		"Sending email to admin@example.com: Someone has changed the file: test_file.txt\n",
		sb.String())
}
