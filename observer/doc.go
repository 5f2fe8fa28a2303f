// Package observer demonstrates the Observer pattern: a publisher that
// pushes change notifications to whoever subscribed, instead of everyone
// polling it.
//
// What
//
//   - EventListener is the subscriber interface: Update carries the name
//     of the file an event concerns.
//   - EventManager is the subscription mechanism: a per-event-type
//     listener list with Subscribe, Unsubscribe and Notify.
//   - Editor is the publisher. OpenFile fires "open", SaveFile fires
//     "save"; the editor neither knows nor cares who is listening.
//   - Two listeners ship built in: LogListener appends a line to a log
//     file (and echoes it), EmailAlertsListener reports the email it would
//     send.
//
// Why
//
//	A customer checking the store daily wastes trips; the store mailing
//	everyone on every change spams the uninterested. Subscriptions put the
//	choice with the interested party and leave the publisher ignorant of
//	its audience, so new listener kinds never touch editor code.
//
// Listeners fire in subscription order, deterministically. Notify stops at
// the first listener error and returns it; with no listeners for an event
// type it is a no-op.
//
// Usage
//
//	editor := observer.NewEditor()
//	editor.Events.Subscribe(observer.EventOpen,
//	    observer.NewLogListener(os.Stdout, "log.txt", "Someone has opened the file: %s"))
//	editor.OpenFile("test_file.txt")
package observer
