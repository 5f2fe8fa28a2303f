package observer

// Event types the editor publishes.
const (
	EventOpen = "open"
	EventSave = "save"
)

// EventListener subscribes to editor events; Update receives the name of
// the file the event concerns.
type EventListener interface {
	Update(filename string) error
}

// EventManager is the publisher side of the pattern: per-event-type
// listener lists and the three operations every publisher needs.
type EventManager struct {
	listeners map[string][]EventListener
}

// NewEventManager returns a manager with no subscriptions.
func NewEventManager() *EventManager {
	return &EventManager{listeners: make(map[string][]EventListener)}
}

// Subscribe appends the listener to the event type's list. A listener may
// subscribe to several event types independently.
func (m *EventManager) Subscribe(eventType string, listener EventListener) {
	m.listeners[eventType] = append(m.listeners[eventType], listener)
}

// Unsubscribe removes the first occurrence of the listener from the event
// type's list; absent listeners are ignored.
func (m *EventManager) Unsubscribe(eventType string, listener EventListener) {
	subscribed := m.listeners[eventType]
	for i, l := range subscribed {
		if l == listener {
			m.listeners[eventType] = append(subscribed[:i], subscribed[i+1:]...)
			return
		}
	}
}

// Notify updates every listener of the event type in subscription order.
// The first listener error stops the fan-out and is returned; an event
// type with no listeners is a no-op.
func (m *EventManager) Notify(eventType, filename string) error {
	for _, listener := range m.listeners[eventType] {
		if err := listener.Update(filename); err != nil {
			return err
		}
	}
	return nil
}
