// Package notify queues transient success and error messages and
// auto-dismisses each one on its own timer. It carries no business
// logic; controllers push into it and the presentation layer renders it.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration matches the toast timeout the dashboard has always
// used.
const DefaultDuration = 3 * time.Second

// Kind classifies a notification.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Notification is a single queued message.
type Notification struct {
	ID        uuid.UUID
	Message   string
	Kind      Kind
	Duration  time.Duration
	CreatedAt time.Time
}

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Notifier holds the active stack of notifications. Each auto-dismisses
// independently; manual dismissal cancels the timer.
type Notifier struct {
	mu      sync.Mutex
	active  map[uuid.UUID]*entry
	order   []uuid.UUID
	subs    map[int]func(Notification)
	nextSub int
	closed  bool
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		active: make(map[uuid.UUID]*entry),
		subs:   make(map[int]func(Notification)),
	}
}

// Notify queues a message. A zero duration uses DefaultDuration. The
// returned id can be used for manual dismissal.
func (n *Notifier) Notify(message string, kind Kind, duration time.Duration) uuid.UUID {
	if duration <= 0 {
		duration = DefaultDuration
	}

	notification := Notification{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return notification.ID
	}
	e := &entry{notification: notification}
	e.timer = time.AfterFunc(duration, func() {
		n.remove(notification.ID)
	})
	n.active[notification.ID] = e
	n.order = append(n.order, notification.ID)
	callbacks := make([]func(Notification), 0, len(n.subs))
	for _, fn := range n.subs {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn(notification)
	}
	return notification.ID
}

// Success queues a success message with the default duration.
func (n *Notifier) Success(message string) uuid.UUID {
	return n.Notify(message, KindSuccess, DefaultDuration)
}

// Error queues an error message with the default duration.
func (n *Notifier) Error(message string) uuid.UUID {
	return n.Notify(message, KindError, DefaultDuration)
}

// Dismiss removes a notification before its timer fires.
func (n *Notifier) Dismiss(id uuid.UUID) {
	n.mu.Lock()
	e, ok := n.active[id]
	if ok {
		e.timer.Stop()
	}
	n.mu.Unlock()
	if ok {
		n.remove(id)
	}
}

// Active returns the queued notifications in arrival order.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, 0, len(n.order))
	for _, id := range n.order {
		if e, ok := n.active[id]; ok {
			out = append(out, e.notification)
		}
	}
	return out
}

// Subscribe registers a callback invoked for every new notification.
// The returned function removes the subscription.
func (n *Notifier) Subscribe(fn func(Notification)) func() {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Close stops every pending timer. Further Notify calls are dropped.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for _, e := range n.active {
		e.timer.Stop()
	}
	n.active = make(map[uuid.UUID]*entry)
	n.order = nil
}

func (n *Notifier) remove(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.active, id)
	for i, existing := range n.order {
		if existing == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}
