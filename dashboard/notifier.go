package dashboard

import (
	"log"
	"sync"
)

// Notifier receives the acknowledgement messages produced by click handlers
// and by the load pipeline.
type Notifier interface {
	Notify(message string)
}

// Notifiers fans a message out to every notifier in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(message string) {
	for _, n := range ns {
		n.Notify(message)
	}
}

type LogNotifier struct{}

func (LogNotifier) Notify(message string) {
	log.Printf("Notification: %q", message)
}

// Outbox queues messages until a caller drains them.
type Outbox struct {
	mu       sync.Mutex
	messages []string
}

func (o *Outbox) Notify(message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, message)
}

// Drain returns the queued messages and empties the queue. It never returns nil.
func (o *Outbox) Drain() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	drained := o.messages
	o.messages = nil
	if drained == nil {
		drained = []string{}
	}
	return drained
}

func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.messages)
}
