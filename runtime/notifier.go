// Package runtime hosts the realtime fan-out of newly appended messages.
package runtime

import (
	"coachchat/contract"
	"coachchat/domain"
	"coachchat/errors"
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Subscription identifies one registered sink. Closing it (directly or via
// Notifier.Unsubscribe) stops delivery to that sink only.
type Subscription struct {
	id    uuid.UUID
	queue chan domain.Message
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func (s *Subscription) ID() uuid.UUID { return s.id }

// close stops the drain goroutine and waits for it to finish. Callers go
// through Notifier.Unsubscribe, which also removes the subscription from
// fan-out first.
func (s *Subscription) close() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}

// Notifier broadcasts every accepted message to all subscribers. It is
// best-effort: no ordering, durability, or retry guarantees. Each subscriber
// owns a bounded queue drained by its own goroutine, so one slow or crashed
// sink never blocks Publish, the store, or another subscriber. On overflow
// the oldest buffered message is dropped; the client-side fallback is a full
// refetch.
//
// Notifier is safe for concurrent use by multiple goroutines.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscription
	buffer int
	closed bool
	log    *slog.Logger
}

func NewNotifier(bufferSize int, log *slog.Logger) *Notifier {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Notifier{
		subs:   make(map[uuid.UUID]*Subscription),
		buffer: bufferSize,
		log:    log,
	}
}

// Subscribe registers a sink and starts its drain goroutine. The sink sees
// every published message and filters by participant identity itself.
func (n *Notifier) Subscribe(sink contract.MessageSink) (*Subscription, error) {
	sub := &Subscription{
		id:    uuid.New(),
		queue: make(chan domain.Message, n.buffer),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil, errors.ErrNotifierClosed
	}
	n.subs[sub.id] = sub
	n.mu.Unlock()

	go n.drain(sub, sink)
	return sub, nil
}

// Unsubscribe removes the subscription and waits for its drain goroutine to
// stop. In-flight deliveries to other subscribers are unaffected. Safe to
// call twice.
func (n *Notifier) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	n.mu.Lock()
	_, registered := n.subs[sub.id]
	delete(n.subs, sub.id)
	n.mu.Unlock()

	if registered {
		sub.close()
	}
}

// Publish enqueues the message for every subscriber and returns immediately.
// Callers must only publish messages that are already durably stored. A full
// queue loses its oldest entry to make room for the new message.
func (n *Notifier) Publish(msg domain.Message) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}
	for _, sub := range n.subs {
		select {
		case sub.queue <- msg:
		default:
			select {
			case dropped := <-sub.queue:
				n.log.Debug("Subscriber queue full, dropped oldest message",
					"subscription", sub.id, "dropped_id", dropped.ID)
			default:
			}
			select {
			case sub.queue <- msg:
			default:
			}
		}
	}
}

// Close stops delivery to every subscriber and rejects new subscriptions.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	subs := make([]*Subscription, 0, len(n.subs))
	for _, sub := range n.subs {
		subs = append(subs, sub)
	}
	n.subs = make(map[uuid.UUID]*Subscription)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// drain feeds queued messages to the sink until the subscription closes.
// Sink errors and panics are logged and dropped; delivery is best-effort.
func (n *Notifier) drain(sub *Subscription, sink contract.MessageSink) {
	defer close(sub.done)
	for {
		select {
		case <-sub.quit:
			return
		case msg := <-sub.queue:
			n.consume(sub, sink, msg)
		}
	}
}

func (n *Notifier) consume(sub *Subscription, sink contract.MessageSink, msg domain.Message) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("Subscriber panicked, message dropped",
				"subscription", sub.id, "message_id", msg.ID, "panic", r)
		}
	}()
	if err := sink.Consume(context.Background(), msg); err != nil {
		n.log.Warn("Subscriber rejected message",
			"subscription", sub.id, "message_id", msg.ID, "error", err)
	}
}
