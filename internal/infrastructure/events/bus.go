package events

import (
	"context"
	"fmt"
	"sync"

	"tender_service/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// Handler reacts to a committed workflow event.
type Handler func(ctx context.Context, e interfaces.Event) error

type subscription struct {
	name    string
	types   map[interfaces.EventType]bool
	handler Handler
}

// Bus fans events out to subscribers synchronously, in subscription order.
// A failing or panicking subscriber is logged and skipped; it never reaches
// the workflow that published the event.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

var _ interfaces.IEventPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for the given event types, or for every event when
// none are given.
func (b *Bus) Subscribe(name string, h Handler, types ...interfaces.EventType) {
	var filter map[interfaces.EventType]bool
	if len(types) > 0 {
		filter = make(map[interfaces.EventType]bool, len(types))
		for _, t := range types {
			filter[t] = true
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, types: filter, handler: h})
}

func (b *Bus) Publish(ctx context.Context, e interfaces.Event) {
	b.mu.RLock()
	subs := append([]subscription(nil), b.subs...)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.types != nil && !s.types[e.Type] {
			continue
		}
		if err := deliver(ctx, s, e); err != nil {
			log.WithFields(log.Fields{
				"subscriber": s.name,
				"event":      e.Type,
				"work_id":    e.WorkID,
				"entity_id":  e.EntityID,
			}).WithError(err).Error("[events][bus] subscriber failed")
		}
	}
}

func deliver(ctx context.Context, s subscription, e interfaces.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.handler(ctx, e)
}
