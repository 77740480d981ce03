package event

import "sync"

// Topic names a class of events.
type Topic string

// Topics published by the editing core.
const (
	// TopicContentCommitted carries the committed content string after
	// every batched edit, for the save collaborator.
	TopicContentCommitted Topic = "content.committed"
	// TopicScroll carries the authoritative scroll offset.
	TopicScroll Topic = "render.scroll"
	// TopicMatchesChanged fires after the match index recomputes.
	TopicMatchesChanged Topic = "search.matches"
	// TopicMarkupReady carries fresh highlight markup.
	TopicMarkupReady Topic = "highlight.markup"
)

// Handler receives a published event payload.
type Handler func(payload any)

// Subscription identifies one subscriber for removal.
type Subscription struct {
	topic Topic
	id    int
}

type subscriber struct {
	id      int
	handler Handler
}

// Bus is a synchronous topic bus.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, handler: h})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to every subscriber of topic, synchronously and
// in subscription order.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	list := make([]subscriber, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.RUnlock()

	for _, s := range list {
		s.handler(payload)
	}
}
