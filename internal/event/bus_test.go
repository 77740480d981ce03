package event

import "testing"

func TestPublishDeliversInOrder(t *testing.T) {
	b := NewBus()
	var got []int
	b.Subscribe(TopicScroll, func(any) { got = append(got, 1) })
	b.Subscribe(TopicScroll, func(any) { got = append(got, 2) })

	b.Publish(TopicScroll, nil)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", got)
	}
}

func TestPublishIsTopicScoped(t *testing.T) {
	b := NewBus()
	called := false
	b.Subscribe(TopicScroll, func(any) { called = true })

	b.Publish(TopicMatchesChanged, nil)

	if called {
		t.Error("handler fired for a different topic")
	}
}

func TestPublishPayload(t *testing.T) {
	b := NewBus()
	var got any
	b.Subscribe(TopicContentCommitted, func(p any) { got = p })

	b.Publish(TopicContentCommitted, "hello")

	if got != "hello" {
		t.Errorf("payload = %v, want hello", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := b.Subscribe(TopicScroll, func(any) { calls++ })

	b.Publish(TopicScroll, nil)
	b.Unsubscribe(sub)
	b.Publish(TopicScroll, nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	b := NewBus()
	// Must not panic.
	b.Publish(TopicMarkupReady, nil)
}
