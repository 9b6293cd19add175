package hook

import "testing"

func TestOn_AppendsInOrder(t *testing.T) {
	h := New()

	var order []string
	h.On("test.event", func(payload any) {
		order = append(order, "first")
	})
	h.On("test.event", func(payload any) {
		order = append(order, "second")
	})
	h.On("test.event", func(payload any) {
		order = append(order, "third")
	})

	h.Emit("test.event", nil)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(order))
	}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("call %d: expected %q, got %q", i, name, order[i])
		}
	}
}

func TestOn_DuplicateListenersNotDeduplicated(t *testing.T) {
	h := New()

	calls := 0
	fn := func(payload any) { calls++ }

	h.On("test.event", fn)
	h.On("test.event", fn)

	h.Emit("test.event", nil)

	if calls != 2 {
		t.Errorf("expected 2 calls for duplicate subscription, got %d", calls)
	}
}

func TestEmit_PayloadDeliveredVerbatim(t *testing.T) {
	h := New()

	type payload struct{ n int }
	sent := &payload{n: 42}

	var got any
	h.On("test.event", func(p any) { got = p })

	h.Emit("test.event", sent)

	if got != sent {
		t.Errorf("expected the exact payload instance, got %#v", got)
	}
}

func TestEmit_NoListeners(t *testing.T) {
	h := New()

	// Must not panic for an event nobody subscribed to.
	h.Emit("nobody.home", "payload")
}

func TestEmit_ListenerPanicIsolated(t *testing.T) {
	h := New()

	h.On("test.event", func(payload any) {
		panic("bad subscriber")
	})

	called := false
	h.On("test.event", func(payload any) {
		called = true
	})

	h.Emit("test.event", nil)

	if !called {
		t.Error("listener after a panicking one should still run")
	}
}

func TestOff_RemovesExactlyOne(t *testing.T) {
	h := New()

	calls := 0
	fn := func(payload any) { calls++ }

	id1 := h.On("test.event", fn)
	h.On("test.event", fn)

	if !h.Off("test.event", id1) {
		t.Fatal("Off should report removal of a live subscription")
	}

	h.Emit("test.event", nil)

	if calls != 1 {
		t.Errorf("expected 1 call after removing one of two subscriptions, got %d", calls)
	}
}

func TestOff_UnknownEventAndID(t *testing.T) {
	h := New()

	if h.Off("never.registered", 1) {
		t.Error("Off on an unknown event should be a no-op")
	}

	id := h.On("test.event", func(payload any) {})
	if h.Off("test.event", id+1) {
		t.Error("Off with an unknown id should be a no-op")
	}
	if h.ListenerCount("test.event") != 1 {
		t.Error("failed Off should not disturb existing subscriptions")
	}
}

func TestOff_LastListenerDropsEntry(t *testing.T) {
	h := New()

	id := h.On("test.event", func(payload any) {})
	h.Off("test.event", id)

	h.mu.RLock()
	_, present := h.listeners["test.event"]
	h.mu.RUnlock()
	if present {
		t.Error("event entry should be dropped when its last listener is removed")
	}

	// A fresh subscription afterwards behaves like a first-time one.
	calls := 0
	h.On("test.event", func(payload any) { calls++ })
	h.Emit("test.event", nil)
	if calls != 1 {
		t.Errorf("expected 1 call on fresh subscription, got %d", calls)
	}
}

func TestSub_UnsubscribeIdempotent(t *testing.T) {
	h := New()

	calls := 0
	unsub := h.Sub("test.event", func(payload any) { calls++ })

	// Another listener registered between Sub and unsubscribe must survive
	// repeated unsubscribe calls.
	h.On("test.event", func(payload any) { calls += 10 })

	unsub()
	unsub()

	h.Emit("test.event", nil)

	if calls != 10 {
		t.Errorf("expected only the surviving listener to run, calls = %d", calls)
	}
}

func TestEmit_ReentrantSubscription(t *testing.T) {
	h := New()

	reentrant := 0
	h.On("test.event", func(payload any) {
		h.On("test.event", func(payload any) { reentrant++ })
	})

	// Registration during dispatch takes effect from the next emission.
	h.Emit("test.event", nil)
	if reentrant != 0 {
		t.Errorf("listener added during dispatch should not run in the same emission, ran %d times", reentrant)
	}

	h.Emit("test.event", nil)
	if reentrant != 1 {
		t.Errorf("listener added during first emission should run once in the second, ran %d times", reentrant)
	}
}

func TestListenerCount(t *testing.T) {
	h := New()

	if h.ListenerCount("test.event") != 0 {
		t.Error("fresh hook should have no listeners")
	}

	h.On("test.event", func(payload any) {})
	h.On("test.event", func(payload any) {})
	h.On("other.event", func(payload any) {})

	if got := h.ListenerCount("test.event"); got != 2 {
		t.Errorf("ListenerCount = %d, want 2", got)
	}
}
