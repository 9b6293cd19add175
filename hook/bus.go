package hook

import "runtime/debug"

// subscription represents a registered event listener.
type subscription struct {
	id ListenerID
	fn Listener
}

// On appends a listener to the ordered list for event, creating the list if
// absent. Duplicate registrations of the same function are not deduplicated;
// each call produces an independent subscription. The returned id can be
// passed to Off.
func (h *Hook) On(event string, fn Listener) ListenerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := ListenerID(h.nextSub.Add(1))
	h.listeners[event] = append(h.listeners[event], subscription{id: id, fn: fn})
	return id
}

// Off removes the subscription identified by id from event's listener list.
// When the list empties, the event entry is dropped entirely; consumers must
// treat an absent entry and an empty one the same, the distinction exists
// only for memory hygiene. Returns false if the event or subscription is
// unknown.
func (h *Hook) Off(event string, id ListenerID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.listeners[event]
	if !ok {
		return false
	}
	for i, sub := range subs {
		if sub.id == id {
			h.listeners[event] = append(subs[:i], subs[i+1:]...)
			if len(h.listeners[event]) == 0 {
				delete(h.listeners, event)
			}
			return true
		}
	}
	return false
}

// Sub registers fn for event and returns an unsubscribe closure. The closure
// is safe to call more than once; after the first call the subscription is
// already gone and further calls are no-ops.
func (h *Hook) Sub(event string, fn Listener) func() {
	id := h.On(event, fn)
	return func() {
		h.Off(event, id)
	}
}

// Emit invokes every listener registered for event, in subscription order,
// with the given payload. The subscription list is copied before dispatch,
// so listeners may subscribe, unsubscribe, or inject re-entrantly; such
// changes take effect from the next emission. A listener that panics is
// recovered and logged so the remaining listeners still run.
func (h *Hook) Emit(event string, payload any) {
	h.mu.RLock()
	subs := make([]subscription, len(h.listeners[event]))
	copy(subs, h.listeners[event])
	h.mu.RUnlock()

	for _, sub := range subs {
		h.safeCall(event, sub.fn, payload)
	}
}

// ListenerCount returns the number of active subscriptions for event.
func (h *Hook) ListenerCount(event string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners[event])
}

// safeCall invokes a listener and recovers from any panic, logging it with a
// stack trace so one misbehaving subscriber cannot break fan-out to the rest.
func (h *Hook) safeCall(event string, fn Listener, payload any) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("listener panicked",
				"event", event,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn(payload)
}
