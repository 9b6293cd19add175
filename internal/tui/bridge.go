// Package tui implements the terminal observer for a fiberscope hook: a
// renderer table plus a scrolling event log, fed by a channel bridge over
// the hook's pub/sub surface.
package tui

import (
	"fmt"
	"time"

	"github.com/fiberscope/fiberscope/hook"
)

// Event is one row in the observer's event log.
type Event struct {
	When       time.Time
	Kind       string // "renderer", "commit", "unmount"
	RendererID hook.RendererID
	Detail     string
}

// Bridge subscribes to the hook and translates its callbacks into Events on
// a buffered channel the bubbletea model consumes. For every announced
// renderer it registers a helper so commit and unmount notifications flow
// through as well. The returned teardown unsubscribes the bridge.
//
// Sends never block: when the UI lags behind, events are dropped rather
// than stalling the hook's dispatch.
func Bridge(h *hook.Hook, buf int) (<-chan Event, func()) {
	ch := make(chan Event, buf)

	send := func(ev Event) {
		ev.When = time.Now()
		select {
		case ch <- ev:
		default:
		}
	}

	unsub := h.Sub(hook.EventRenderer, func(payload any) {
		ev, ok := payload.(hook.RendererEvent)
		if !ok {
			return
		}
		send(Event{
			Kind:       "renderer",
			RendererID: ev.ID,
			Detail:     string(ev.ReactBuildType),
		})
		h.SetHelper(ev.ID, &bridgeHelper{id: ev.ID, send: send})
	})

	return ch, unsub
}

// bridgeHelper forwards per-renderer notifications onto the bridge channel.
type bridgeHelper struct {
	id   hook.RendererID
	send func(Event)
}

func (b *bridgeHelper) HandleCommitFiberRoot(root hook.FiberRoot) {
	detail := "root committed"
	if state := root.Current(); state == nil || state.Element == nil {
		detail = "root unmounting"
	} else {
		detail = fmt.Sprintf("root committed (%v)", state.Element)
	}
	b.send(Event{Kind: "commit", RendererID: b.id, Detail: detail})
}

func (b *bridgeHelper) HandleCommitFiberUnmount(fiber any) {
	b.send(Event{Kind: "unmount", RendererID: b.id, Detail: fmt.Sprint(fiber)})
}
