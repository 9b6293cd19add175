// Package hook implements the process-wide instrumentation hook that
// instrumented renderer runtimes attach to and that observer tooling
// subscribes to.
//
// A [Hook] is installed at most once per [Host] via [Install]. Renderers
// announce themselves with [Hook.Inject], which assigns a random identifier,
// runs build-type detection, and emits an [EventRenderer] event to every
// subscriber. Observer tooling reacts to that event, inspects the announced
// renderer, and registers a [Helper] to receive per-renderer commit and
// unmount notifications.
//
// # Main Types
//
//   - [Host]: explicit stand-in for the host global object; carries at most one hook
//   - [Hook]: the registry itself — renderers, helpers, listeners, fiber roots
//   - [Listener]: function type for event subscribers (func(payload any))
//   - [Helper]: per-renderer capability registered by observer tooling
//   - [FiberRoot]: mounted root handle reported by a renderer on each commit
//
// # Events
//
// The hook itself produces a single event, [EventRenderer], carrying a
// [RendererEvent] payload on every successful Inject. Any other event name
// is available for ad hoc pub/sub between collaborators.
//
// # Error Model
//
// No public operation returns an error or panics. Unknown event names,
// unknown renderer identifiers, and missing helpers are silent no-ops.
// A listener that panics during [Hook.Emit] is recovered and logged so it
// cannot break fan-out to the remaining listeners.
//
// # Thread Safety
//
// The hook is expected to be driven from a single host execution context,
// but its registries are guarded by a mutex and subscription lists are
// copied before dispatch, so concurrent use and re-entrant calls (a
// listener calling On, Off, or Inject during Emit) are both safe.
//
// # Basic Usage
//
//	host := &hook.Host{}
//	h := hook.Install(host)
//
//	// Observer tooling subscribes before renderers attach.
//	unsub := h.Sub(hook.EventRenderer, func(payload any) {
//	    ev := payload.(hook.RendererEvent)
//	    log.Printf("renderer %s attached (%s build)", ev.ID, ev.ReactBuildType)
//	})
//	defer unsub()
//
//	// An instrumented runtime announces itself.
//	id := h.Inject(myRenderer)
//
//	// The runtime reports commits; the hook tracks mounted roots and
//	// forwards to whatever helper the observer registered for this id.
//	h.OnCommitFiberRoot(id, root)
package hook
