package hook

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fiberscope/fiberscope/buildtype"
)

// Hook is the process-wide instrumentation registry. It maps renderer ids to
// renderer handles, helper capabilities, and mounted fiber roots, and fans
// events out to subscribed listeners.
//
// Use Install to attach a hook to a Host, or New when the caller manages the
// single-instance invariant itself (tests, mostly).
type Hook struct {
	mu         sync.RWMutex
	renderers  map[RendererID]any
	helpers    map[RendererID]Helper
	listeners  map[string][]subscription
	fiberRoots map[RendererID]map[FiberRoot]struct{}
	nextSub    atomic.Uint64

	logger *slog.Logger
}

// Option configures a Hook.
type Option func(*Hook)

// WithLogger sets the structured logger the hook reports registrations and
// recovered listener panics to. Without it the hook is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hook) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates an empty hook. Most callers should go through Install instead
// so the once-per-host invariant holds.
func New(opts ...Option) *Hook {
	h := &Hook{
		renderers:  make(map[RendererID]any),
		helpers:    make(map[RendererID]Helper),
		listeners:  make(map[string][]subscription),
		fiberRoots: make(map[RendererID]map[FiberRoot]struct{}),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Inject registers a renderer handle, assigns it a fresh random id, runs
// build-type detection against it, and announces the registration to every
// EventRenderer subscriber. The handle's shape is never validated; detection
// degrades to "production" when the handle exposes nothing useful.
//
// The returned id correlates subsequent SetHelper and commit calls.
func (h *Hook) Inject(renderer any) RendererID {
	id := RendererID(generateID())

	h.mu.Lock()
	h.renderers[id] = renderer
	h.mu.Unlock()

	bt := buildtype.Detect(renderer)
	h.logger.Debug("renderer attached", "renderer_id", id, "build_type", bt)

	h.Emit(EventRenderer, RendererEvent{
		ID:             id,
		Renderer:       renderer,
		ReactBuildType: bt,
	})
	return id
}

// Renderer returns the handle registered under id.
func (h *Hook) Renderer(id RendererID) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.renderers[id]
	return r, ok
}

// RendererCount returns the number of registered renderers.
func (h *Hook) RendererCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.renderers)
}

// SetHelper registers the helper that receives commit and unmount
// notifications for the given renderer. A nil helper removes the
// registration, returning those notifications to no-ops.
func (h *Hook) SetHelper(id RendererID, helper Helper) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if helper == nil {
		delete(h.helpers, id)
		return
	}
	h.helpers[id] = helper
}

// Helper returns the helper registered for id, if any.
func (h *Hook) Helper(id RendererID) (Helper, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	helper, ok := h.helpers[id]
	return helper, ok
}

// FiberRoots returns the set of mounted roots tracked for the given
// renderer, creating it on first use. Repeated calls for the same id return
// the same set instance.
func (h *Hook) FiberRoots(id RendererID) map[FiberRoot]struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fiberRootsLocked(id)
}

func (h *Hook) fiberRootsLocked(id RendererID) map[FiberRoot]struct{} {
	roots, ok := h.fiberRoots[id]
	if !ok {
		roots = make(map[FiberRoot]struct{})
		h.fiberRoots[id] = roots
	}
	return roots
}

// FiberRootCount returns how many roots are currently mounted for the given
// renderer. Unlike FiberRoots it does not hand out the live set, so it is
// the right call for concurrent readers such as observer UIs.
func (h *Hook) FiberRootCount(id RendererID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.fiberRoots[id])
}

// OnCommitFiberRoot records a commit for the given root and forwards it to
// the renderer's helper. A root whose current state (or that state's
// top-level element) is absent is treated as unmounting: unknown unmounting
// roots are ignored, known ones are dropped from the set. Re-committing a
// mounted root is idempotent.
func (h *Hook) OnCommitFiberRoot(id RendererID, root FiberRoot) {
	if root == nil {
		return
	}

	current := root.Current()
	unmounting := current == nil || current.Element == nil

	h.mu.Lock()
	roots := h.fiberRootsLocked(id)
	if _, known := roots[root]; known {
		if unmounting {
			delete(roots, root)
		}
	} else if !unmounting {
		roots[root] = struct{}{}
	}
	helper := h.helpers[id]
	h.mu.Unlock()

	if helper != nil {
		helper.HandleCommitFiberRoot(root)
	}
}

// OnCommitFiberUnmount forwards a fiber unmount notification to the
// renderer's helper. The hook tracks no state here; without a helper the
// call is a no-op.
func (h *Hook) OnCommitFiberUnmount(id RendererID, fiber any) {
	h.mu.RLock()
	helper := h.helpers[id]
	h.mu.RUnlock()

	if helper != nil {
		helper.HandleCommitFiberUnmount(fiber)
	}
}

// generateID creates a short random hex ID.
// Falls back to a timestamp-based ID if crypto/rand fails.
func generateID() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return hex.EncodeToString(bytes)
}
