// Package testutil provides shared test doubles for fiberscope tests.
package testutil

import (
	"sync"

	"github.com/fiberscope/fiberscope/buildtype"
	"github.com/fiberscope/fiberscope/hook"
)

// FakeRenderer is a renderer handle with a canned build descriptor.
type FakeRenderer struct {
	Name string
	Desc buildtype.Descriptor
}

// BuildDescriptor implements buildtype.Describer.
func (r *FakeRenderer) BuildDescriptor() buildtype.Descriptor {
	return r.Desc
}

// DevRenderer returns a renderer that classifies as a development build.
func DevRenderer(name string) *FakeRenderer {
	return &FakeRenderer{
		Name: name,
		Desc: buildtype.Descriptor{Version: "18.2.0", BundleType: 1},
	}
}

// ProdRenderer returns a renderer that classifies as a production build.
func ProdRenderer(name string) *FakeRenderer {
	return &FakeRenderer{
		Name: name,
		Desc: buildtype.Descriptor{
			Version:         "18.2.0",
			FindFiberSource: "function(a,b){return c(a,b)}",
		},
	}
}

// FakeRoot is a fiber root whose mounted state tests control directly.
type FakeRoot struct {
	mu    sync.Mutex
	state *hook.FiberState
}

// MountedRoot returns a root that reports a mounted tree.
func MountedRoot(element any) *FakeRoot {
	return &FakeRoot{state: &hook.FiberState{Element: element}}
}

// Current implements hook.FiberRoot.
func (r *FakeRoot) Current() *hook.FiberState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Unmount clears the root's state so the hook sees it as unmounting.
func (r *FakeRoot) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = nil
}

// RecordingHelper records every notification forwarded to it.
type RecordingHelper struct {
	mu       sync.Mutex
	Roots    []hook.FiberRoot
	Unmounts []any
}

// HandleCommitFiberRoot implements hook.Helper.
func (h *RecordingHelper) HandleCommitFiberRoot(root hook.FiberRoot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Roots = append(h.Roots, root)
}

// HandleCommitFiberUnmount implements hook.Helper.
func (h *RecordingHelper) HandleCommitFiberUnmount(fiber any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Unmounts = append(h.Unmounts, fiber)
}

// CommitCount returns how many root commits the helper has seen.
func (h *RecordingHelper) CommitCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Roots)
}

// RecordingListener captures every payload emitted to it.
type RecordingListener struct {
	mu       sync.Mutex
	Payloads []any
}

// Listen returns the hook.Listener to subscribe with.
func (l *RecordingListener) Listen() hook.Listener {
	return func(payload any) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.Payloads = append(l.Payloads, payload)
	}
}

// Count returns how many payloads the listener has captured.
func (l *RecordingListener) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Payloads)
}
