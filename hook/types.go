package hook

import "github.com/fiberscope/fiberscope/buildtype"

// EventRenderer is emitted once per successful Inject call.
const EventRenderer = "renderer"

// RendererID identifies a renderer registered with a Hook. IDs are short
// random hex strings generated at Inject time. An id is never reused while
// the hook lives; collisions are not checked because the probability is
// treated as negligible.
type RendererID string

// RendererEvent is the payload carried by EventRenderer.
type RendererEvent struct {
	ID             RendererID
	Renderer       any
	ReactBuildType buildtype.BuildType
}

// Listener handles payloads emitted for a subscribed event.
type Listener func(payload any)

// ListenerID identifies a single subscription within a hook.
type ListenerID uint64

// FiberState is the state a FiberRoot's current pointer tracks. A nil state,
// or a state whose Element is nil, means the tree is unmounting.
type FiberState struct {
	Element any
}

// FiberRoot is the mounted root handle a renderer reports on each commit.
// The hook reads only the root's current state, to decide set membership;
// everything else about the root is opaque to it.
type FiberRoot interface {
	Current() *FiberState
}

// Helper receives commit and unmount notifications for a single renderer.
// Observer tooling registers one via SetHelper after it has seen the
// renderer's EventRenderer announcement; until then the hook drops these
// notifications.
type Helper interface {
	HandleCommitFiberRoot(root FiberRoot)
	HandleCommitFiberUnmount(fiber any)
}
