// Package demo drives a hook with scripted renderer activity. The observe
// command uses it to give the TUI something to display without a real
// instrumented runtime attached.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/fiberscope/fiberscope/buildtype"
	"github.com/fiberscope/fiberscope/hook"
	"github.com/fiberscope/fiberscope/internal/logging"
)

// Renderer is the scripted renderer handle the driver injects.
type Renderer struct {
	Name string
	desc buildtype.Descriptor
}

// BuildDescriptor implements buildtype.Describer.
func (r *Renderer) BuildDescriptor() buildtype.Descriptor {
	return r.desc
}

// root is the driver's fiber root implementation.
type root struct {
	state *hook.FiberState
}

func (r *root) Current() *hook.FiberState {
	return r.state
}

// rendererState tracks one scripted renderer across steps.
type rendererState struct {
	id      hook.RendererID
	handle  *Renderer
	root    *root
	mounted bool
}

// Driver injects scripted renderers into a hook and commits fiber roots on a
// fixed cadence. Activity is deterministic: each renderer mounts, re-commits
// a few times, unmounts, and starts over.
type Driver struct {
	hook     *hook.Hook
	logger   *logging.Logger
	interval time.Duration

	renderers []rendererState
	step      int
}

// New creates a driver for count scripted renderers. Nothing is injected
// until Run or Inject is called, so observers can subscribe first.
func New(h *hook.Hook, count int, interval time.Duration, logger *logging.Logger) *Driver {
	if logger == nil {
		logger = logging.NopLogger()
	}
	d := &Driver{
		hook:     h,
		logger:   logger.WithComponent("demo"),
		interval: interval,
	}
	for i := 0; i < count; i++ {
		d.renderers = append(d.renderers, rendererState{
			handle: &Renderer{
				Name: fmt.Sprintf("renderer-%d", i+1),
				desc: descriptorFor(i),
			},
		})
	}
	return d
}

// descriptorFor cycles through the build-type families so the observer sees
// every classification at least once.
func descriptorFor(i int) buildtype.Descriptor {
	switch i % 4 {
	case 0:
		return buildtype.Descriptor{Version: "18.2.0", BundleType: 1}
	case 1:
		return buildtype.Descriptor{
			Version:         "17.0.2",
			FindFiberSource: "function(a,b){return c(a,b)}",
		}
	case 2:
		return buildtype.Descriptor{
			HasMount:         true,
			RenderRootSource: "function(a,b){return c._registerComponent(a,b)}",
		}
	default:
		return buildtype.Descriptor{
			HasMount:         true,
			RenderRootSource: "function(nextElement, container){warn('render should be a pure function of props and state');return mount(nextElement, container)}",
		}
	}
}

// Inject announces every scripted renderer to the hook. Safe to call once;
// Run calls it if it has not happened yet.
func (d *Driver) Inject() {
	for i := range d.renderers {
		r := &d.renderers[i]
		if r.id != "" {
			continue
		}
		r.id = d.hook.Inject(r.handle)
		d.logger.Info("injected scripted renderer", "name", r.handle.Name, "renderer_id", r.id)
	}
}

// Step advances the script by one round of commits. Exposed separately from
// Run so tests can drive the script without timers.
func (d *Driver) Step() {
	d.step++
	for i := range d.renderers {
		r := &d.renderers[i]
		if r.id == "" {
			continue
		}

		// Stagger renderers so they don't all flip at once.
		phase := (d.step + i) % 6
		switch {
		case !r.mounted:
			r.root = &root{state: &hook.FiberState{Element: r.handle.Name + "-app"}}
			d.hook.OnCommitFiberRoot(r.id, r.root)
			r.mounted = true
		case phase == 0:
			r.root.state = nil
			d.hook.OnCommitFiberRoot(r.id, r.root)
			d.hook.OnCommitFiberUnmount(r.id, r.handle.Name+"-fiber")
			r.mounted = false
		default:
			// Re-commit the mounted root; membership stays unchanged.
			d.hook.OnCommitFiberRoot(r.id, r.root)
		}
	}
}

// Run injects the scripted renderers and then steps the script on the
// configured interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context) {
	d.Inject()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("demo driver stopped")
			return
		case <-ticker.C:
			d.Step()
		}
	}
}
