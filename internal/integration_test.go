// Package internal contains integration tests that verify the hook, the
// observer bridge, and the demo driver work together the way the observe
// command wires them up.
package internal

import (
	"testing"
	"time"

	"github.com/fiberscope/fiberscope/hook"
	"github.com/fiberscope/fiberscope/internal/demo"
	"github.com/fiberscope/fiberscope/internal/tui"
)

// TestHookBridgeIntegration drives a hook through the bridge exactly like
// the observe command does and checks the event stream end to end.
func TestHookBridgeIntegration(t *testing.T) {
	host := &hook.Host{}
	h := hook.Install(host)

	events, teardown := tui.Bridge(h, 64)
	defer teardown()

	driver := demo.New(h, 4, time.Millisecond, nil)
	driver.Inject()

	// Every scripted renderer announces itself through the bridge.
	announced := 0
	for i := 0; i < 4; i++ {
		select {
		case ev := <-events:
			if ev.Kind != "renderer" {
				t.Fatalf("event %d kind = %q, want renderer", i, ev.Kind)
			}
			announced++
		default:
			t.Fatalf("expected 4 renderer announcements, got %d", announced)
		}
	}

	// One script step mounts a root per renderer and forwards each commit
	// through the helper the bridge registered.
	driver.Step()

	commits := 0
	drained := false
	for !drained {
		select {
		case ev := <-events:
			if ev.Kind == "commit" {
				commits++
			}
		default:
			drained = true
		}
	}
	if commits != 4 {
		t.Errorf("expected 4 commit events after one step, got %d", commits)
	}

	if h.RendererCount() != 4 {
		t.Errorf("RendererCount = %d, want 4", h.RendererCount())
	}
}

// TestInstallIsProcessWideIdempotent mirrors the double-install contract at
// the integration level: observer state must survive a second install.
func TestInstallIsProcessWideIdempotent(t *testing.T) {
	host := &hook.Host{}
	first := hook.Install(host)

	events, teardown := tui.Bridge(first, 8)
	defer teardown()

	second := hook.Install(host)
	if second != first {
		t.Fatal("second install must return the existing hook")
	}

	second.Inject(struct{}{})

	select {
	case ev := <-events:
		if ev.Kind != "renderer" {
			t.Errorf("kind = %q, want renderer", ev.Kind)
		}
	default:
		t.Error("bridge subscribed before the second install should still see events")
	}
}
