package hook

import "testing"

func TestInstall_ReturnsHook(t *testing.T) {
	host := &Host{}

	h := Install(host)
	if h == nil {
		t.Fatal("Install should return a hook")
	}

	got, ok := host.Installed()
	if !ok || got != h {
		t.Error("Installed should report the attached hook")
	}
}

func TestInstall_Idempotent(t *testing.T) {
	host := &Host{}

	first := Install(host)
	first.On("test.event", func(payload any) {})

	second := Install(host)
	if second != first {
		t.Fatal("second install must return the first-installed instance untouched")
	}
	if second.ListenerCount("test.event") != 1 {
		t.Error("existing hook state must survive a repeated install")
	}
}

func TestInstalled_EmptyHost(t *testing.T) {
	host := &Host{}

	if h, ok := host.Installed(); ok || h != nil {
		t.Error("a fresh host carries no hook")
	}
}
