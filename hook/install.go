package hook

import "sync"

// Host is the explicit stand-in for the host global object: whatever
// top-level context owns the process carries one Host, and the hook lives on
// it as a single property. The zero value is ready to use.
type Host struct {
	mu   sync.Mutex
	hook *Hook
}

// Install attaches a new hook to the host. Installation is idempotent: when
// a hook is already present it is returned untouched and the options are
// ignored. Install never fails.
func Install(host *Host, opts ...Option) *Hook {
	host.mu.Lock()
	defer host.mu.Unlock()

	if host.hook != nil {
		return host.hook
	}
	host.hook = New(opts...)
	return host.hook
}

// Installed returns the hook currently attached to the host, if any.
func (host *Host) Installed() (*Hook, bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.hook, host.hook != nil
}
