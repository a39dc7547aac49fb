package notify

import "sync"

// SharedName is the name of the process-wide manager returned by Shared.
const SharedName = "shared"

var (
	sharedMu sync.Mutex
	shared   *Manager
)

// Shared returns the process-wide Manager, creating it on first use.
func Shared() *Manager {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = New(WithName(SharedName))
	}
	return shared
}

// SetShared replaces the process-wide Manager, for example with one built by
// NewFromConfig at startup. Passing nil drops it so the next Shared call
// creates a fresh one.
func SetShared(m *Manager) {
	sharedMu.Lock()
	shared = m
	sharedMu.Unlock()
}

// ResetShared drops the process-wide Manager. Intended for test isolation.
func ResetShared() {
	SetShared(nil)
}
