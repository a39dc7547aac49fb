package notify

// Observer receives registry activity from a Manager. Implementations must be
// safe for concurrent use and must not call back into the Manager.
//
// Registered, Forgotten and Cleared are called while the Manager holds its
// registry lock, so they arrive in the order the changes were applied.
// Dispatched is called after the callbacks ran, without the lock.
type Observer interface {
	// Registered is called after a callback was added under key.
	Registered(key string)
	// Forgotten is called with the number of registrations removed under key.
	Forgotten(key string, n int)
	// Dispatched is called once per Notify for a known key with the number of
	// callbacks invoked and how many of them failed.
	Dispatched(key string, invoked, failed int)
	// Cleared is called after Reset discarded every registration.
	Cleared()
}

type noopObserver struct{}

func (noopObserver) Registered(string)           {}
func (noopObserver) Forgotten(string, int)       {}
func (noopObserver) Dispatched(string, int, int) {}
func (noopObserver) Cleared()                    {}
