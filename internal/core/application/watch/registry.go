package watch

import "sync"

// Registry tracks the feeds currently open so the periodic resync job can
// reach all of them. Feeds register on open and must deregister on close.
type Registry struct {
	mu    sync.Mutex
	feeds map[*Feed]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{feeds: make(map[*Feed]struct{})}
}

// Register adds a feed.
func (r *Registry) Register(f *Feed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeds[f] = struct{}{}
}

// Deregister removes a feed. Removing an unknown feed is a no-op.
func (r *Registry) Deregister(f *Feed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.feeds, f)
}

// Len returns the number of registered feeds.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.feeds)
}

// RefreshAll asks every registered feed to re-read the store.
func (r *Registry) RefreshAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for f := range r.feeds {
		f.Refresh()
	}
}
