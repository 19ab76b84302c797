package cart

import "sync"

// Registry is an ordered set of change listeners.
// Each Subscribe call creates a distinct registration, even for the same func.
type Registry struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []registration
}

type registration struct {
	id uint64
	fn func()
}

func (r *Registry) Subscribe(fn func()) (unsubscribe func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, registration{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners)
}

// Notify calls listeners in subscription order on the calling goroutine.
// Listeners registered or removed during Notify take effect on the next call.
func (r *Registry) Notify() {
	r.mu.Lock()
	snapshot := make([]func(), len(r.listeners))
	for i, l := range r.listeners {
		snapshot[i] = l.fn
	}
	r.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.listeners {
		if l.id == id {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			return
		}
	}
}
