package formfield

import (
	"fmt"
	"sync"
)

// Registry holds the handles currently mounted in one form. Mounting and
// unmounting happen from the UI side; readers take a snapshot with Handles.
type Registry struct {
	mu      sync.RWMutex
	handles []Handle
	index   map[string]int
}

func NewRegistry(handles ...Handle) (*Registry, error) {
	r := &Registry{index: make(map[string]int)}
	for _, h := range handles {
		if _, err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register mounts a handle and returns a func that unmounts it.
func (r *Registry) Register(h Handle) (func(), error) {
	if h == nil {
		return nil, ErrNilHandle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index == nil {
		r.index = make(map[string]int)
	}
	id := h.ID()
	if _, ok := r.index[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateField, id)
	}
	r.index[id] = len(r.handles)
	r.handles = append(r.handles, h)

	return func() { r.Unregister(id) }, nil
}

// Unregister unmounts the handle with the given id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return
	}
	r.handles = append(r.handles[:pos], r.handles[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.handles); i++ {
		r.index[r.handles[i].ID()] = i
	}
}

// Handles returns a snapshot of mounted handles in registration order.
// A nil registry has no handles; the read methods all accept one.
func (r *Registry) Handles() []Handle {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Handle, len(r.handles))
	copy(out, r.handles)
	return out
}

// Get returns the handle with the given id.
func (r *Registry) Get(id string) (Handle, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.handles[pos], true
}

// ByPath returns the mounted handles that resolve to path, in registration order.
func (r *Registry) ByPath(path string) []Handle {
	if path == "" {
		return nil
	}
	var out []Handle
	for _, h := range r.Handles() {
		if Resolve(h) == path {
			out = append(out, h)
		}
	}
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
