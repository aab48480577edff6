package stamp

import "sync"

// ObjectID is a stable identifier assigned to a tracked object.
// Zero means "untracked".
type ObjectID uint32

// ObjectVersion counts modifications of a tracked object.
type ObjectVersion uint32

// Objects is the identity service a document model provides to the
// entities it tracks.
type Objects interface {
	// AllocateID returns a new identifier.
	AllocateID() ObjectID

	// BumpVersion records a modification of the object with the given id.
	BumpVersion(id ObjectID)
}

// Registry is an in-memory Objects implementation.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	next     ObjectID
	versions map[ObjectID]ObjectVersion
}

// NewRegistry creates an empty registry. The first allocated id is 1.
func NewRegistry() *Registry {
	return &Registry{versions: make(map[ObjectID]ObjectVersion)}
}

// AllocateID implements Objects.
func (r *Registry) AllocateID() ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.versions[r.next] = 0
	return r.next
}

// BumpVersion implements Objects. Unknown ids are ignored.
func (r *Registry) BumpVersion(id ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.versions[id]; ok {
		r.versions[id] = v + 1
	}
}

// Version returns the current version of id and whether id is known.
func (r *Registry) Version(id ObjectID) (ObjectVersion, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.versions[id]
	return v, ok
}

// Len returns the number of allocated ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.versions)
}
