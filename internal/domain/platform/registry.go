package platform

import "sync"

// Registry is an immutable, ordered lookup table of platforms.
type Registry struct {
	ordered []Platform
	byID    map[string]int
}

// NewRegistry builds a registry from the given platforms. Later entries with
// a duplicate ID are ignored.
func NewRegistry(platforms ...Platform) *Registry {
	r := &Registry{
		ordered: make([]Platform, 0, len(platforms)),
		byID:    make(map[string]int, len(platforms)),
	}
	for _, p := range platforms {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = len(r.ordered)
		r.ordered = append(r.ordered, p.clone())
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry of DefaultPlatforms. It is built
// on first use and never modified afterwards.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(DefaultPlatforms()...)
	})
	return defaultRegistry
}

// All returns every platform in catalog order.
func (r *Registry) All() []Platform {
	out := make([]Platform, len(r.ordered))
	for i, p := range r.ordered {
		out[i] = p.clone()
	}
	return out
}

// ByID looks up a platform by identifier.
func (r *Registry) ByID(id string) (Platform, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Platform{}, false
	}
	return r.ordered[i].clone(), true
}

// Has reports whether id is a known platform.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns platform identifiers in catalog order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		ids[i] = p.ID
	}
	return ids
}
