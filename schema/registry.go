package schema

import "github.com/puzpuzpuz/xsync/v3"

// Registry is a concurrency-safe, shared directory of named Schemas:
// grammar packages register their nested-record Schemas once at init time
// so that tooling built on top of this module (eg. a `flowio` introspection
// command, or a future language server) can look up "what shape does the
// eth() record have" without reaching into package-private vars.
type Registry struct {
	schemas *xsync.MapOf[string, *Schema]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: xsync.NewMapOf[string, *Schema]()}
}

// Register adds sch under name, overwriting any previous entry.
func (r *Registry) Register(name string, sch *Schema) {
	r.schemas.Store(name, sch)
}

// Lookup returns the Schema registered under name, if any.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	return r.schemas.Load(name)
}

// Names returns every registered Schema name, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.schemas.Size())
	r.schemas.Range(func(key string, _ *Schema) bool {
		names = append(names, key)
		return true
	})
	return names
}
