package view

import "github.com/blackwell-systems/atelierctl/internal/shop"

// Registry is the refresh dispatcher: it maps the view ids named by the
// render-dependency graph to render functions and re-invokes exactly
// the set a mutation reports.
type Registry struct {
	fns map[shop.View]func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: map[shop.View]func(){}}
}

// Register binds a render function to a view id, replacing any previous
// binding.
func (r *Registry) Register(id shop.View, fn func()) {
	r.fns[id] = fn
}

// Refresh invokes the renderers for the given ids, in order. Unbound
// ids are skipped: a page that does not host a view simply never
// registers it.
func (r *Registry) Refresh(ids ...shop.View) {
	for _, id := range ids {
		if fn := r.fns[id]; fn != nil {
			fn()
		}
	}
}
