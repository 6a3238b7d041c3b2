package runtime

import (
	"sort"
	"strings"
	"sync"

	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dom"
)

// Registry is the process-wide mapping from custom tag names to
// component factories. It is created explicitly by the bootstrap code
// against a rendering host; there is no implicit package-level instance
// and no registration at package load time.
//
// Registration is insert-if-absent: each tag maps to at most one
// factory, re-registering a known tag is a no-op, and registrations
// commute, so callers need no ordering discipline.
type Registry struct {
	mu   sync.Mutex
	host dom.Host
	defs map[string]Definition
}

// NewRegistry creates an empty registry bound to the given host. Tags
// registered here are also defined with the host's tag facility.
func NewRegistry(host dom.Host) *Registry {
	return &Registry{
		host: host,
		defs: make(map[string]Definition),
	}
}

// RegisterComponents inserts each definition whose tag is not already
// present. Later registrations of a known tag are silently ignored;
// the call never fails. Definitions with an empty tag or nil factory
// are skipped with a debug diagnostic.
func (r *Registry) RegisterComponents(defs ...Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, def := range defs {
		tag := strings.ToLower(strings.TrimSpace(def.Tag))
		if tag == "" || def.New == nil {
			console.Debug("registerComponents: skipping incomplete definition", def.Tag)
			continue
		}
		if _, exists := r.defs[tag]; exists {
			continue // first registration wins
		}
		if r.host != nil {
			if err := r.host.DefineTag(tag); err != nil {
				console.Warn("registerComponents: host rejected tag", tag, err.Error())
				continue
			}
		}
		def.Tag = tag
		r.defs[tag] = def
	}
}

// Lookup returns the definition for a tag, if registered.
func (r *Registry) Lookup(tag string) (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.defs[strings.ToLower(tag)]
	return def, ok
}

// Host returns the rendering host the registry was created against.
func (r *Registry) Host() dom.Host { return r.host }

// Tags returns the registered tag names, sorted.
func (r *Registry) Tags() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.defs))
	for tag := range r.defs {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
