// Package router keeps exactly one view mounted at a single mount
// location, reflecting the most recently requested navigation path.
//
// Routes are matched first-in-registration-order, teardown of the
// outgoing view always completes before the incoming view is mounted,
// and a navigation that is still awaiting its view's OnInit hook is
// superseded by any newer Navigate call: the stale result is discarded
// and never touches the mount location.
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/runtime"
)

// ErrNoRoute is returned by Navigate when no pattern matches the path
// and no not-found factory is installed.
var ErrNoRoute = errors.New("router: no route for path")

// Config carries optional router collaborators.
type Config struct {
	// History overrides the default history backend (browser history
	// under js/wasm, MemoryHistory natively).
	History History
}

// Router owns the route table and the mount location. The mount
// location must not be written by anything else while the router is
// alive.
type Router struct {
	mu       sync.Mutex
	mount    dom.Element
	routes   []Route
	notFound ViewFactory
	history  History

	current     runtime.View
	currentPath string

	// seq is the newest requested navigation; settled is the newest one
	// that reached a terminal state. They differ while a navigation is
	// in flight.
	seq     uint64
	settled uint64

	cancelPending context.CancelFunc
}

// New creates a router that mounts views under mount.
func New(mount dom.Element, cfg *Config) *Router {
	if cfg == nil {
		cfg = &Config{}
	}
	h := cfg.History
	if h == nil {
		h = defaultHistory()
	}
	return &Router{mount: mount, history: h}
}

// Handle appends a route. Registration order is match precedence: when
// patterns overlap, the earliest registered one wins.
func (r *Router) Handle(pattern string, f ViewFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, Route{Pattern: pattern, Factory: f})
}

// HandleNotFound installs the factory used when no route matches.
// Without one, Navigate returns ErrNoRoute for unmatched paths and the
// current view stays mounted.
func (r *Router) HandleNotFound(f ViewFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = f
}

// Start subscribes to host history signals (back/forward re-enter the
// navigation logic without pushing a new entry) and resolves the
// current location.
func (r *Router) Start() error {
	r.history.Listen(func(path string) {
		if err := r.navigate(path, false); err != nil {
			console.Error("history navigation failed:", err.Error())
		}
	})
	return r.navigate(r.history.Location(), false)
}

// Navigate resolves path to a view and makes it the single mounted
// view, pushing a history entry. Construction failures are returned to
// the caller; a navigation superseded while awaiting its view's OnInit
// is discarded silently.
func (r *Router) Navigate(path string) error {
	return r.navigate(path, true)
}

func (r *Router) navigate(path string, push bool) error {
	if path == "" {
		path = "/"
	}

	r.mu.Lock()
	r.seq++
	seq := r.seq
	if r.cancelPending != nil {
		// A newer request supersedes the in-flight navigation.
		r.cancelPending()
		r.cancelPending = nil
	}
	factory, params := r.resolve(path)
	r.mu.Unlock()

	if factory == nil {
		r.settle(seq)
		if hint := r.nearestPattern(path); hint != "" {
			console.Warn("no route for", path, "- nearest pattern:", hint)
		}
		return fmt.Errorf("%w: %s", ErrNoRoute, path)
	}

	view, err := factory(params)
	if err != nil {
		r.settle(seq)
		return fmt.Errorf("navigate %s: %w", path, err)
	}

	if push {
		r.history.Push(path)
	}

	if init, ok := view.(runtime.Initializer); ok {
		ctx, cancel := context.WithCancel(context.Background())
		r.mu.Lock()
		if seq != r.seq {
			// Superseded during construction; never run the hook.
			r.mu.Unlock()
			cancel()
			return nil
		}
		r.cancelPending = cancel
		r.mu.Unlock()

		go func() {
			r.complete(seq, path, view, init.OnInit(ctx))
		}()
		return nil
	}

	r.complete(seq, path, view, nil)
	return nil
}

// resolve returns the factory for the first matching route in
// registration order, or the not-found factory, or nil. Callers hold mu.
func (r *Router) resolve(path string) (ViewFactory, map[string]string) {
	for _, rt := range r.routes {
		if params, ok := rt.match(path); ok {
			return rt.Factory, params
		}
	}
	if r.notFound != nil {
		return r.notFound, map[string]string{"path": path}
	}
	return nil, nil
}

// complete applies the resolved navigation unless it has been
// superseded. For a transition that mounts, the outgoing view's
// teardown hook fires exactly once and its removal completes before the
// incoming view is inserted.
func (r *Router) complete(seq uint64, path string, view runtime.View, initErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		console.Debug("navigation to", path, "superseded; result discarded")
		return
	}
	r.cancelPending = nil
	r.settled = seq

	if initErr != nil {
		console.Error("navigation to", path, "abandoned: init failed:", initErr.Error())
		return
	}

	if old := r.current; old != nil {
		if c, ok := old.(runtime.Cleaner); ok {
			c.OnDestroy()
		}
		old.Unmount()
	}
	view.Mount(r.mount)
	r.current = view
	r.currentPath = path
}

// settle marks seq terminal without mounting anything.
func (r *Router) settle(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq == r.seq {
		r.settled = seq
	}
}

// nearestPattern returns the registered pattern closest to path, if it
// is close enough to look like a typo.
func (r *Router) nearestPattern(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	best, bestDist := "", len(path)/2+1
	for _, rt := range r.routes {
		if d := levenshtein.ComputeDistance(path, rt.Pattern); d < bestDist {
			best, bestDist = rt.Pattern, d
		}
	}
	return best
}

// CurrentPath returns the path of the mounted view, "" before the first
// completed navigation.
func (r *Router) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentPath
}

// CurrentView returns the mounted view, nil if none.
func (r *Router) CurrentView() runtime.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigating reports whether a navigation is in flight.
func (r *Router) Navigating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq != r.settled
}

// Cleanup releases the history listener.
func (r *Router) Cleanup() {
	r.history.Close()
}
