// Package runtime holds the component model: the Component and View
// capabilities, the Base struct components embed, and the tag Registry.
package runtime

import (
	"context"

	"github.com/vcrobe/umbra/dom"
)

// Component is the capability every UI component implements: access to
// its own encapsulated render scope plus scoped lookup and scoped event
// binding. Components never reach outside their scope and never depend
// on the router.
type Component interface {
	// Scope returns the root of the component's render scope.
	Scope() dom.Element

	// Tag returns the component's declared custom tag.
	Tag() string
}

// View is a Component the router mounts and unmounts wholesale at its
// mount location. Embedding Base provides a default implementation.
type View interface {
	Component

	// Mount inserts the view's scope under the given parent.
	Mount(parent dom.Element)

	// Unmount removes the view's scope from its parent.
	Unmount()
}

// Initializer is the optional asynchronous initialization hook. The
// router runs OnInit before mounting the view and discards the view if
// the navigation has been superseded by the time OnInit returns. The
// context is cancelled when the navigation is superseded.
type Initializer interface {
	OnInit(ctx context.Context) error
}

// Cleaner is the optional teardown hook, invoked exactly once on a
// mounted view before it is removed from the mount location.
type Cleaner interface {
	OnDestroy()
}

// ComponentFactory builds a fully constructed component instance. A
// factory that cannot construct its instance (malformed markup, failed
// nested construction) returns the error; construction failures are
// fatal and are never swallowed.
type ComponentFactory func(reg *Registry) (Component, error)

// Definition pairs a custom tag name with the factory the registry
// consults when the tag is encountered inside another scope.
type Definition struct {
	Tag string
	New ComponentFactory
}
