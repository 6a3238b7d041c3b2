// Package appcomponents contains the demo application's pages and
// nested components. Markup constants live in templates_gen.go and are
// regenerated from templates/ with umbra-bundle.
package appcomponents

import (
	"github.com/vcrobe/umbra/runtime"
)

// Definitions returns the nested component registrations the demo
// pages rely on. The bootstrap registers these once, before the router
// starts.
func Definitions() []runtime.Definition {
	return []runtime.Definition{
		{Tag: "nav-bar", New: NewNavBar},
	}
}

// NavBar is a nested component upgraded wherever a page template
// contains a <nav-bar> tag.
type NavBar struct {
	runtime.Base
}

// NewNavBar constructs a NavBar instance with its own render scope.
func NewNavBar(reg *runtime.Registry) (runtime.Component, error) {
	c := &NavBar{}
	if err := c.Construct(reg, "nav-bar", NavBarHTML); err != nil {
		return nil, err
	}
	return c, nil
}
