package appcomponents

import (
	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/runtime"
)

// HomePage is the landing view. Navigation is injected as a callback so
// the component never depends on the router.
type HomePage struct {
	runtime.Base
	navigate func(path string) error
}

// NewHomePage constructs the landing view and wires its buttons.
func NewHomePage(reg *runtime.Registry, navigate func(string) error) (runtime.View, error) {
	p := &HomePage{navigate: navigate}
	if err := p.Construct(reg, "home-page", HomePageHTML); err != nil {
		return nil, err
	}
	p.AddEventListeners(
		runtime.EventBinding{Target: "#go-about", Event: "click", Callback: p.goTo("/about")},
		runtime.EventBinding{Target: "#go-counter", Event: "click", Callback: p.goTo("/counter")},
	)
	return p, nil
}

func (p *HomePage) goTo(path string) dom.EventHandler {
	return func(dom.Event) {
		if p.navigate == nil {
			return
		}
		if err := p.navigate(path); err != nil {
			console.Error("navigate", path, "failed:", err.Error())
		}
	}
}
