//go:build js || wasm

package appcomponents

import (
	"fmt"

	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dialogs"
	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/runtime"
	"github.com/vcrobe/umbra/signals"
)

// CounterPage keeps its state in a Signal and subscribes the count
// label to it. The subscription is released in the teardown hook.
type CounterPage struct {
	runtime.Base
	navigate    func(path string) error
	count       *signals.Signal[int]
	unsubscribe func()
}

// NewCounterPage constructs the counter view.
func NewCounterPage(reg *runtime.Registry, navigate func(string) error) (runtime.View, error) {
	p := &CounterPage{
		navigate: navigate,
		count:    signals.New(0),
	}
	if err := p.Construct(reg, "counter-page", CounterPageHTML); err != nil {
		return nil, err
	}

	p.unsubscribe = p.count.Subscribe(func(v int) {
		if el := p.Get("#count-label"); el != nil {
			el.SetText(fmt.Sprintf("Count: %d", v))
		}
	})

	p.AddEventListeners(
		runtime.EventBinding{Target: "#increment", Event: "click", Callback: p.increment},
		runtime.EventBinding{Target: "#reset", Event: "click", Callback: p.reset},
		runtime.EventBinding{Target: "#back-home", Event: "click", Callback: p.goHome},
	)
	return p, nil
}

func (p *CounterPage) increment(dom.Event) {
	p.count.Update(func(v int) int { return v + 1 })
}

func (p *CounterPage) reset(dom.Event) {
	if dialogs.Confirm("Reset the counter?") {
		p.count.Set(0)
	}
}

func (p *CounterPage) goHome(dom.Event) {
	if p.navigate == nil {
		return
	}
	if err := p.navigate("/"); err != nil {
		console.Error("navigate home failed:", err.Error())
	}
}

// OnDestroy releases the signal subscription before the view is
// removed from the mount location.
func (p *CounterPage) OnDestroy() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}
