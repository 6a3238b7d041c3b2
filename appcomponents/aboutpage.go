package appcomponents

import (
	"context"
	"time"

	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/runtime"
)

// AboutPage demonstrates the asynchronous initialization hook: the
// router awaits OnInit before mounting, and abandons the result if the
// user navigates elsewhere in the meantime.
type AboutPage struct {
	runtime.Base
	navigate func(path string) error
}

// NewAboutPage constructs the about view.
func NewAboutPage(reg *runtime.Registry, navigate func(string) error) (runtime.View, error) {
	p := &AboutPage{navigate: navigate}
	if err := p.Construct(reg, "about-page", AboutPageHTML); err != nil {
		return nil, err
	}
	p.AddEventListeners(
		runtime.EventBinding{Target: "#back-home", Event: "click", Callback: p.goHome},
	)
	return p, nil
}

// OnInit simulates fetching page data before the view becomes visible.
func (p *AboutPage) OnInit(ctx context.Context) error {
	select {
	case <-time.After(150 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	if el := p.Get("#about-status"); el != nil {
		el.SetText("umbra: scoped components and a single-view router for the browser.")
	}
	return nil
}

func (p *AboutPage) goHome(dom.Event) {
	if p.navigate == nil {
		return
	}
	if err := p.navigate("/"); err != nil {
		console.Error("navigate home failed:", err.Error())
	}
}
