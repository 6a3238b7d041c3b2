package appcomponents

import (
	"github.com/vcrobe/umbra/runtime"
)

// NotFoundPage is the router's fallback view for unmatched paths.
type NotFoundPage struct {
	runtime.Base
}

// NewNotFoundPage constructs the fallback view showing the missing path.
func NewNotFoundPage(reg *runtime.Registry, path string) (runtime.View, error) {
	p := &NotFoundPage{}
	if err := p.Construct(reg, "not-found-page", NotFoundHTML); err != nil {
		return nil, err
	}
	if el := p.Get("#missing-path"); el != nil {
		el.SetText("No page at " + path)
	}
	return p, nil
}
