package runtime

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vcrobe/umbra/console"
	"github.com/vcrobe/umbra/dom"
)

// EventBinding wires a callback to a descendant of the owning
// component's render scope. Target is either a scoped selector or the
// tag of a nested component. Bindings never resolve outside the scope.
type EventBinding struct {
	Target   string
	Event    string
	Callback dom.EventHandler
}

// Base is the struct components embed to gain encapsulated rendering
// and scoped interaction with their own descendants. A zero Base is
// inert until Construct is called.
type Base struct {
	reg      *Registry
	scope    dom.Element
	tag      string
	id       string
	bindings []EventBinding
	nested   []Component
}

// Compile-time assertion that embedding Base satisfies View.
var _ View = (*Base)(nil)

// Construct creates a fresh render scope populated with a deep copy of
// the parsed markup, then upgrades registered tags found inside it into
// nested component instances. Malformed markup or a failing nested
// factory is fatal and returned to the caller.
//
// No two instances ever share mutable render content: each Construct
// call owns its own copy.
func (b *Base) Construct(reg *Registry, tag, markup string) error {
	if reg == nil {
		return fmt.Errorf("construct %q: nil registry", tag)
	}
	scope, err := reg.Host().NewScope(markup)
	if err != nil {
		return fmt.Errorf("construct %q: %w", tag, err)
	}
	b.reg = reg
	b.scope = scope
	b.tag = strings.ToLower(strings.TrimSpace(tag))
	b.id = uuid.NewString()
	return b.upgrade()
}

// upgrade instantiates a component for every descendant element whose
// tag is registered, attaching the nested scope under the element.
// A component tag equal to the owner's own tag is skipped, so a
// template cannot recurse into itself.
func (b *Base) upgrade() error {
	var candidates []dom.Element
	var walk func(el dom.Element)
	walk = func(el dom.Element) {
		for _, child := range el.Children() {
			if def, ok := b.reg.Lookup(child.TagName()); ok && def.Tag != b.tag {
				candidates = append(candidates, child)
				continue // interior belongs to the nested component
			}
			walk(child)
		}
	}
	walk(b.scope)

	for _, el := range candidates {
		def, _ := b.reg.Lookup(el.TagName())
		instance, err := def.New(b.reg)
		if err != nil {
			return fmt.Errorf("construct nested %q: %w", def.Tag, err)
		}
		el.AppendChild(instance.Scope())
		b.nested = append(b.nested, instance)
	}
	return nil
}

// Get resolves a selector or nested-component tag within the instance's
// own render scope. Returns nil for a missing target, never an error.
// Repeated calls without intervening mutation return the same element.
func (b *Base) Get(target string) dom.Element {
	if b.scope == nil {
		return nil
	}
	return b.scope.QuerySelector(strings.TrimSpace(target))
}

// AddEventListeners attaches each binding whose target resolves inside
// the render scope. A binding whose target resolves to nothing is a
// silent no-op; a debug diagnostic is emitted but default behavior is
// unaffected.
func (b *Base) AddEventListeners(bindings ...EventBinding) {
	for _, binding := range bindings {
		if binding.Event == "" || binding.Callback == nil {
			continue
		}
		el := b.Get(binding.Target)
		if el == nil {
			console.Debug("addEventListeners: no element for target", binding.Target, "in", b.tag)
			continue
		}
		el.AddEventListener(binding.Event, binding.Callback)
		b.bindings = append(b.bindings, binding)
	}
}

// Value returns the value of the first input-like descendant within the
// scope, or "" if the scope has none.
func (b *Base) Value() string {
	for _, tag := range []string{"input", "textarea", "select"} {
		if el := b.Get(tag); el != nil {
			return el.Value()
		}
	}
	return ""
}

// Mount inserts the render scope under the given parent element.
func (b *Base) Mount(parent dom.Element) {
	if parent == nil || b.scope == nil {
		return
	}
	parent.AppendChild(b.scope)
}

// Unmount detaches the render scope from its parent.
func (b *Base) Unmount() {
	if b.scope != nil {
		b.scope.Remove()
	}
}

// Scope returns the root of the render scope, nil before Construct.
func (b *Base) Scope() dom.Element { return b.scope }

// Tag returns the declared tag passed to Construct.
func (b *Base) Tag() string { return b.tag }

// InstanceID returns the unique id assigned at construction, used in
// diagnostics.
func (b *Base) InstanceID() string { return b.id }

// Bindings returns the bindings successfully attached so far.
func (b *Base) Bindings() []EventBinding {
	out := make([]EventBinding, len(b.bindings))
	copy(out, b.bindings)
	return out
}

// Nested returns the component instances created while upgrading the
// scope's registered tags.
func (b *Base) Nested() []Component {
	out := make([]Component, len(b.nested))
	copy(out, b.nested)
	return out
}
