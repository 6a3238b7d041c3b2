// Package dom defines the contract between umbra components and the
// rendering host. The host supplies encapsulated subtree creation,
// scoped queries and event wiring; components and the router only ever
// talk to these interfaces, never to a concrete document. This keeps
// every core package buildable and testable outside the browser.
//
// Two hosts ship with the module: dom/memdom (in-memory, used by all
// tests) and dom/jsdom (syscall/js, used under js/wasm builds).
package dom

import "errors"

// ErrBadMarkup is returned by Host.NewScope when the supplied markup
// cannot be parsed. Malformed markup is a fatal construction failure
// and is never swallowed.
var ErrBadMarkup = errors.New("dom: malformed markup")

// Event is the value passed to event handlers. Target is the element
// the event was dispatched on.
type Event struct {
	Type   string
	Target Element
}

// EventHandler is a callback attached to an element for a named event.
type EventHandler func(Event)

// Element is a single node inside a render scope. Lookups are always
// scoped: QuerySelector never escapes the subtree rooted at the
// receiver. All "not found" results are nil, never an error.
type Element interface {
	// TagName returns the lower-cased tag of the element.
	TagName() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// SetAttr sets the named attribute.
	SetAttr(name, value string)

	// Text returns the concatenated text content of the subtree.
	Text() string

	// SetText replaces the element's content with the given text.
	SetText(text string)

	// Value returns the current value of an input-like element
	// (input, textarea, select). For other elements it returns "".
	Value() string

	// SetValue sets the value of an input-like element.
	SetValue(value string)

	// QuerySelector returns the first descendant matching the selector,
	// or nil if none matches. The search is scoped to the receiver.
	QuerySelector(selector string) Element

	// QuerySelectorAll returns all descendants matching the selector,
	// in document order. Empty slice if none.
	QuerySelectorAll(selector string) []Element

	// AppendChild inserts the given element as the last child.
	AppendChild(child Element)

	// Remove detaches the element from its parent. Detaching an already
	// detached element is a no-op.
	Remove()

	// Children returns the element's direct child elements.
	Children() []Element

	// Parent returns the parent element, or nil for a detached or
	// scope-root element.
	Parent() Element

	// AddEventListener attaches a handler for the named event.
	AddEventListener(event string, h EventHandler)

	// Dispatch fires the named event on this element, invoking every
	// handler attached to it.
	Dispatch(event string)
}

// Host is the rendering host: the set of primitives the environment
// supplies to the component layer.
type Host interface {
	// NewScope parses markup and returns the root of a fresh
	// encapsulated subtree populated with a deep copy of the parsed
	// content. Scopes never share mutable content: mutating one scope
	// is invisible to every other scope built from the same markup.
	// Returns an error wrapping ErrBadMarkup if the markup cannot be
	// parsed.
	NewScope(markup string) (Element, error)

	// DefineTag records a custom tag with the host's registration
	// facility. Redefining a known tag is a no-op. Tag names are
	// lower-cased; an empty name is rejected.
	DefineTag(name string) error
}
