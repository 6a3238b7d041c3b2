package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/umbra/dom"
)

const cardHTML = `<div class="card">
	<h2 id="title">Hello</h2>
	<input id="name" value="initial">
</div>`

func TestNewScopeParsesMarkup(t *testing.T) {
	h := NewHost()

	scope, err := h.NewScope(cardHTML)
	require.NoError(t, err)

	title := scope.QuerySelector("#title")
	require.NotNil(t, title)
	assert.Equal(t, "h2", title.TagName())
	assert.Equal(t, "Hello", title.Text())

	input := scope.QuerySelector("input")
	require.NotNil(t, input)
	assert.Equal(t, "initial", input.Value())
}

func TestNewScopeIsolation(t *testing.T) {
	h := NewHost()

	a, err := h.NewScope(cardHTML)
	require.NoError(t, err)
	b, err := h.NewScope(cardHTML)
	require.NoError(t, err)

	a.QuerySelector("#title").SetText("Mutated")
	a.QuerySelector("input").SetValue("changed")

	// Mutating one scope never affects another built from the same markup.
	assert.Equal(t, "Hello", b.QuerySelector("#title").Text())
	assert.Equal(t, "initial", b.QuerySelector("input").Value())
}

func TestNewScopeClonesDropListeners(t *testing.T) {
	h := NewHost()

	a, err := h.NewScope(cardHTML)
	require.NoError(t, err)

	fired := 0
	a.QuerySelector("#title").AddEventListener("click", func(dom.Event) { fired++ })

	b, err := h.NewScope(cardHTML)
	require.NoError(t, err)
	b.QuerySelector("#title").Dispatch("click")

	assert.Zero(t, fired, "a later scope must start with no bindings")
}

func TestNewScopeBadMarkup(t *testing.T) {
	h := NewHost()

	_, err := h.NewScope("")
	require.ErrorIs(t, err, dom.ErrBadMarkup)

	_, err = h.NewScope("   \n\t ")
	require.ErrorIs(t, err, dom.ErrBadMarkup)

	// Text with no elements is not a usable scope either.
	_, err = h.NewScope("just text")
	require.ErrorIs(t, err, dom.ErrBadMarkup)
}

func TestDefineTag(t *testing.T) {
	h := NewHost()

	require.NoError(t, h.DefineTag("user-card"))
	require.NoError(t, h.DefineTag("User-Card")) // redefining is a no-op
	assert.True(t, h.Defined("user-card"))
	assert.False(t, h.Defined("other-tag"))

	require.Error(t, h.DefineTag("  "))
}

func TestElementTree(t *testing.T) {
	h := NewHost()
	scope, err := h.NewScope(`<ul><li>one</li><li>two</li></ul>`)
	require.NoError(t, err)

	list := scope.QuerySelector("ul")
	require.NotNil(t, list)
	require.Len(t, list.Children(), 2)
	assert.Equal(t, "one two", list.Text())

	first := list.Children()[0]
	assert.Equal(t, list, first.Parent())

	first.Remove()
	require.Len(t, list.Children(), 1)
	assert.Nil(t, first.Parent())

	// Re-attaching moves the element back under the list.
	list.AppendChild(first)
	require.Len(t, list.Children(), 2)
	assert.Equal(t, "two one", list.Text())
}

func TestSetTextDropsChildren(t *testing.T) {
	h := NewHost()
	scope, err := h.NewScope(`<div id="box"><span>inner</span></div>`)
	require.NoError(t, err)

	box := scope.QuerySelector("#box")
	box.SetText("flat")

	assert.Empty(t, box.Children())
	assert.Equal(t, "flat", box.Text())
	assert.Nil(t, scope.QuerySelector("span"))
}

func TestValueOnlyOnInputLike(t *testing.T) {
	h := NewHost()
	scope, err := h.NewScope(`<div id="box">text</div><textarea id="ta"></textarea>`)
	require.NoError(t, err)

	box := scope.QuerySelector("#box")
	box.SetValue("ignored")
	assert.Equal(t, "", box.Value())

	ta := scope.QuerySelector("#ta")
	ta.SetValue("typed")
	assert.Equal(t, "typed", ta.Value())
}

func TestDispatchInvokesHandlersInOrder(t *testing.T) {
	h := NewHost()
	scope, err := h.NewScope(`<button id="go">Go</button>`)
	require.NoError(t, err)

	btn := scope.QuerySelector("#go")
	var got []string
	btn.AddEventListener("click", func(ev dom.Event) {
		got = append(got, "first:"+ev.Type)
	})
	btn.AddEventListener("click", func(ev dom.Event) {
		got = append(got, "second:"+ev.Type)
	})

	btn.Dispatch("click")
	assert.Equal(t, []string{"first:click", "second:click"}, got)

	// Other events do not fire click handlers.
	btn.Dispatch("input")
	assert.Len(t, got, 2)
}
