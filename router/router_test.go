package router

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/dom/memdom"
	"github.com/vcrobe/umbra/runtime"
	tc "github.com/vcrobe/umbra/testcomponents"
)

const eventually = 2 * time.Second
const tick = 5 * time.Millisecond

type fixture struct {
	reg     *runtime.Registry
	mount   dom.Element
	history *MemoryHistory
	router  *Router
	rec     *tc.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	host := memdom.NewHost()
	f := &fixture{
		reg:     runtime.NewRegistry(host),
		mount:   host.NewElement("main"),
		history: NewMemoryHistory(),
		rec:     tc.NewRecorder(),
	}
	f.router = New(f.mount, &Config{History: f.history})
	t.Cleanup(f.router.Cleanup)
	return f
}

// static registers a plain recording view under pattern. The counter,
// when non-nil, tracks how many instances the factory created.
func (f *fixture) static(pattern, name string, count *int) {
	f.router.Handle(pattern, func(params map[string]string) (runtime.View, error) {
		if count != nil {
			*count++
		}
		return tc.NewStaticView(f.reg, name, f.rec)
	})
}

func TestNavigateMountsView(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)

	require.NoError(t, f.router.Navigate("/"))

	assert.Len(t, f.mount.Children(), 1)
	assert.Equal(t, "/", f.router.CurrentPath())
	assert.NotNil(t, f.router.CurrentView())
	assert.Equal(t, []string{"home:mount"}, f.rec.Events())
	assert.False(t, f.router.Navigating())
}

func TestTeardownBeforeMount(t *testing.T) {
	f := newFixture(t)
	f.static("/a", "a", nil)
	f.static("/b", "b", nil)

	require.NoError(t, f.router.Navigate("/a"))
	require.NoError(t, f.router.Navigate("/b"))

	// The outgoing view's teardown hook fires exactly once and its
	// removal completes before the incoming view is inserted.
	assert.Equal(t, []string{"a:mount", "a:destroy", "a:unmount", "b:mount"}, f.rec.Events())
	assert.Len(t, f.mount.Children(), 1)
	assert.Equal(t, "/b", f.router.CurrentPath())
}

func TestNavigateUnmatchedWithoutFallback(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)
	require.NoError(t, f.router.Navigate("/"))

	err := f.router.Navigate("/missing")
	require.ErrorIs(t, err, ErrNoRoute)

	// The mounted view is untouched and the router is settled.
	assert.Equal(t, "/", f.router.CurrentPath())
	assert.Len(t, f.mount.Children(), 1)
	assert.Zero(t, f.rec.Count("home:destroy"))
	assert.False(t, f.router.Navigating())
}

func TestNavigateNotFoundFallback(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)
	f.router.HandleNotFound(func(params map[string]string) (runtime.View, error) {
		assert.Equal(t, "/missing", params["path"])
		return tc.NewStaticView(f.reg, "lost", f.rec)
	})

	require.NoError(t, f.router.Navigate("/missing"))

	assert.Equal(t, "/missing", f.router.CurrentPath())
	assert.Equal(t, 1, f.rec.Count("lost:mount"))
	assert.Len(t, f.mount.Children(), 1)
}

func TestConstructionFailurePropagates(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)
	require.NoError(t, f.router.Navigate("/"))

	boom := errors.New("boom")
	f.router.Handle("/broken", func(params map[string]string) (runtime.View, error) {
		return nil, boom
	})

	err := f.router.Navigate("/broken")
	require.ErrorIs(t, err, boom)

	assert.Equal(t, "/", f.router.CurrentPath())
	assert.Len(t, f.mount.Children(), 1)
	assert.False(t, f.router.Navigating())
}

func TestSupersession(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)

	var aView *tc.BlockingView
	f.router.Handle("/a", func(params map[string]string) (runtime.View, error) {
		v, err := tc.NewBlockingView(f.reg, "a", f.rec)
		aView = v
		return v, err
	})
	f.static("/b", "b", nil)

	require.NoError(t, f.router.Navigate("/"))

	// Start the slow navigation; it stays in flight on its init hook.
	require.NoError(t, f.router.Navigate("/a"))
	require.NotNil(t, aView)
	<-aView.Started
	assert.True(t, f.router.Navigating())

	// Supersede it before the init hook resolves.
	require.NoError(t, f.router.Navigate("/b"))

	assert.Equal(t, "/b", f.router.CurrentPath())
	assert.Len(t, f.mount.Children(), 1)
	assert.False(t, f.router.Navigating())

	// The superseded hook observes cancellation and its result is
	// discarded: the intermediate view is never mounted.
	require.Eventually(t, func() bool {
		return f.rec.Count("a:init:cancelled") == 1
	}, eventually, tick)
	assert.Zero(t, f.rec.Count("a:mount"))

	// The predecessor's teardown fired exactly once, for the transition
	// that actually mounted.
	assert.Equal(t, 1, f.rec.Count("home:destroy"))
	assert.Equal(t, 1, f.rec.Count("b:mount"))
}

func TestSlowInitMountsWhenNotSuperseded(t *testing.T) {
	f := newFixture(t)

	var aView *tc.BlockingView
	f.router.Handle("/a", func(params map[string]string) (runtime.View, error) {
		v, err := tc.NewBlockingView(f.reg, "a", f.rec)
		aView = v
		return v, err
	})

	require.NoError(t, f.router.Navigate("/a"))
	<-aView.Started
	assert.True(t, f.router.Navigating())
	assert.Empty(t, f.mount.Children(), "view must not mount before init resolves")

	close(aView.Release)

	require.Eventually(t, func() bool {
		return f.router.CurrentPath() == "/a"
	}, eventually, tick)
	assert.Len(t, f.mount.Children(), 1)
	assert.Equal(t, 1, f.rec.Count("a:mount"))
	assert.False(t, f.router.Navigating())
}

func TestInitFailureAbandonsNavigation(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)

	var aView *tc.BlockingView
	f.router.Handle("/a", func(params map[string]string) (runtime.View, error) {
		v, err := tc.NewBlockingView(f.reg, "a", f.rec)
		if err == nil {
			v.InitErr = errors.New("load failed")
		}
		aView = v
		return v, err
	})

	require.NoError(t, f.router.Navigate("/"))
	require.NoError(t, f.router.Navigate("/a"))
	<-aView.Started
	close(aView.Release)

	require.Eventually(t, func() bool {
		return !f.router.Navigating()
	}, eventually, tick)

	// The failed view never mounts; the previous view stays.
	assert.Equal(t, "/", f.router.CurrentPath())
	assert.Zero(t, f.rec.Count("a:mount"))
	assert.Zero(t, f.rec.Count("home:destroy"))
	assert.Len(t, f.mount.Children(), 1)
}

func TestBackSignalRoundTrip(t *testing.T) {
	f := newFixture(t)
	var aCount, bCount int
	f.static("/", "home", nil)
	f.static("/a", "a", &aCount)
	f.static("/b", "b", &bCount)

	require.NoError(t, f.router.Start())
	require.Equal(t, "/", f.router.CurrentPath())

	require.NoError(t, f.router.Navigate("/a"))
	firstA := f.router.CurrentView()
	require.NoError(t, f.router.Navigate("/b"))

	// Back re-resolves /a through the same logic without pushing a new
	// entry: same constructor, fresh instance.
	f.history.Back()
	assert.Equal(t, "/a", f.router.CurrentPath())
	assert.Equal(t, "/a", f.history.Location())
	assert.Equal(t, 2, aCount)
	secondA := f.router.CurrentView()
	assert.IsType(t, &tc.StaticView{}, secondA)
	assert.NotSame(t, firstA, secondA)

	// The forward entry survived, so the back signal did not push.
	f.history.Forward()
	assert.Equal(t, "/b", f.router.CurrentPath())
	assert.Equal(t, 2, bCount)
}

func TestFirstMatchPrecedence(t *testing.T) {
	f := newFixture(t)
	f.static("/x/{p}", "param", nil)
	f.static("/x/special", "special", nil)

	require.NoError(t, f.router.Navigate("/x/special"))

	// Registration order is precedence: the earlier, overlapping
	// pattern wins.
	assert.Equal(t, 1, f.rec.Count("param:mount"))
	assert.Zero(t, f.rec.Count("special:mount"))
}

func TestRouteParamsReachFactory(t *testing.T) {
	f := newFixture(t)
	var gotYear string
	f.router.Handle("/blog/{year}", func(params map[string]string) (runtime.View, error) {
		gotYear = params["year"]
		return tc.NewStaticView(f.reg, "blog", f.rec)
	})

	require.NoError(t, f.router.Navigate("/blog/2026"))
	assert.Equal(t, "2026", gotYear)
}

func TestStartResolvesCurrentLocation(t *testing.T) {
	f := newFixture(t)
	f.static("/", "home", nil)
	f.static("/about", "about", nil)

	f.history.Push("/about")
	require.NoError(t, f.router.Start())

	assert.Equal(t, "/about", f.router.CurrentPath())
	assert.Equal(t, 1, f.rec.Count("about:mount"))
	assert.Zero(t, f.rec.Count("home:mount"))
}
