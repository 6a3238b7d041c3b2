package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/umbra/dom/memdom"
)

func markedFactory(marker string) ComponentFactory {
	return func(reg *Registry) (Component, error) {
		c := &Base{}
		if err := c.Construct(reg, "x-"+marker, `<p class="`+marker+`">x</p>`); err != nil {
			return nil, err
		}
		return c, nil
	}
}

func TestRegisterFirstWins(t *testing.T) {
	reg := NewRegistry(memdom.NewHost())

	reg.RegisterComponents(Definition{Tag: "user-card", New: markedFactory("first")})
	reg.RegisterComponents(Definition{Tag: "user-card", New: markedFactory("second")})

	def, ok := reg.Lookup("user-card")
	require.True(t, ok)

	instance, err := def.New(reg)
	require.NoError(t, err)
	assert.NotNil(t, instance.Scope().QuerySelector(".first"))
	assert.Nil(t, instance.Scope().QuerySelector(".second"))
}

func TestRegisterIdempotent(t *testing.T) {
	reg := NewRegistry(memdom.NewHost())

	def := Definition{Tag: "nav-bar", New: markedFactory("nav")}
	for i := 0; i < 5; i++ {
		reg.RegisterComponents(def)
	}

	assert.Equal(t, []string{"nav-bar"}, reg.Tags())
}

func TestRegisterManyAtOnce(t *testing.T) {
	reg := NewRegistry(memdom.NewHost())

	reg.RegisterComponents(
		Definition{Tag: "nav-bar", New: markedFactory("nav")},
		Definition{Tag: "user-card", New: markedFactory("card")},
		Definition{Tag: "nav-bar", New: markedFactory("dup")},
	)

	assert.Equal(t, []string{"nav-bar", "user-card"}, reg.Tags())
}

func TestRegisterSkipsIncompleteDefinitions(t *testing.T) {
	reg := NewRegistry(memdom.NewHost())

	reg.RegisterComponents(
		Definition{Tag: "", New: markedFactory("x")},
		Definition{Tag: "no-factory", New: nil},
	)

	assert.Empty(t, reg.Tags())
}

func TestRegisterNormalizesCase(t *testing.T) {
	reg := NewRegistry(memdom.NewHost())

	reg.RegisterComponents(Definition{Tag: " User-Card ", New: markedFactory("a")})
	reg.RegisterComponents(Definition{Tag: "user-card", New: markedFactory("b")})

	assert.Equal(t, []string{"user-card"}, reg.Tags())

	_, ok := reg.Lookup("USER-CARD")
	assert.True(t, ok)
}

func TestRegisterDefinesTagWithHost(t *testing.T) {
	host := memdom.NewHost()
	reg := NewRegistry(host)

	reg.RegisterComponents(Definition{Tag: "user-card", New: markedFactory("a")})
	assert.True(t, host.Defined("user-card"))
}
