package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	s := New(3)
	assert.Equal(t, 3, s.Get())

	s.Set(7)
	assert.Equal(t, 7, s.Get())
}

func TestSubscribeNotifies(t *testing.T) {
	s := New("a")

	var got []string
	s.Subscribe(func(v string) { got = append(got, v) })

	s.Set("b")
	s.Set("c")
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestUpdate(t *testing.T) {
	s := New(10)

	var got int
	s.Subscribe(func(v int) { got = v })

	s.Update(func(v int) int { return v * 2 })
	assert.Equal(t, 20, s.Get())
	assert.Equal(t, 20, got)
}

func TestUnsubscribe(t *testing.T) {
	s := New(0)

	first, second := 0, 0
	unsubscribe := s.Subscribe(func(int) { first++ })
	s.Subscribe(func(int) { second++ })

	s.Set(1)
	unsubscribe()
	s.Set(2)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	// Unsubscribing twice is safe.
	assert.NotPanics(t, unsubscribe)
	s.Set(3)
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, second)
}
