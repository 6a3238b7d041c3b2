// Package testcomponents holds shared fixtures for exercising the
// component runtime and the router natively: views that record their
// lifecycle and views whose initialization blocks until released.
package testcomponents

import (
	"context"
	"sync"

	"github.com/vcrobe/umbra/dom"
	"github.com/vcrobe/umbra/runtime"
)

// ViewHTML is a minimal valid template for fixture views.
const ViewHTML = `<div class="view"><p>view</p></div>`

// Recorder collects lifecycle events in the order they happen.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many times event was recorded.
func (r *Recorder) Count(event string) int {
	n := 0
	for _, e := range r.Events() {
		if e == event {
			n++
		}
	}
	return n
}

// StaticView records its mount, unmount and teardown into a Recorder.
type StaticView struct {
	runtime.Base
	Name string
	rec  *Recorder
}

// NewStaticView constructs a recording view named name.
func NewStaticView(reg *runtime.Registry, name string, rec *Recorder) (*StaticView, error) {
	v := &StaticView{Name: name, rec: rec}
	if err := v.Construct(reg, name+"-view", ViewHTML); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *StaticView) record(event string) {
	if v.rec != nil {
		v.rec.Record(v.Name + ":" + event)
	}
}

// Mount records the event before delegating to Base.
func (v *StaticView) Mount(parent dom.Element) {
	v.record("mount")
	v.Base.Mount(parent)
}

// Unmount records the event before delegating to Base.
func (v *StaticView) Unmount() {
	v.record("unmount")
	v.Base.Unmount()
}

// OnDestroy records the teardown hook firing.
func (v *StaticView) OnDestroy() {
	v.record("destroy")
}

// BlockingView is a StaticView whose OnInit blocks until Release is
// closed. Started is closed as soon as OnInit begins, so tests can
// navigate away while the initialization is provably in flight.
type BlockingView struct {
	StaticView
	Started   chan struct{}
	Release   chan struct{}
	InitErr   error
	startOnce sync.Once
}

// NewBlockingView constructs a blocking recording view named name.
func NewBlockingView(reg *runtime.Registry, name string, rec *Recorder) (*BlockingView, error) {
	v := &BlockingView{
		Started: make(chan struct{}),
		Release: make(chan struct{}),
	}
	v.Name = name
	v.rec = rec
	if err := v.Construct(reg, name+"-view", ViewHTML); err != nil {
		return nil, err
	}
	return v, nil
}

// OnInit blocks until the test releases it or the navigation is
// superseded and the context cancelled.
func (v *BlockingView) OnInit(ctx context.Context) error {
	v.startOnce.Do(func() { close(v.Started) })
	select {
	case <-v.Release:
		v.record("init:done")
		return v.InitErr
	case <-ctx.Done():
		v.record("init:cancelled")
		return ctx.Err()
	}
}
