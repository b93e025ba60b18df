package pugl

import (
	"testing"

	"github.com/openchord/go-pugl/draw"
	"github.com/openchord/go-pugl/internal/native"
)

// memSetup points the package at a fresh in-memory driver and an
// empty registry for the duration of one test.
func memSetup(t *testing.T) *native.Mem {
	t.Helper()
	m := native.NewMem()
	drv = m
	worlds = newWorldRegistry()
	t.Cleanup(func() {
		drv = nil
		worlds = newWorldRegistry()
	})
	return m
}

// recordingHandler captures everything dispatch routes to it.
type recordingHandler struct {
	events   []Event
	exposes  []Expose
	canvases []*draw.Canvas
	resizes  []Size
	closes   int
	eventErr error
}

func (h *recordingHandler) Event(ev Event) error {
	h.events = append(h.events, ev)
	return h.eventErr
}

func (h *recordingHandler) Exposed(ev Expose, cr *draw.Canvas) {
	h.exposes = append(h.exposes, ev)
	h.canvases = append(h.canvases, cr)
}

func (h *recordingHandler) Resized(size Size) {
	h.resizes = append(h.resizes, size)
}

func (h *recordingHandler) CloseRequested() {
	h.closes++
}

// capabilityHandler adds the optional focus and timer methods.
type capabilityHandler struct {
	recordingHandler
	focus  []bool
	timers []uintptr
}

func (h *capabilityHandler) FocusChanged(focused bool) {
	h.focus = append(h.focus, focused)
}

func (h *capabilityHandler) TimerFired(id uintptr) {
	h.timers = append(h.timers, id)
}

func TestDriverName(t *testing.T) {
	memSetup(t)
	name, err := DriverName()
	if err != nil {
		t.Fatalf("DriverName() error: %v", err)
	}
	if name != "mem" {
		t.Fatalf("DriverName() = %q, want mem", name)
	}
}
