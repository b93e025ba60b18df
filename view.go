package pugl

import (
	"fmt"
	"time"

	"github.com/openchord/go-pugl/draw"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/openchord/go-pugl/internal/native"
)

// Backend selects how a view draws.
type Backend int

const (
	// BackendCairo hands the expose handler a cairo drawing canvas.
	BackendCairo Backend = iota
	// BackendStub opens a view without drawing support.
	BackendStub
)

func (b Backend) String() string {
	switch b {
	case BackendCairo:
		return "cairo"
	case BackendStub:
		return "stub"
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

func (b Backend) native() native.Backend {
	if b == BackendStub {
		return native.BackendStub
	}
	return native.BackendCairo
}

// Hint identifies one view hint. Values match the native library.
type Hint int32

const (
	HintUseCompatProfile Hint = iota
	HintUseDebugContext
	HintContextVersionMajor
	HintContextVersionMinor
	HintRedBits
	HintGreenBits
	HintBlueBits
	HintAlphaBits
	HintDepthBits
	HintStencilBits
	HintSamples
	HintDoubleBuffer
	HintSwapInterval
	HintResizable
	HintIgnoreKeyRepeat
	HintRefreshRate
)

// HintValue is a view hint setting. Numeric hints take the number
// directly; boolean hints use HintOn and HintOff.
type HintValue int32

const (
	HintDefault HintValue = -1
	HintOff     HintValue = 0
	HintOn      HintValue = 1
)

// Cursor identifies a pointer cursor shape.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorCaret
	CursorCrosshair
	CursorHand
	CursorNo
	CursorLeftRight
	CursorUpDown
)

// Handler receives the typed events of one view. Expose, resize and
// close requests arrive through their own methods; everything else
// comes through Event.
type Handler interface {
	// Event receives every typed event without a dedicated method
	// below. Returning an error logs it and reports a failure to the
	// native loop; it does not stop dispatch.
	Event(ev Event) error
	// Exposed asks for a repaint of a region. The canvas draws
	// through cairo for cairo-backed views and is inert otherwise.
	Exposed(ev Expose, cr *draw.Canvas)
	// Resized reports the view's new size.
	Resized(size Size)
	// CloseRequested is the window manager asking the view to close.
	// The view stays open until Close is called.
	CloseRequested()
}

// FocusHandler is implemented by handlers that want keyboard focus
// changes through a dedicated method instead of Event.
type FocusHandler interface {
	FocusChanged(focused bool)
}

// TimerHandler is implemented by handlers that want timer expiries
// through a dedicated method instead of Event.
type TimerHandler interface {
	TimerFired(id uintptr)
}

// View is one on-screen surface and its event stream. Views are
// created with NewView and must be closed to release their world
// reference.
type View struct {
	handle  native.ViewHandle
	world   *World
	drv     native.Driver
	handler Handler
	backend Backend
	closed  bool
}

// NewView creates a view dispatching to handler. Without WithWorld
// the view creates its own world; with it, the view shares the
// given world and extends its lifetime until Close.
func NewView(handler Handler, opts ...ViewOption) (*View, error) {
	if handler == nil {
		return nil, fmt.Errorf("pugl: new view: nil handler")
	}
	cfg := defaultViewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id, kind, class := WorldID(0), cfg.worldKind, cfg.className
	if cfg.world != nil {
		id, kind = cfg.world.id, cfg.world.kind
	}
	w, err := worlds.acquire(id, kind, class)
	if err != nil {
		return nil, err
	}

	h, err := w.drv.NewView(w.handle)
	if err != nil {
		worlds.release(w.id)
		return nil, fmt.Errorf("pugl: new view: %w", err)
	}
	v := &View{
		handle:  h,
		world:   w,
		drv:     w.drv,
		handler: handler,
		backend: cfg.backend,
	}
	w.drv.SetEventFunc(h, v.dispatch)
	if st := w.drv.SetBackend(h, cfg.backend.native()); st != native.StatusSuccess {
		v.Close()
		return nil, &StatusError{Op: "set backend", Status: Status(st)}
	}
	// Key repeat filtering is on unless WithKeyRepeat asked for it.
	w.drv.SetViewHint(h, native.HintIgnoreKeyRepeat, native.HintTrue)

	for _, step := range cfg.steps {
		if err := step(v); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

// dispatch is the native event entry point for this view. It never
// aborts the loop: conversion failures are logged and the event is
// dropped.
func (v *View) dispatch(rec *native.Record) native.Status {
	ev, err := convertEvent(rec)
	if err != nil {
		if lifecycleTags[rec.Kind()] {
			logger.Debugf("pugl: skipping %s event", rec.Kind())
		} else {
			logger.Warnf("pugl: dropping event: %v", err)
		}
		return native.StatusSuccess
	}
	switch e := ev.(type) {
	case Expose:
		v.handler.Exposed(e, draw.Wrap(v.drv.Context(v.handle)))
		return native.StatusSuccess
	case Resize:
		v.handler.Resized(e.Size)
		return native.StatusSuccess
	case Close:
		v.handler.CloseRequested()
		return native.StatusSuccess
	case FocusIn:
		if fh, ok := v.handler.(FocusHandler); ok {
			fh.FocusChanged(true)
			return native.StatusSuccess
		}
	case FocusOut:
		if fh, ok := v.handler.(FocusHandler); ok {
			fh.FocusChanged(false)
			return native.StatusSuccess
		}
	case Timer:
		if th, ok := v.handler.(TimerHandler); ok {
			th.TimerFired(e.ID)
			return native.StatusSuccess
		}
	}
	if err := v.handler.Event(ev); err != nil {
		logger.Errorf("pugl: event handler: %v", err)
		return native.StatusFailure
	}
	return native.StatusSuccess
}

// Close frees the native view and releases the world reference.
// Closing twice is harmless; the release happens once.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.drv.FreeView(v.handle)
	return worlds.release(v.world.id)
}

// Alive reports whether the view has not been closed.
func (v *View) Alive() bool { return !v.closed }

// World is the world this view runs on. Pass it to NewView with
// WithWorld to share the event loop with another view.
func (v *View) World() *World { return v.world }

func (v *View) guard(op string) error {
	if v.closed {
		return fmt.Errorf("pugl: %s: %w", op, ErrViewClosed)
	}
	return nil
}

// Realize creates the window system resources. Show realizes
// implicitly; calling Realize first is only needed to query the
// native window before showing it, e.g. for embedding.
func (v *View) Realize() error {
	if err := v.guard("realize"); err != nil {
		return err
	}
	return statusErr("realize", v.drv.Realize(v.handle))
}

// Show maps the view onto the screen, realizing it if needed. A
// view with neither a frame nor a default size cannot be shown.
func (v *View) Show() error {
	if err := v.guard("show"); err != nil {
		return err
	}
	return statusErr("show", v.drv.Show(v.handle))
}

// Hide unmaps the view. The frame is kept for the next Show.
func (v *View) Hide() error {
	if err := v.guard("hide"); err != nil {
		return err
	}
	return statusErr("hide", v.drv.Hide(v.handle))
}

// Visible reports whether the view is mapped.
func (v *View) Visible() bool {
	if v.closed {
		return false
	}
	return v.drv.Visible(v.handle)
}

// Frame reports the view's position and size.
func (v *View) Frame() Rect {
	if v.closed {
		return Rect{}
	}
	return rectOf(v.drv.Frame(v.handle))
}

// SetFrame moves and resizes the view.
func (v *View) SetFrame(r Rect) error {
	if err := v.guard("set frame"); err != nil {
		return err
	}
	return statusErr("set frame", v.drv.SetFrame(v.handle, r.frame()))
}

// SetDefaultSize sets the size used when the view is realized
// without a frame. It has no effect after realization.
func (v *View) SetDefaultSize(width, height int) error {
	if err := v.guard("set default size"); err != nil {
		return err
	}
	return statusErr("set default size", v.drv.SetDefaultSize(v.handle, int32(width), int32(height)))
}

// SetMinSize bounds how small the window system may make the view.
func (v *View) SetMinSize(width, height int) error {
	if err := v.guard("set min size"); err != nil {
		return err
	}
	return statusErr("set min size", v.drv.SetMinSize(v.handle, int32(width), int32(height)))
}

// SetMaxSize bounds how large the window system may make the view.
func (v *View) SetMaxSize(width, height int) error {
	if err := v.guard("set max size"); err != nil {
		return err
	}
	return statusErr("set max size", v.drv.SetMaxSize(v.handle, int32(width), int32(height)))
}

// SetAspectRatio constrains resizing between minW:minH and maxW:maxH.
func (v *View) SetAspectRatio(minW, minH, maxW, maxH int) error {
	if err := v.guard("set aspect ratio"); err != nil {
		return err
	}
	return statusErr("set aspect ratio",
		v.drv.SetAspectRatio(v.handle, int32(minW), int32(minH), int32(maxW), int32(maxH)))
}

// SetTitle sets the window title.
func (v *View) SetTitle(title string) error {
	if err := v.guard("set title"); err != nil {
		return err
	}
	return statusErr("set title", v.drv.SetTitle(v.handle, title))
}

// SetCursor sets the pointer cursor shown over the view.
func (v *View) SetCursor(cur Cursor) error {
	if err := v.guard("set cursor"); err != nil {
		return err
	}
	return statusErr("set cursor", v.drv.SetCursor(v.handle, native.Cursor(cur)))
}

// SetHint sets a view hint. Most hints only take effect before the
// view is realized.
func (v *View) SetHint(h Hint, value HintValue) error {
	if err := v.guard("set hint"); err != nil {
		return err
	}
	return statusErr("set hint", v.drv.SetViewHint(v.handle, native.Hint(h), int32(value)))
}

// HintValue reads back a view hint. Realization fills in hints left
// at HintDefault with what the system chose.
func (v *View) HintValue(h Hint) HintValue {
	if v.closed {
		return HintDefault
	}
	return HintValue(v.drv.ViewHint(v.handle, native.Hint(h)))
}

// PostRedisplay asks for an expose of the whole view on the next
// update cycle.
func (v *View) PostRedisplay() error {
	if err := v.guard("post redisplay"); err != nil {
		return err
	}
	return statusErr("post redisplay", v.drv.PostRedisplay(v.handle))
}

// PostRedisplayRect asks for an expose of one region.
func (v *View) PostRedisplayRect(r Rect) error {
	if err := v.guard("post redisplay rect"); err != nil {
		return err
	}
	return statusErr("post redisplay rect", v.drv.PostRedisplayRect(v.handle, r.frame()))
}

// StartTimer delivers Timer events with the given id at the given
// period. Starting an id again reschedules it. The period is a hint;
// the native library may round it to its tick resolution.
func (v *View) StartTimer(id uintptr, period time.Duration) error {
	if err := v.guard("start timer"); err != nil {
		return err
	}
	return statusErr("start timer", v.drv.StartTimer(v.handle, id, period.Seconds()))
}

// StopTimer cancels a running timer. Stopping an unknown id fails.
func (v *View) StopTimer(id uintptr) error {
	if err := v.guard("stop timer"); err != nil {
		return err
	}
	return statusErr("stop timer", v.drv.StopTimer(v.handle, id))
}

// NativeWindow is the window system's id for the realized view: an
// X11 Window, a Cocoa NSView pointer, depending on platform.
func (v *View) NativeWindow() (uintptr, error) {
	if err := v.guard("native window"); err != nil {
		return 0, err
	}
	return v.drv.NativeWindow(v.handle), nil
}

// Update drives this view's world once. See World.Update.
func (v *View) Update(timeout time.Duration) error {
	if err := v.guard("update"); err != nil {
		return err
	}
	return v.world.Update(timeout)
}
