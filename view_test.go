package pugl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchord/go-pugl/internal/native"
)

func TestNewViewDefaults(t *testing.T) {
	m := memSetup(t)

	v, err := NewView(&recordingHandler{})
	require.NoError(t, err)
	defer v.Close()

	assert.True(t, v.Alive())
	assert.False(t, v.Visible(), "views start hidden")
	assert.Equal(t, HintOn, v.HintValue(HintIgnoreKeyRepeat), "key repeat is filtered by default")
	assert.Equal(t, 1, m.LiveViews())
}

func TestNewViewNilHandler(t *testing.T) {
	memSetup(t)
	_, err := NewView(nil)
	require.Error(t, err)
}

func TestShowWithoutSizeFails(t *testing.T) {
	memSetup(t)

	v, err := NewView(&recordingHandler{})
	require.NoError(t, err)
	defer v.Close()

	err = v.Show()
	var st *StatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, StatusBadConfiguration, st.Status)
	assert.False(t, v.Visible())
}

func TestShowAdoptsDefaultSize(t *testing.T) {
	memSetup(t)

	v, err := NewView(&recordingHandler{}, WithDefaultSize(640, 480))
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Show())
	assert.True(t, v.Visible())
	assert.Equal(t, Size{W: 640, H: 480}, v.Frame().Size)
}

func TestFrameSurvivesHideAndShow(t *testing.T) {
	memSetup(t)

	v, err := NewView(&recordingHandler{},
		WithFrame(Rect{Pos: Coord{X: 30, Y: 40}, Size: Size{W: 200, H: 100}}))
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Show())
	require.NoError(t, v.Hide())
	require.NoError(t, v.Show())
	assert.Equal(t, Rect{Pos: Coord{X: 30, Y: 40}, Size: Size{W: 200, H: 100}}, v.Frame())
}

func TestViewOptions(t *testing.T) {
	m := memSetup(t)

	v, err := NewView(&recordingHandler{},
		WithTitle("scope"),
		WithBackend(BackendStub),
		WithResizable(true),
		WithKeyRepeat(true),
		WithDoubleBuffer(true),
		WithDefaultSize(320, 240),
	)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	assert.Equal(t, "scope", m.ViewTitle(handle))
	assert.Equal(t, native.BackendStub, m.ViewBackend(handle))
	assert.Equal(t, HintOn, v.HintValue(HintResizable))
	assert.Equal(t, HintOff, v.HintValue(HintIgnoreKeyRepeat), "WithKeyRepeat(true) clears the filter")
	assert.Equal(t, HintOn, v.HintValue(HintDoubleBuffer))
}

func TestDispatchRoutesEvents(t *testing.T) {
	m := memSetup(t)

	h := &recordingHandler{}
	v, err := NewView(h, WithDefaultSize(100, 80))
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)

	m.Queue(handle, native.NewExposeRecord(native.ExposeData{X: 10, Y: 20, Width: 100, Height: 50}))
	require.NoError(t, v.Update(0))
	require.Len(t, h.exposes, 1)
	assert.Equal(t, Expose{Pos: Coord{X: 10, Y: 20}, Size: Size{W: 100, H: 50}}, h.exposes[0])
	require.Len(t, h.canvases, 1)
	assert.NotNil(t, h.canvases[0], "expose always carries a canvas")
	assert.Zero(t, h.canvases[0].Raw(), "mem driver canvases are inert")

	m.Queue(handle, native.NewConfigureRecord(native.ConfigureData{Width: 300, Height: 200}))
	require.NoError(t, v.Update(0))
	assert.Equal(t, []Size{{W: 300, H: 200}}, h.resizes)

	m.Queue(handle, native.NewRawRecord(native.EventClose, 0))
	require.NoError(t, v.Update(0))
	assert.Equal(t, 1, h.closes)
	assert.True(t, v.Alive(), "a close request does not close the view")

	m.Queue(handle, native.NewKeyRecord(native.EventKeyPress, native.KeyData{Key: 'q'}))
	require.NoError(t, v.Update(0))
	require.Len(t, h.events, 1)
	assert.Equal(t, Key{Rune: 'q'}, h.events[0].(KeyPress).Key)
}

func TestDispatchDeliversOnePerUpdate(t *testing.T) {
	m := memSetup(t)

	h := &recordingHandler{}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	m.Queue(handle, native.NewRawRecord(native.EventFocusIn, 0))
	m.Queue(handle, native.NewRawRecord(native.EventFocusOut, 0))

	require.NoError(t, v.Update(0))
	assert.Len(t, h.events, 1)

	require.NoError(t, v.Update(0))
	assert.Len(t, h.events, 2)
}

func TestDispatchFocusFallsBackToEvent(t *testing.T) {
	m := memSetup(t)

	h := &recordingHandler{}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	m.Queue(handle, native.NewRawRecord(native.EventFocusIn, 0))
	m.Queue(handle, native.NewRawRecord(native.EventFocusOut, 0))
	require.NoError(t, v.Update(0))
	require.NoError(t, v.Update(0))

	assert.Equal(t, []Event{FocusIn{}, FocusOut{}}, h.events)
}

func TestDispatchCapabilityInterfaces(t *testing.T) {
	m := memSetup(t)

	h := &capabilityHandler{}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	m.Queue(handle, native.NewRawRecord(native.EventFocusIn, 0))
	m.Queue(handle, native.NewRawRecord(native.EventFocusOut, 0))
	m.Queue(handle, native.NewTimerRecord(native.TimerData{ID: 4}))
	for i := 0; i < 3; i++ {
		require.NoError(t, v.Update(0))
	}

	assert.Equal(t, []bool{true, false}, h.focus)
	assert.Equal(t, []uintptr{4}, h.timers)
	assert.Empty(t, h.events, "claimed events must not reach Event")
}

func TestDispatchSkipsLifecycleAndUnknown(t *testing.T) {
	m := memSetup(t)

	h := &recordingHandler{}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	m.Queue(handle, native.NewRawRecord(native.EventClient, 0))
	m.Queue(handle, native.NewRawRecord(native.EventType(77), 0))
	m.Queue(handle, native.NewRawRecord(native.EventFocusIn, 0))
	for i := 0; i < 3; i++ {
		require.NoError(t, v.Update(0))
	}

	// Only the focus event survives; the loop keeps running through
	// the skipped ones.
	assert.Equal(t, []Event{FocusIn{}}, h.events)
}

func TestDispatchHandlerErrorDoesNotStopLoop(t *testing.T) {
	m := memSetup(t)

	h := &recordingHandler{eventErr: fmt.Errorf("synth exploded")}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	handle := native.ViewHandle(2)
	m.Queue(handle, native.NewRawRecord(native.EventFocusIn, 0))
	m.Queue(handle, native.NewRawRecord(native.EventFocusOut, 0))

	require.NoError(t, v.Update(0))
	require.NoError(t, v.Update(0))
	assert.Len(t, h.events, 2)
}

func TestViewTimers(t *testing.T) {
	m := memSetup(t)

	h := &capabilityHandler{}
	v, err := NewView(h)
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.StartTimer(1, 0))
	handle := native.ViewHandle(2)
	m.FireTimer(handle, 1)
	require.NoError(t, v.Update(0))
	assert.Equal(t, []uintptr{1}, h.timers)

	require.NoError(t, v.StopTimer(1))

	err = v.StopTimer(99)
	var st *StatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, StatusFailure, st.Status)
}

func TestViewCloseIdempotent(t *testing.T) {
	m := memSetup(t)

	v, err := NewView(&recordingHandler{})
	require.NoError(t, err)
	id := v.World().ID()

	require.NoError(t, v.Close())
	require.NoError(t, v.Close(), "second close is a no-op")

	assert.False(t, v.Alive())
	assert.Len(t, m.FreedViews, 1)
	assert.Len(t, m.FreedWorlds, 1)
	assert.Equal(t, 0, WorldCount(id))
}

func TestViewOpsAfterClose(t *testing.T) {
	memSetup(t)

	v, err := NewView(&recordingHandler{})
	require.NoError(t, err)
	require.NoError(t, v.Close())

	assert.ErrorIs(t, v.Show(), ErrViewClosed)
	assert.ErrorIs(t, v.SetTitle("x"), ErrViewClosed)
	assert.ErrorIs(t, v.Update(0), ErrViewClosed)
	assert.ErrorIs(t, v.StartTimer(1, 0), ErrViewClosed)
	assert.False(t, v.Visible())
	assert.Equal(t, Rect{}, v.Frame())

	_, err = v.NativeWindow()
	assert.ErrorIs(t, err, ErrViewClosed)
}

func TestNewViewRollbackOnFailure(t *testing.T) {
	m := memSetup(t)

	m.FailNextView = true
	_, err := NewView(&recordingHandler{})
	require.Error(t, err)
	assert.Equal(t, 0, m.LiveWorlds(), "the acquired world must be released on rollback")

	// A failing option step must roll back both view and world.
	boom := func(c *viewConfig) {
		c.step(func(*View) error { return errors.New("option failed") })
	}
	_, err = NewView(&recordingHandler{}, boom)
	require.Error(t, err)
	assert.Equal(t, 0, m.LiveWorlds())
	assert.Equal(t, 0, m.LiveViews())
}

func TestNativeWindowAfterRealize(t *testing.T) {
	memSetup(t)

	v, err := NewView(&recordingHandler{}, WithDefaultSize(64, 64))
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Realize())
	win, err := v.NativeWindow()
	require.NoError(t, err)
	assert.NotZero(t, win)
}

func TestPostRedisplayQueuesExpose(t *testing.T) {
	memSetup(t)

	h := &recordingHandler{}
	v, err := NewView(h, WithDefaultSize(50, 40))
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Realize())
	require.NoError(t, v.PostRedisplay())
	require.NoError(t, v.PostRedisplayRect(Rect{Pos: Coord{X: 1, Y: 2}, Size: Size{W: 3, H: 4}}))

	// Drain the realize records first, then the two exposes.
	for i := 0; i < 4; i++ {
		require.NoError(t, v.Update(0))
	}
	require.Len(t, h.exposes, 2)
	assert.Equal(t, Expose{Size: Size{W: 50, H: 40}}, h.exposes[0])
	assert.Equal(t, Expose{Pos: Coord{X: 1, Y: 2}, Size: Size{W: 3, H: 4}}, h.exposes[1])
}
