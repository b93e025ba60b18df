package native

import (
	"fmt"

	"github.com/openchord/go-pugl/internal/logger"
)

// Mem is an in-process Driver with no display dependency. It keeps
// the observable behavior of the platform library where that behavior
// matters to callers: views start hidden, showing an unsized view
// fails, realizing adopts the default size, and each Update delivers
// at most one queued record per view.
//
// Tests reach the extra inspection and injection surface through the
// concrete type.
type Mem struct {
	nextHandle uintptr
	worlds     map[WorldHandle]*memWorld
	views      map[ViewHandle]*memView
	viewOrder  []ViewHandle

	// FreedWorlds and FreedViews record destruction order.
	FreedWorlds []WorldHandle
	FreedViews  []ViewHandle

	// FailNextWorld and FailNextView make the next allocation fail.
	FailNextWorld bool
	FailNextView  bool

	closed bool
}

type memWorld struct {
	kind  WorldKind
	flags uint32
	class string
	time  float64
}

type memView struct {
	world    WorldHandle
	fn       EventFunc
	backend  Backend
	parent   uintptr
	hints    map[Hint]int32
	frame    Frame
	defaultW int32
	defaultH int32
	minW     int32
	minH     int32
	maxW     int32
	maxH     int32
	aspect   [4]int32
	title    string
	cursor   Cursor
	realized bool
	visible  bool
	timers   map[uintptr]float64
	queue    []Record
}

func NewMem() *Mem {
	return &Mem{
		nextHandle: 1,
		worlds:     make(map[WorldHandle]*memWorld),
		views:      make(map[ViewHandle]*memView),
	}
}

func configureOf(f Frame) Record {
	return NewConfigureRecord(ConfigureData{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height})
}

func exposeOf(f Frame) Record {
	return NewExposeRecord(ExposeData{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height})
}

func (m *Mem) handle() uintptr {
	h := m.nextHandle
	m.nextHandle++
	return h
}

func (m *Mem) Name() string { return "mem" }

func (m *Mem) NewWorld(kind WorldKind, flags uint32) (WorldHandle, error) {
	if m.FailNextWorld {
		m.FailNextWorld = false
		return 0, fmt.Errorf("native: world creation failed")
	}
	h := WorldHandle(m.handle())
	m.worlds[h] = &memWorld{kind: kind, flags: flags}
	return h, nil
}

func (m *Mem) FreeWorld(w WorldHandle) {
	if _, ok := m.worlds[w]; !ok {
		logger.Warnf("native: free of unknown world %#x", uintptr(w))
		return
	}
	delete(m.worlds, w)
	m.FreedWorlds = append(m.FreedWorlds, w)
}

func (m *Mem) SetClassName(w WorldHandle, name string) Status {
	mw, ok := m.worlds[w]
	if !ok {
		return StatusBadParameter
	}
	mw.class = name
	return StatusSuccess
}

func (m *Mem) Time(w WorldHandle) float64 {
	if mw, ok := m.worlds[w]; ok {
		return mw.time
	}
	return 0
}

// Update advances the world clock by the timeout and delivers at most
// one queued record to each of the world's views, in creation order.
func (m *Mem) Update(w WorldHandle, timeoutSeconds float64) Status {
	mw, ok := m.worlds[w]
	if !ok {
		return StatusBadParameter
	}
	if timeoutSeconds > 0 {
		mw.time += timeoutSeconds
	}
	for _, vh := range m.viewOrder {
		v, ok := m.views[vh]
		if !ok || v.world != w || len(v.queue) == 0 {
			continue
		}
		rec := v.queue[0]
		v.queue = v.queue[1:]
		if v.fn != nil {
			if st := v.fn(&rec); st != StatusSuccess {
				logger.Debugf("native: view %#x handler: %s", uintptr(vh), st)
			}
		}
	}
	return StatusSuccess
}

func (m *Mem) NewView(w WorldHandle) (ViewHandle, error) {
	if m.FailNextView {
		m.FailNextView = false
		return 0, fmt.Errorf("native: view creation failed")
	}
	if _, ok := m.worlds[w]; !ok {
		return 0, fmt.Errorf("native: view creation on unknown world")
	}
	h := ViewHandle(m.handle())
	m.views[h] = &memView{
		world:  w,
		hints:  make(map[Hint]int32),
		timers: make(map[uintptr]float64),
	}
	m.viewOrder = append(m.viewOrder, h)
	return h, nil
}

func (m *Mem) FreeView(v ViewHandle) {
	if _, ok := m.views[v]; !ok {
		logger.Warnf("native: free of unknown view %#x", uintptr(v))
		return
	}
	delete(m.views, v)
	for i, vh := range m.viewOrder {
		if vh == v {
			m.viewOrder = append(m.viewOrder[:i], m.viewOrder[i+1:]...)
			break
		}
	}
	m.FreedViews = append(m.FreedViews, v)
}

func (m *Mem) SetEventFunc(v ViewHandle, fn EventFunc) {
	if mv, ok := m.views[v]; ok {
		mv.fn = fn
	}
}

func (m *Mem) SetBackend(v ViewHandle, b Backend) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.backend = b
	return StatusSuccess
}

func (m *Mem) SetParentWindow(v ViewHandle, parent uintptr) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.parent = parent
	return StatusSuccess
}

func (m *Mem) SetViewHint(v ViewHandle, h Hint, value int32) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.hints[h] = value
	return StatusSuccess
}

func (m *Mem) ViewHint(v ViewHandle, h Hint) int32 {
	if mv, ok := m.views[v]; ok {
		if val, ok := mv.hints[h]; ok {
			return val
		}
	}
	return HintDontCare
}

func (m *Mem) SetFrame(v ViewHandle, f Frame) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.frame = f
	if mv.realized {
		mv.queue = append(mv.queue, configureOf(f))
	}
	return StatusSuccess
}

func (m *Mem) Frame(v ViewHandle) Frame {
	if mv, ok := m.views[v]; ok {
		return mv.frame
	}
	return Frame{}
}

func (m *Mem) SetDefaultSize(v ViewHandle, width, height int32) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.defaultW, mv.defaultH = width, height
	return StatusSuccess
}

func (m *Mem) SetMinSize(v ViewHandle, width, height int32) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.minW, mv.minH = width, height
	return StatusSuccess
}

func (m *Mem) SetMaxSize(v ViewHandle, width, height int32) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.maxW, mv.maxH = width, height
	return StatusSuccess
}

func (m *Mem) SetAspectRatio(v ViewHandle, minX, minY, maxX, maxY int32) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.aspect = [4]int32{minX, minY, maxX, maxY}
	return StatusSuccess
}

func (m *Mem) SetTitle(v ViewHandle, title string) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.title = title
	return StatusSuccess
}

func (m *Mem) SetCursor(v ViewHandle, c Cursor) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.cursor = c
	return StatusSuccess
}

// Realize sizes the view from its defaults when no frame was set and
// queues the creation records. Realizing twice is harmless.
func (m *Mem) Realize(v ViewHandle) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	if mv.realized {
		return StatusSuccess
	}
	if mv.frame.Width == 0 || mv.frame.Height == 0 {
		if mv.defaultW <= 0 || mv.defaultH <= 0 {
			return StatusBadConfiguration
		}
		mv.frame.Width = float64(mv.defaultW)
		mv.frame.Height = float64(mv.defaultH)
	}
	mv.realized = true
	mv.queue = append(mv.queue, NewRawRecord(EventCreate, 0), configureOf(mv.frame))
	return StatusSuccess
}

func (m *Mem) Show(v ViewHandle) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	if !mv.realized {
		if st := m.Realize(v); st != StatusSuccess {
			return st
		}
	}
	if mv.visible {
		return StatusSuccess
	}
	mv.visible = true
	paint := mv.frame
	paint.X, paint.Y = 0, 0
	mv.queue = append(mv.queue, NewRawRecord(EventMap, 0), exposeOf(paint))
	return StatusSuccess
}

func (m *Mem) Hide(v ViewHandle) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	if mv.visible {
		mv.visible = false
		mv.queue = append(mv.queue, NewRawRecord(EventUnmap, 0))
	}
	return StatusSuccess
}

func (m *Mem) Visible(v ViewHandle) bool {
	if mv, ok := m.views[v]; ok {
		return mv.visible
	}
	return false
}

func (m *Mem) PostRedisplay(v ViewHandle) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	paint := mv.frame
	paint.X, paint.Y = 0, 0
	mv.queue = append(mv.queue, exposeOf(paint))
	return StatusSuccess
}

func (m *Mem) PostRedisplayRect(v ViewHandle, f Frame) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.queue = append(mv.queue, exposeOf(f))
	return StatusSuccess
}

func (m *Mem) StartTimer(v ViewHandle, id uintptr, periodSeconds float64) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	mv.timers[id] = periodSeconds
	return StatusSuccess
}

func (m *Mem) StopTimer(v ViewHandle, id uintptr) Status {
	mv, ok := m.views[v]
	if !ok {
		return StatusBadParameter
	}
	if _, ok := mv.timers[id]; !ok {
		return StatusFailure
	}
	delete(mv.timers, id)
	return StatusSuccess
}

// Context returns zero: there is no drawing context in memory, and
// a fake pointer here would reach real drawing calls.
func (m *Mem) Context(ViewHandle) uintptr { return 0 }

func (m *Mem) NativeWindow(v ViewHandle) uintptr {
	if mv, ok := m.views[v]; ok && mv.realized {
		return uintptr(v) | 0x20000
	}
	return 0
}

func (m *Mem) Close() error {
	if m.closed {
		return fmt.Errorf("native: driver already closed")
	}
	m.closed = true
	return nil
}

// Queue appends a record to a view's pending events.
func (m *Mem) Queue(v ViewHandle, rec Record) {
	if mv, ok := m.views[v]; ok {
		mv.queue = append(mv.queue, rec)
	}
}

// Pending reports how many records a view has waiting.
func (m *Mem) Pending(v ViewHandle) int {
	if mv, ok := m.views[v]; ok {
		return len(mv.queue)
	}
	return 0
}

// ResizeView changes the frame size as a window manager would and
// queues the matching configure record.
func (m *Mem) ResizeView(v ViewHandle, width, height float64) {
	mv, ok := m.views[v]
	if !ok {
		return
	}
	mv.frame.Width, mv.frame.Height = width, height
	mv.queue = append(mv.queue, configureOf(mv.frame))
}

// FireTimer queues one expiry for a running timer. Firing a stopped
// timer does nothing, matching a race the platform library allows.
func (m *Mem) FireTimer(v ViewHandle, id uintptr) {
	mv, ok := m.views[v]
	if !ok {
		return
	}
	if _, running := mv.timers[id]; !running {
		return
	}
	mv.queue = append(mv.queue, NewTimerRecord(TimerData{ID: id}))
}

// AdvanceTime moves a world's clock without delivering events.
func (m *Mem) AdvanceTime(w WorldHandle, dt float64) {
	if mw, ok := m.worlds[w]; ok {
		mw.time += dt
	}
}

// LiveWorlds reports how many worlds have not been freed.
func (m *Mem) LiveWorlds() int { return len(m.worlds) }

// LiveViews reports how many views have not been freed.
func (m *Mem) LiveViews() int { return len(m.views) }

// WorldClass reports the class name last set on a world.
func (m *Mem) WorldClass(w WorldHandle) string {
	if mw, ok := m.worlds[w]; ok {
		return mw.class
	}
	return ""
}

// ViewTitle reports the title last set on a view.
func (m *Mem) ViewTitle(v ViewHandle) string {
	if mv, ok := m.views[v]; ok {
		return mv.title
	}
	return ""
}

// ViewBackend reports the backend selected for a view.
func (m *Mem) ViewBackend(v ViewHandle) Backend {
	if mv, ok := m.views[v]; ok {
		return mv.backend
	}
	return BackendStub
}

// TimerRunning reports whether a view timer is active.
func (m *Mem) TimerRunning(v ViewHandle, id uintptr) bool {
	if mv, ok := m.views[v]; ok {
		_, running := mv.timers[id]
		return running
	}
	return false
}
