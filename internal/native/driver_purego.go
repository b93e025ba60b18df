//go:build linux || darwin || freebsd

package native

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/openchord/go-pugl/internal/logger"
)

// puregoDriver binds the pugl shared library without cgo. One
// process-wide callback trampoline serves every view; per-view
// dispatch goes through the views map, which is safe because all
// driver calls and all native callbacks happen on the update thread.
type puregoDriver struct {
	lib      uintptr
	cairoLib uintptr
	stubLib  uintptr

	trampoline uintptr
	views      map[ViewHandle]EventFunc

	cairoBackend uintptr
	stubBackend  uintptr

	puglNewWorld          func(uint32, uint32) uintptr
	puglFreeWorld         func(uintptr)
	puglSetClassName      func(uintptr, string) uint32
	puglGetTime           func(uintptr) float64
	puglUpdate            func(uintptr, float64) uint32
	puglNewView           func(uintptr) uintptr
	puglFreeView          func(uintptr)
	puglSetEventFunc      func(uintptr, uintptr) uint32
	puglSetBackend        func(uintptr, uintptr) uint32
	puglSetParentWindow   func(uintptr, uintptr) uint32
	puglSetViewHint       func(uintptr, int32, int32) uint32
	puglGetViewHint       func(uintptr, int32) int32
	puglSetFrame          func(uintptr, Frame) uint32
	puglGetFrame          func(uintptr) Frame
	puglSetDefaultSize    func(uintptr, int32, int32) uint32
	puglSetMinSize        func(uintptr, int32, int32) uint32
	puglSetMaxSize        func(uintptr, int32, int32) uint32
	puglSetAspectRatio    func(uintptr, int32, int32, int32, int32) uint32
	puglSetWindowTitle    func(uintptr, string) uint32
	puglSetCursor         func(uintptr, uint32) uint32
	puglRealize           func(uintptr) uint32
	puglShowWindow        func(uintptr) uint32
	puglHideWindow        func(uintptr) uint32
	puglGetVisible        func(uintptr) bool
	puglPostRedisplay     func(uintptr) uint32
	puglPostRedisplayRect func(uintptr, Frame) uint32
	puglStartTimer        func(uintptr, uintptr, float64) uint32
	puglStopTimer         func(uintptr, uintptr) uint32
	puglGetContext        func(uintptr) uintptr
	puglGetNativeWindow   func(uintptr) uintptr
}

func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libpugl_mac-0.dylib"}
	}
	return []string{"libpugl_x11-0.so.0", "libpugl_x11-0.so"}
}

func cairoBackendNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libpugl_mac_cairo-0.dylib"}
	}
	return []string{"libpugl_x11_cairo-0.so.0", "libpugl_x11_cairo-0.so"}
}

func stubBackendNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libpugl_mac_stub-0.dylib"}
	}
	return []string{"libpugl_x11_stub-0.so.0", "libpugl_x11_stub-0.so"}
}

func dlopenFirst(names []string) (uintptr, string, error) {
	var firstErr error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return h, name, nil
		}
		logger.Debugf("native: dlopen %s: %v", name, err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, "", firstErr
}

// openPlatform loads the platform library, either from the default
// names or from an explicit path.
func openPlatform(path string) (Driver, error) {
	names := libraryNames()
	if path != "" {
		names = []string{path}
	}
	lib, name, err := dlopenFirst(names)
	if err != nil {
		return nil, fmt.Errorf("native: load library: %w", err)
	}
	d := &puregoDriver{
		lib:   lib,
		views: make(map[ViewHandle]EventFunc),
	}
	if err := d.register(); err != nil {
		return nil, err
	}
	d.trampoline = purego.NewCallback(func(view, ev uintptr) uintptr {
		fn := d.views[ViewHandle(view)]
		if fn == nil || ev == 0 {
			return uintptr(StatusSuccess)
		}
		rec := ReadRecord(unsafe.Pointer(ev))
		return uintptr(fn(&rec))
	})
	d.resolveBackends()
	logger.Debugf("native: loaded %s", name)
	return d, nil
}

// register wires the function table. RegisterLibFunc panics on a
// missing symbol, which here means a library from a different API
// era; turn that into an error the caller can act on.
func (d *puregoDriver) register() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("native: incompatible library: %v", r)
		}
	}()
	purego.RegisterLibFunc(&d.puglNewWorld, d.lib, "puglNewWorld")
	purego.RegisterLibFunc(&d.puglFreeWorld, d.lib, "puglFreeWorld")
	purego.RegisterLibFunc(&d.puglSetClassName, d.lib, "puglSetClassName")
	purego.RegisterLibFunc(&d.puglGetTime, d.lib, "puglGetTime")
	purego.RegisterLibFunc(&d.puglUpdate, d.lib, "puglUpdate")
	purego.RegisterLibFunc(&d.puglNewView, d.lib, "puglNewView")
	purego.RegisterLibFunc(&d.puglFreeView, d.lib, "puglFreeView")
	purego.RegisterLibFunc(&d.puglSetEventFunc, d.lib, "puglSetEventFunc")
	purego.RegisterLibFunc(&d.puglSetBackend, d.lib, "puglSetBackend")
	purego.RegisterLibFunc(&d.puglSetParentWindow, d.lib, "puglSetParentWindow")
	purego.RegisterLibFunc(&d.puglSetViewHint, d.lib, "puglSetViewHint")
	purego.RegisterLibFunc(&d.puglGetViewHint, d.lib, "puglGetViewHint")
	purego.RegisterLibFunc(&d.puglSetFrame, d.lib, "puglSetFrame")
	purego.RegisterLibFunc(&d.puglGetFrame, d.lib, "puglGetFrame")
	purego.RegisterLibFunc(&d.puglSetDefaultSize, d.lib, "puglSetDefaultSize")
	purego.RegisterLibFunc(&d.puglSetMinSize, d.lib, "puglSetMinSize")
	purego.RegisterLibFunc(&d.puglSetMaxSize, d.lib, "puglSetMaxSize")
	purego.RegisterLibFunc(&d.puglSetAspectRatio, d.lib, "puglSetAspectRatio")
	purego.RegisterLibFunc(&d.puglSetWindowTitle, d.lib, "puglSetWindowTitle")
	purego.RegisterLibFunc(&d.puglSetCursor, d.lib, "puglSetCursor")
	purego.RegisterLibFunc(&d.puglRealize, d.lib, "puglRealize")
	purego.RegisterLibFunc(&d.puglShowWindow, d.lib, "puglShowWindow")
	purego.RegisterLibFunc(&d.puglHideWindow, d.lib, "puglHideWindow")
	purego.RegisterLibFunc(&d.puglGetVisible, d.lib, "puglGetVisible")
	purego.RegisterLibFunc(&d.puglPostRedisplay, d.lib, "puglPostRedisplay")
	purego.RegisterLibFunc(&d.puglPostRedisplayRect, d.lib, "puglPostRedisplayRect")
	purego.RegisterLibFunc(&d.puglStartTimer, d.lib, "puglStartTimer")
	purego.RegisterLibFunc(&d.puglStopTimer, d.lib, "puglStopTimer")
	purego.RegisterLibFunc(&d.puglGetContext, d.lib, "puglGetContext")
	purego.RegisterLibFunc(&d.puglGetNativeWindow, d.lib, "puglGetNativeWindow")
	return nil
}

// resolveBackends locates the drawing backend constructors. Combined
// builds carry them in the main library; split builds ship one shared
// object per backend. A backend that cannot be found stays zero and
// SetBackend reports it as a bad backend.
func (d *puregoDriver) resolveBackends() {
	d.cairoBackend = d.backendSymbol("puglCairoBackend", cairoBackendNames(), &d.cairoLib)
	d.stubBackend = d.backendSymbol("puglStubBackend", stubBackendNames(), &d.stubLib)
}

func (d *puregoDriver) backendSymbol(symbol string, libs []string, keep *uintptr) uintptr {
	if addr, err := purego.Dlsym(d.lib, symbol); err == nil && addr != 0 {
		return d.callBackendCtor(addr)
	}
	lib, name, err := dlopenFirst(libs)
	if err != nil {
		logger.Debugf("native: %s unavailable: %v", symbol, err)
		return 0
	}
	*keep = lib
	addr, err := purego.Dlsym(lib, symbol)
	if err != nil || addr == 0 {
		logger.Debugf("native: %s missing in %s", symbol, name)
		return 0
	}
	return d.callBackendCtor(addr)
}

func (d *puregoDriver) callBackendCtor(addr uintptr) uintptr {
	var ctor func() uintptr
	purego.RegisterFunc(&ctor, addr)
	return ctor()
}

func (d *puregoDriver) Name() string { return "pugl" }

func (d *puregoDriver) NewWorld(kind WorldKind, flags uint32) (WorldHandle, error) {
	h := d.puglNewWorld(uint32(kind), flags)
	if h == 0 {
		return 0, fmt.Errorf("native: world creation failed")
	}
	return WorldHandle(h), nil
}

func (d *puregoDriver) FreeWorld(w WorldHandle) {
	d.puglFreeWorld(uintptr(w))
}

func (d *puregoDriver) SetClassName(w WorldHandle, name string) Status {
	return Status(d.puglSetClassName(uintptr(w), name))
}

func (d *puregoDriver) Time(w WorldHandle) float64 {
	return d.puglGetTime(uintptr(w))
}

func (d *puregoDriver) Update(w WorldHandle, timeoutSeconds float64) Status {
	return Status(d.puglUpdate(uintptr(w), timeoutSeconds))
}

func (d *puregoDriver) NewView(w WorldHandle) (ViewHandle, error) {
	h := d.puglNewView(uintptr(w))
	if h == 0 {
		return 0, fmt.Errorf("native: view creation failed")
	}
	d.puglSetEventFunc(h, d.trampoline)
	return ViewHandle(h), nil
}

func (d *puregoDriver) FreeView(v ViewHandle) {
	d.puglFreeView(uintptr(v))
	delete(d.views, v)
}

func (d *puregoDriver) SetEventFunc(v ViewHandle, fn EventFunc) {
	d.views[v] = fn
}

func (d *puregoDriver) SetBackend(v ViewHandle, b Backend) Status {
	var ptr uintptr
	switch b {
	case BackendCairo:
		ptr = d.cairoBackend
	case BackendStub:
		ptr = d.stubBackend
	}
	if ptr == 0 {
		return StatusBadBackend
	}
	return Status(d.puglSetBackend(uintptr(v), ptr))
}

func (d *puregoDriver) SetParentWindow(v ViewHandle, parent uintptr) Status {
	return Status(d.puglSetParentWindow(uintptr(v), parent))
}

func (d *puregoDriver) SetViewHint(v ViewHandle, h Hint, value int32) Status {
	return Status(d.puglSetViewHint(uintptr(v), int32(h), value))
}

func (d *puregoDriver) ViewHint(v ViewHandle, h Hint) int32 {
	return d.puglGetViewHint(uintptr(v), int32(h))
}

func (d *puregoDriver) SetFrame(v ViewHandle, f Frame) Status {
	return Status(d.puglSetFrame(uintptr(v), f))
}

func (d *puregoDriver) Frame(v ViewHandle) Frame {
	return d.puglGetFrame(uintptr(v))
}

func (d *puregoDriver) SetDefaultSize(v ViewHandle, width, height int32) Status {
	return Status(d.puglSetDefaultSize(uintptr(v), width, height))
}

func (d *puregoDriver) SetMinSize(v ViewHandle, width, height int32) Status {
	return Status(d.puglSetMinSize(uintptr(v), width, height))
}

func (d *puregoDriver) SetMaxSize(v ViewHandle, width, height int32) Status {
	return Status(d.puglSetMaxSize(uintptr(v), width, height))
}

func (d *puregoDriver) SetAspectRatio(v ViewHandle, minX, minY, maxX, maxY int32) Status {
	return Status(d.puglSetAspectRatio(uintptr(v), minX, minY, maxX, maxY))
}

func (d *puregoDriver) SetTitle(v ViewHandle, title string) Status {
	return Status(d.puglSetWindowTitle(uintptr(v), title))
}

func (d *puregoDriver) SetCursor(v ViewHandle, c Cursor) Status {
	return Status(d.puglSetCursor(uintptr(v), uint32(c)))
}

func (d *puregoDriver) Realize(v ViewHandle) Status {
	return Status(d.puglRealize(uintptr(v)))
}

func (d *puregoDriver) Show(v ViewHandle) Status {
	return Status(d.puglShowWindow(uintptr(v)))
}

func (d *puregoDriver) Hide(v ViewHandle) Status {
	return Status(d.puglHideWindow(uintptr(v)))
}

func (d *puregoDriver) Visible(v ViewHandle) bool {
	return d.puglGetVisible(uintptr(v))
}

func (d *puregoDriver) PostRedisplay(v ViewHandle) Status {
	return Status(d.puglPostRedisplay(uintptr(v)))
}

func (d *puregoDriver) PostRedisplayRect(v ViewHandle, f Frame) Status {
	return Status(d.puglPostRedisplayRect(uintptr(v), f))
}

func (d *puregoDriver) StartTimer(v ViewHandle, id uintptr, periodSeconds float64) Status {
	return Status(d.puglStartTimer(uintptr(v), id, periodSeconds))
}

func (d *puregoDriver) StopTimer(v ViewHandle, id uintptr) Status {
	return Status(d.puglStopTimer(uintptr(v), id))
}

func (d *puregoDriver) Context(v ViewHandle) uintptr {
	return d.puglGetContext(uintptr(v))
}

func (d *puregoDriver) NativeWindow(v ViewHandle) uintptr {
	return d.puglGetNativeWindow(uintptr(v))
}

func (d *puregoDriver) Close() error {
	for _, lib := range []uintptr{d.stubLib, d.cairoLib, d.lib} {
		if lib == 0 {
			continue
		}
		if err := purego.Dlclose(lib); err != nil {
			return fmt.Errorf("native: close library: %w", err)
		}
	}
	d.lib, d.cairoLib, d.stubLib = 0, 0, 0
	return nil
}
