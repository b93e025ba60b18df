// Package native is the boundary to the pugl shared library. It
// defines the driver capability the binding consumes, the raw event
// record delivered by the native event callback, and the constants of
// the bound C API. Raw handles never leave this package's callers
// inside the module; nothing here is part of the public surface.
package native

import (
	"fmt"

	"github.com/openchord/go-pugl/internal/logger"
)

// WorldHandle identifies one native world (event-dispatch context).
type WorldHandle uintptr

// ViewHandle identifies one native view (on-screen surface).
type ViewHandle uintptr

// WorldKind selects how the native world integrates with the process.
type WorldKind uint32

const (
	// WorldProgram is a world owned by a top-level program.
	WorldProgram WorldKind = 0
	// WorldModule is a world embedded in a host, e.g. a plugin UI.
	WorldModule WorldKind = 1
)

// Backend selects the drawing technology of a view.
type Backend int

const (
	// BackendCairo draws through the cairo 2D backend.
	BackendCairo Backend = iota
	// BackendStub performs no drawing. Used by tests and probes.
	BackendStub
)

// Status mirrors the native library's return codes.
type Status uint32

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusUnknownError
	StatusBadBackend
	StatusBadConfiguration
	StatusBadParameter
	StatusBackendFailed
	StatusRegistrationFailed
	StatusRealizeFailed
	StatusSetFormatFailed
	StatusCreateContextFailed
	StatusUnsupportedType
)

var statusNames = map[Status]string{
	StatusSuccess:             "success",
	StatusFailure:             "failure",
	StatusUnknownError:        "unknown system error",
	StatusBadBackend:          "invalid or missing backend",
	StatusBadConfiguration:    "invalid view configuration",
	StatusBadParameter:        "invalid parameter",
	StatusBackendFailed:       "backend initialisation failed",
	StatusRegistrationFailed:  "class registration failed",
	StatusRealizeFailed:       "system view realization failed",
	StatusSetFormatFailed:     "failed to set pixel format",
	StatusCreateContextFailed: "failed to create drawing context",
	StatusUnsupportedType:     "unsupported data type",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint32(s))
}

// EventType is the tag of a native event record.
type EventType uint32

const (
	EventNothing EventType = iota
	EventCreate
	EventDestroy
	EventConfigure
	EventMap
	EventUnmap
	EventUpdate
	EventExpose
	EventClose
	EventFocusIn
	EventFocusOut
	EventKeyPress
	EventKeyRelease
	EventText
	EventPointerIn
	EventPointerOut
	EventButtonPress
	EventButtonRelease
	EventMotionNotify
	EventScroll
	EventClient
	EventTimer
	EventLoopEnter
	EventLoopLeave
)

var eventTypeNames = map[EventType]string{
	EventNothing:       "nothing",
	EventCreate:        "create",
	EventDestroy:       "destroy",
	EventConfigure:     "configure",
	EventMap:           "map",
	EventUnmap:         "unmap",
	EventUpdate:        "update",
	EventExpose:        "expose",
	EventClose:         "close",
	EventFocusIn:       "focus-in",
	EventFocusOut:      "focus-out",
	EventKeyPress:      "key-press",
	EventKeyRelease:    "key-release",
	EventText:          "text",
	EventPointerIn:     "pointer-in",
	EventPointerOut:    "pointer-out",
	EventButtonPress:   "button-press",
	EventButtonRelease: "button-release",
	EventMotionNotify:  "motion",
	EventScroll:        "scroll",
	EventClient:        "client",
	EventTimer:         "timer",
	EventLoopEnter:     "loop-enter",
	EventLoopLeave:     "loop-leave",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint32(t))
}

// Keyboard modifier bits of the state field of input events.
const (
	ModShift uint32 = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Event flag bits.
const (
	FlagSendEvent uint32 = 1 << iota
	FlagHint
)

// Special key values delivered in the key field of key events. The
// function and navigation keys live in the Unicode private-use area.
const (
	KeyBackspace uint32 = 0x08
	KeyEscape    uint32 = 0x1B
	KeyDelete    uint32 = 0x7F

	KeyF1 uint32 = 0xE000 + iota - 3
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyShiftL
	KeyShiftR
	KeyCtrlL
	KeyCtrlR
	KeyAltL
	KeyAltR
	KeySuperL
	KeySuperR
	KeyMenu
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
)

// Hint identifies one view hint of the native library.
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

// Hint values.
const (
	HintDontCare int32 = -1
	HintFalse    int32 = 0
	HintTrue     int32 = 1
)

// Cursor identifies one of the native pointer cursors.
type Cursor uint32

const (
	CursorArrow Cursor = iota
	CursorCaret
	CursorCrosshair
	CursorHand
	CursorNo
	CursorLeftRight
	CursorUpDown
)

// Crossing modes of pointer enter/leave events.
const (
	CrossingNormal uint32 = iota
	CrossingGrab
	CrossingUngrab
)

// Frame mirrors the native rectangle used for view geometry.
type Frame struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// EventFunc consumes one raw event record during dispatch. The record
// is only valid for the duration of the call.
type EventFunc func(*Record) Status

// Driver is the native windowing capability the binding runs on. The
// real driver binds the shared library; the mem driver provides the
// same semantics in memory for tests and headless use. All methods
// must be called from the single thread driving Update.
type Driver interface {
	Name() string

	NewWorld(kind WorldKind, flags uint32) (WorldHandle, error)
	FreeWorld(WorldHandle)
	SetClassName(WorldHandle, string) Status
	Time(WorldHandle) float64
	Update(w WorldHandle, timeoutSeconds float64) Status

	NewView(WorldHandle) (ViewHandle, error)
	FreeView(ViewHandle)
	SetEventFunc(ViewHandle, EventFunc)
	SetBackend(ViewHandle, Backend) Status
	SetParentWindow(ViewHandle, uintptr) Status
	SetViewHint(ViewHandle, Hint, int32) Status
	ViewHint(ViewHandle, Hint) int32

	SetFrame(ViewHandle, Frame) Status
	Frame(ViewHandle) Frame
	SetDefaultSize(v ViewHandle, width, height int32) Status
	SetMinSize(v ViewHandle, width, height int32) Status
	SetMaxSize(v ViewHandle, width, height int32) Status
	SetAspectRatio(v ViewHandle, minX, minY, maxX, maxY int32) Status
	SetTitle(ViewHandle, string) Status
	SetCursor(ViewHandle, Cursor) Status

	Realize(ViewHandle) Status
	Show(ViewHandle) Status
	Hide(ViewHandle) Status
	Visible(ViewHandle) bool

	PostRedisplay(ViewHandle) Status
	PostRedisplayRect(ViewHandle, Frame) Status

	StartTimer(v ViewHandle, id uintptr, periodSeconds float64) Status
	StopTimer(v ViewHandle, id uintptr) Status

	Context(ViewHandle) uintptr
	NativeWindow(ViewHandle) uintptr

	Close() error
}

// Open selects and initializes a driver. The kind is one of:
//
//	"", "auto"  load the platform library from its default names
//	"x11"       same as auto on this platform set
//	"mem"       the in-memory driver
//	other       treated as an explicit shared library path
func Open(kind string) (Driver, error) {
	switch kind {
	case "", "auto", "x11":
		logger.Debugf("native: opening platform driver")
		return openPlatform("")
	case "mem":
		logger.Debugf("native: opening mem driver")
		return NewMem(), nil
	default:
		logger.Debugf("native: opening platform driver from %s", kind)
		return openPlatform(kind)
	}
}
