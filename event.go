package pugl

import "fmt"

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

const modMask = ModShift | ModCtrl | ModAlt | ModSuper

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	for _, part := range []struct {
		bit  Modifiers
		name string
	}{
		{ModShift, "shift"},
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
	} {
		if m.Has(part.bit) {
			if s != "" {
				s += "+"
			}
			s += part.name
		}
	}
	return s
}

// EventFlags carries per-event delivery details.
type EventFlags uint32

const (
	// FlagSendEvent marks an event sent by another application
	// rather than the windowing system.
	FlagSendEvent EventFlags = 1 << iota
	// FlagHint marks a compressed motion hint.
	FlagHint
)

const flagMask = FlagSendEvent | FlagHint

// SpecialKey identifies a non-character key. The values match the
// native library, which places them in the Unicode private-use area.
type SpecialKey uint32

const (
	KeyBackspace SpecialKey = 0x08
	KeyEscape    SpecialKey = 0x1B
	KeyDelete    SpecialKey = 0x7F

	KeyF1 SpecialKey = 0xE000 + iota - 3
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

var specialKeyNames = map[SpecialKey]string{
	KeyBackspace: "Backspace", KeyEscape: "Escape", KeyDelete: "Delete",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",
	KeyLeft: "Left", KeyUp: "Up", KeyRight: "Right", KeyDown: "Down",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home",
	KeyEnd: "End", KeyInsert: "Insert",
	KeyShiftL: "ShiftL", KeyShiftR: "ShiftR", KeyCtrlL: "CtrlL",
	KeyCtrlR: "CtrlR", KeyAltL: "AltL", KeyAltR: "AltR",
	KeySuperL: "SuperL", KeySuperR: "SuperR", KeyMenu: "Menu",
	KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
	KeyNumLock: "NumLock", KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
}

func (k SpecialKey) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SpecialKey(%#x)", uint32(k))
}

// Key describes the key of a key press or release. Exactly one of
// Rune and Special is set: Rune for character keys, Special for
// function and navigation keys.
type Key struct {
	Rune      rune
	Special   SpecialKey
	Code      uint32
	Modifiers Modifiers
}

// IsCharacter reports whether the key produces a character.
func (k Key) IsCharacter() bool { return k.Rune != 0 }

func (k Key) String() string {
	if k.IsCharacter() {
		return string(k.Rune)
	}
	if k.Special != 0 {
		return k.Special.String()
	}
	return fmt.Sprintf("code(%d)", k.Code)
}

// MouseButton describes the button of a button press or release.
// Num counts from 1; 4 through 7 arrive as Scroll events instead on
// platforms that encode wheels as buttons.
type MouseButton struct {
	Num       uint32
	Modifiers Modifiers
}

// EventContext carries the fields common to input events: the
// pointer position in view and root coordinates and the event time
// in seconds on the world clock.
type EventContext struct {
	Pos     Coord
	PosRoot Coord
	Time    float64
}

// Event is one typed event from a view. The set of variants is
// closed: KeyPress, KeyRelease, Text, ButtonPress, ButtonRelease,
// Motion, Scroll, PointerIn, PointerOut, Expose, Resize, FocusIn,
// FocusOut, Close and Timer.
type Event interface {
	event()
}

// KeyPress is a key going down. With the ignore-key-repeat hint set
// (the default), holding a key delivers a single press.
type KeyPress struct {
	EventContext
	Key Key
}

// KeyRelease is a key going up.
type KeyRelease struct {
	EventContext
	Key Key
}

// Text is character input as the user's keymap produced it, after
// modifiers and dead keys are applied.
type Text struct {
	EventContext
	Rune  rune
	Chars string
	Code  uint32
}

// ButtonPress is a mouse button going down.
type ButtonPress struct {
	EventContext
	Button MouseButton
}

// ButtonRelease is a mouse button going up.
type ButtonRelease struct {
	EventContext
	Button MouseButton
}

// Motion is pointer movement inside the view.
type Motion struct {
	EventContext
	Modifiers Modifiers
	Flags     EventFlags
}

// Scroll is wheel or trackpad scrolling. Deltas follow the native
// convention: positive Dy scrolls up, positive Dx scrolls right.
type Scroll struct {
	EventContext
	Dx        float64
	Dy        float64
	Modifiers Modifiers
}

// PointerIn is the pointer entering the view.
type PointerIn struct {
	EventContext
}

// PointerOut is the pointer leaving the view.
type PointerOut struct {
	EventContext
}

// Expose asks the handler to repaint a region.
type Expose struct {
	Pos  Coord
	Size Size
}

// Resize reports the view's new size after a configure.
type Resize struct {
	Size Size
}

// FocusIn reports keyboard focus arriving.
type FocusIn struct{}

// FocusOut reports keyboard focus leaving.
type FocusOut struct{}

// Close is the window manager asking the view to close. The view
// stays alive until the handler closes it.
type Close struct{}

// Timer is one expiry of a timer started with View.StartTimer.
type Timer struct {
	ID uintptr
}

func (KeyPress) event()      {}
func (KeyRelease) event()    {}
func (Text) event()          {}
func (ButtonPress) event()   {}
func (ButtonRelease) event() {}
func (Motion) event()        {}
func (Scroll) event()        {}
func (PointerIn) event()     {}
func (PointerOut) event()    {}
func (Expose) event()        {}
func (Resize) event()        {}
func (FocusIn) event()       {}
func (FocusOut) event()      {}
func (Close) event()         {}
func (Timer) event()         {}
