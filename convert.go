package pugl

import "github.com/openchord/go-pugl/internal/native"

// convertEvent turns one native record into its typed variant. The
// payload is read through the accessor for the record's tag and
// nothing else; tags outside the variant set return
// *UnknownEventError with the numeric tag.
func convertEvent(rec *native.Record) (Event, error) {
	switch rec.Kind() {
	case native.EventKeyPress:
		d := rec.Key()
		return KeyPress{EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot), Key: decodeKey(d)}, nil
	case native.EventKeyRelease:
		d := rec.Key()
		return KeyRelease{EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot), Key: decodeKey(d)}, nil
	case native.EventText:
		d := rec.Text()
		return Text{
			EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot),
			Rune:         rune(d.Character),
			Chars:        cString(d.String[:]),
			Code:         d.Keycode,
		}, nil
	case native.EventButtonPress:
		d := rec.Button()
		return ButtonPress{
			EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot),
			Button:       MouseButton{Num: d.Button, Modifiers: Modifiers(d.State) & modMask},
		}, nil
	case native.EventButtonRelease:
		d := rec.Button()
		return ButtonRelease{
			EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot),
			Button:       MouseButton{Num: d.Button, Modifiers: Modifiers(d.State) & modMask},
		}, nil
	case native.EventMotionNotify:
		d := rec.Motion()
		return Motion{
			EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot),
			Modifiers:    Modifiers(d.State) & modMask,
			Flags:        EventFlags(rec.Flags()) & flagMask,
		}, nil
	case native.EventScroll:
		d := rec.Scroll()
		return Scroll{
			EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot),
			Dx:           d.Dx,
			Dy:           d.Dy,
			Modifiers:    Modifiers(d.State) & modMask,
		}, nil
	case native.EventPointerIn:
		d := rec.Crossing()
		return PointerIn{EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot)}, nil
	case native.EventPointerOut:
		d := rec.Crossing()
		return PointerOut{EventContext: contextOf(d.Time, d.X, d.Y, d.XRoot, d.YRoot)}, nil
	case native.EventExpose:
		d := rec.Expose()
		return Expose{Pos: Coord{X: d.X, Y: d.Y}, Size: Size{W: d.Width, H: d.Height}}, nil
	case native.EventConfigure:
		d := rec.Configure()
		return Resize{Size: Size{W: d.Width, H: d.Height}}, nil
	case native.EventFocusIn:
		return FocusIn{}, nil
	case native.EventFocusOut:
		return FocusOut{}, nil
	case native.EventClose:
		return Close{}, nil
	case native.EventTimer:
		return Timer{ID: rec.Timer().ID}, nil
	default:
		return nil, &UnknownEventError{Kind: uint32(rec.Kind())}
	}
}

func contextOf(t, x, y, xRoot, yRoot float64) EventContext {
	return EventContext{
		Pos:     Coord{X: x, Y: y},
		PosRoot: Coord{X: xRoot, Y: yRoot},
		Time:    t,
	}
}

// decodeKey splits the native key field into character and special
// halves. Specials arrive in the key field; a zero key with a
// special-range keycode is how some platforms deliver them, so the
// keycode is the fallback.
func decodeKey(d native.KeyData) Key {
	k := Key{Code: d.Keycode, Modifiers: Modifiers(d.State) & modMask}
	switch {
	case isSpecial(d.Key):
		k.Special = SpecialKey(d.Key)
	case d.Key != 0:
		k.Rune = rune(d.Key)
	case isSpecial(d.Keycode):
		k.Special = SpecialKey(d.Keycode)
	}
	return k
}

func isSpecial(v uint32) bool {
	switch SpecialKey(v) {
	case KeyBackspace, KeyEscape, KeyDelete:
		return true
	}
	return v >= uint32(KeyF1) && v <= uint32(KeyPause)
}

// cString reads a NUL-terminated byte sequence.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// lifecycleTags are delivered by the native library but carry nothing
// a handler acts on; dispatch skips them quietly.
var lifecycleTags = map[native.EventType]bool{
	native.EventNothing:   true,
	native.EventCreate:    true,
	native.EventDestroy:   true,
	native.EventMap:       true,
	native.EventUnmap:     true,
	native.EventUpdate:    true,
	native.EventClient:    true,
	native.EventLoopEnter: true,
	native.EventLoopLeave: true,
}
