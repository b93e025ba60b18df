package ui

import (
	"fmt"
	"time"

	pugl "github.com/openchord/go-pugl"
)

// Describe turns a typed window event into a feed entry for the watcher.
func Describe(ev pugl.Event) EventEntry {
	entry := EventEntry{Timestamp: time.Now()}

	switch e := ev.(type) {
	case pugl.KeyPress:
		entry.Kind = "KEY PRESS"
		entry.Detail = describeKey(e.Key, e.EventContext)
	case pugl.KeyRelease:
		entry.Kind = "KEY RELEASE"
		entry.Detail = describeKey(e.Key, e.EventContext)
	case pugl.Text:
		entry.Kind = "TEXT"
		entry.Detail = fmt.Sprintf("%q code=%d", e.Chars, e.Code)
	case pugl.ButtonPress:
		entry.Kind = "BUTTON PRESS"
		entry.Detail = describeButton(e.Button, e.EventContext)
	case pugl.ButtonRelease:
		entry.Kind = "BUTTON RELEASE"
		entry.Detail = describeButton(e.Button, e.EventContext)
	case pugl.Motion:
		entry.Kind = "MOTION"
		entry.Detail = fmt.Sprintf("(%.1f,%.1f) mods=%s", e.Pos.X, e.Pos.Y, e.Modifiers)
	case pugl.Scroll:
		entry.Kind = "SCROLL"
		entry.Detail = fmt.Sprintf("dx=%+.2f dy=%+.2f at (%.1f,%.1f)", e.Dx, e.Dy, e.Pos.X, e.Pos.Y)
	case pugl.PointerIn:
		entry.Kind = "POINTER IN"
		entry.Detail = fmt.Sprintf("(%.1f,%.1f)", e.Pos.X, e.Pos.Y)
	case pugl.PointerOut:
		entry.Kind = "POINTER OUT"
		entry.Detail = fmt.Sprintf("(%.1f,%.1f)", e.Pos.X, e.Pos.Y)
	case pugl.Expose:
		entry.Kind = "EXPOSE"
		entry.Detail = fmt.Sprintf("%.0fx%.0f at (%.0f,%.0f)", e.Size.W, e.Size.H, e.Pos.X, e.Pos.Y)
	case pugl.Resize:
		entry.Kind = "RESIZE"
		entry.Detail = fmt.Sprintf("%.0fx%.0f", e.Size.W, e.Size.H)
	case pugl.FocusIn:
		entry.Kind = "FOCUS IN"
	case pugl.FocusOut:
		entry.Kind = "FOCUS OUT"
	case pugl.Close:
		entry.Kind = "CLOSE"
		entry.Detail = "window manager asked to close"
	case pugl.Timer:
		entry.Kind = "TIMER"
		entry.Detail = fmt.Sprintf("id=%d", e.ID)
	default:
		entry.Kind = "UNKNOWN"
		entry.Detail = fmt.Sprintf("%T", ev)
	}

	return entry
}

func describeKey(k pugl.Key, ctx pugl.EventContext) string {
	return fmt.Sprintf("%s code=%d mods=%s at (%.1f,%.1f)",
		k, k.Code, k.Modifiers, ctx.Pos.X, ctx.Pos.Y)
}

func describeButton(b pugl.MouseButton, ctx pugl.EventContext) string {
	return fmt.Sprintf("button %d mods=%s at (%.1f,%.1f)",
		b.Num, b.Modifiers, ctx.Pos.X, ctx.Pos.Y)
}
