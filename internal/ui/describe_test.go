package ui

import (
	"strings"
	"testing"

	pugl "github.com/openchord/go-pugl"
)

func TestDescribe(t *testing.T) {
	ctx := pugl.EventContext{
		Pos:     pugl.Coord{X: 12.5, Y: 34.5},
		PosRoot: pugl.Coord{X: 112.5, Y: 134.5},
		Time:    1.5,
	}

	tests := []struct {
		name     string
		event    pugl.Event
		wantKind string
		mustHave []string
	}{
		{
			name: "key press",
			event: pugl.KeyPress{
				EventContext: ctx,
				Key:          pugl.Key{Rune: 'a', Code: 38, Modifiers: pugl.ModShift},
			},
			wantKind: "KEY PRESS",
			mustHave: []string{"a", "code=38", "shift", "(12.5,34.5)"},
		},
		{
			name: "key release with special key",
			event: pugl.KeyRelease{
				EventContext: ctx,
				Key:          pugl.Key{Special: pugl.KeyF1, Code: 67},
			},
			wantKind: "KEY RELEASE",
			mustHave: []string{"F1", "code=67"},
		},
		{
			name:     "text",
			event:    pugl.Text{EventContext: ctx, Rune: 'ä', Chars: "ä", Code: 54},
			wantKind: "TEXT",
			mustHave: []string{`"ä"`, "code=54"},
		},
		{
			name: "button press",
			event: pugl.ButtonPress{
				EventContext: ctx,
				Button:       pugl.MouseButton{Num: 3, Modifiers: pugl.ModCtrl},
			},
			wantKind: "BUTTON PRESS",
			mustHave: []string{"button 3", "ctrl"},
		},
		{
			name:     "motion",
			event:    pugl.Motion{EventContext: ctx, Modifiers: pugl.ModSuper},
			wantKind: "MOTION",
			mustHave: []string{"(12.5,34.5)", "super"},
		},
		{
			name:     "scroll",
			event:    pugl.Scroll{EventContext: ctx, Dx: -1.5, Dy: 3.25},
			wantKind: "SCROLL",
			mustHave: []string{"dx=-1.50", "dy=+3.25"},
		},
		{
			name:     "pointer in",
			event:    pugl.PointerIn{EventContext: ctx},
			wantKind: "POINTER IN",
			mustHave: []string{"(12.5,34.5)"},
		},
		{
			name:     "pointer out",
			event:    pugl.PointerOut{EventContext: ctx},
			wantKind: "POINTER OUT",
			mustHave: []string{"(12.5,34.5)"},
		},
		{
			name: "expose",
			event: pugl.Expose{
				Pos:  pugl.Coord{X: 10, Y: 20},
				Size: pugl.Size{W: 100, H: 50},
			},
			wantKind: "EXPOSE",
			mustHave: []string{"100x50", "(10,20)"},
		},
		{
			name:     "resize",
			event:    pugl.Resize{Size: pugl.Size{W: 640, H: 480}},
			wantKind: "RESIZE",
			mustHave: []string{"640x480"},
		},
		{
			name:     "focus in",
			event:    pugl.FocusIn{},
			wantKind: "FOCUS IN",
		},
		{
			name:     "focus out",
			event:    pugl.FocusOut{},
			wantKind: "FOCUS OUT",
		},
		{
			name:     "close",
			event:    pugl.Close{},
			wantKind: "CLOSE",
			mustHave: []string{"close"},
		},
		{
			name:     "timer",
			event:    pugl.Timer{ID: 7},
			wantKind: "TIMER",
			mustHave: []string{"id=7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Describe(tt.event)

			if entry.Kind != tt.wantKind {
				t.Errorf("Describe() kind = %q, want %q", entry.Kind, tt.wantKind)
			}
			if entry.Timestamp.IsZero() {
				t.Error("Describe() should stamp the entry")
			}
			for _, must := range tt.mustHave {
				if !strings.Contains(entry.Detail, must) {
					t.Errorf("Describe() detail %q missing %q", entry.Detail, must)
				}
			}
		})
	}
}
