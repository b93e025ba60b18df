package pugl

import (
	"errors"
	"reflect"
	"testing"

	"github.com/openchord/go-pugl/internal/native"
)

var testContext = EventContext{
	Pos:     Coord{X: 12.5, Y: 34.25},
	PosRoot: Coord{X: 112.5, Y: 134.25},
	Time:    7.125,
}

func inputData() (time float64, x, y, xRoot, yRoot float64) {
	return testContext.Time, testContext.Pos.X, testContext.Pos.Y,
		testContext.PosRoot.X, testContext.PosRoot.Y
}

func TestConvertEvent(t *testing.T) {
	tm, x, y, xr, yr := inputData()

	textData := native.TextData{
		Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
		Keycode: 38, Character: 'ä',
	}
	copy(textData.String[:], "ä")

	tests := []struct {
		name string
		rec  native.Record
		want Event
	}{
		{
			name: "key press character",
			rec: native.NewKeyRecord(native.EventKeyPress, native.KeyData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				State: native.ModShift | native.ModCtrl, Keycode: 38, Key: 'a',
			}),
			want: KeyPress{
				EventContext: testContext,
				Key:          Key{Rune: 'a', Code: 38, Modifiers: ModShift | ModCtrl},
			},
		},
		{
			name: "key press special in key field",
			rec: native.NewKeyRecord(native.EventKeyPress, native.KeyData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				Keycode: 67, Key: native.KeyF1,
			}),
			want: KeyPress{
				EventContext: testContext,
				Key:          Key{Special: KeyF1, Code: 67},
			},
		},
		{
			name: "key release special from keycode",
			rec: native.NewKeyRecord(native.EventKeyRelease, native.KeyData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				Keycode: native.KeyLeft, Key: 0,
			}),
			want: KeyRelease{
				EventContext: testContext,
				Key:          Key{Special: KeyLeft, Code: native.KeyLeft},
			},
		},
		{
			name: "text",
			rec:  native.NewTextRecord(textData),
			want: Text{
				EventContext: testContext,
				Rune:         'ä',
				Chars:        "ä",
				Code:         38,
			},
		},
		{
			name: "button press",
			rec: native.NewButtonRecord(native.EventButtonPress, native.ButtonData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				State: native.ModAlt, Button: 3,
			}),
			want: ButtonPress{
				EventContext: testContext,
				Button:       MouseButton{Num: 3, Modifiers: ModAlt},
			},
		},
		{
			name: "button release",
			rec: native.NewButtonRecord(native.EventButtonRelease, native.ButtonData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr, Button: 1,
			}),
			want: ButtonRelease{
				EventContext: testContext,
				Button:       MouseButton{Num: 1},
			},
		},
		{
			name: "motion",
			rec: native.NewMotionRecord(native.MotionData{
				Flags: native.FlagHint,
				Time:  tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				State: native.ModSuper,
			}),
			want: Motion{
				EventContext: testContext,
				Modifiers:    ModSuper,
				Flags:        FlagHint,
			},
		},
		{
			name: "scroll",
			rec: native.NewScrollRecord(native.ScrollData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				State: native.ModShift, Dx: -1.5, Dy: 3.25,
			}),
			want: Scroll{
				EventContext: testContext,
				Dx:           -1.5,
				Dy:           3.25,
				Modifiers:    ModShift,
			},
		},
		{
			name: "pointer in",
			rec: native.NewCrossingRecord(native.EventPointerIn, native.CrossingData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
				Mode: native.CrossingGrab,
			}),
			want: PointerIn{EventContext: testContext},
		},
		{
			name: "pointer out",
			rec: native.NewCrossingRecord(native.EventPointerOut, native.CrossingData{
				Time: tm, X: x, Y: y, XRoot: xr, YRoot: yr,
			}),
			want: PointerOut{EventContext: testContext},
		},
		{
			name: "expose",
			rec: native.NewExposeRecord(native.ExposeData{
				X: 10, Y: 20, Width: 100, Height: 50,
			}),
			want: Expose{Pos: Coord{X: 10, Y: 20}, Size: Size{W: 100, H: 50}},
		},
		{
			name: "configure",
			rec: native.NewConfigureRecord(native.ConfigureData{
				X: 5, Y: 6, Width: 640, Height: 480,
			}),
			want: Resize{Size: Size{W: 640, H: 480}},
		},
		{
			name: "focus in",
			rec:  native.NewRawRecord(native.EventFocusIn, 0),
			want: FocusIn{},
		},
		{
			name: "focus out",
			rec:  native.NewRawRecord(native.EventFocusOut, 0),
			want: FocusOut{},
		},
		{
			name: "close",
			rec:  native.NewRawRecord(native.EventClose, 0),
			want: Close{},
		},
		{
			name: "timer",
			rec:  native.NewTimerRecord(native.TimerData{ID: 9}),
			want: Timer{ID: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertEvent(&tt.rec)
			if err != nil {
				t.Fatalf("convertEvent() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("convertEvent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertUnknownKinds(t *testing.T) {
	kinds := []native.EventType{
		native.EventNothing,
		native.EventCreate,
		native.EventDestroy,
		native.EventMap,
		native.EventUnmap,
		native.EventUpdate,
		native.EventClient,
		native.EventLoopEnter,
		native.EventLoopLeave,
		native.EventType(99),
	}
	for _, kind := range kinds {
		rec := native.NewRawRecord(kind, 0)
		ev, err := convertEvent(&rec)
		if ev != nil {
			t.Errorf("kind %d: got event %#v, want nil", kind, ev)
		}
		var unk *UnknownEventError
		if !errors.As(err, &unk) {
			t.Fatalf("kind %d: error %v, want *UnknownEventError", kind, err)
		}
		if unk.Kind != uint32(kind) {
			t.Errorf("kind %d reported as %d", kind, unk.Kind)
		}
	}
}

func TestConvertTruncatesModifierGarbage(t *testing.T) {
	rec := native.NewKeyRecord(native.EventKeyPress, native.KeyData{
		State: 0xFFFFFFFF, Key: 'z',
	})
	ev, err := convertEvent(&rec)
	if err != nil {
		t.Fatal(err)
	}
	kp := ev.(KeyPress)
	if kp.Key.Modifiers != ModShift|ModCtrl|ModAlt|ModSuper {
		t.Errorf("modifiers = %#x, want the four known bits", uint32(kp.Key.Modifiers))
	}

	rec = native.NewMotionRecord(native.MotionData{Flags: 0xFFFF})
	ev, err = convertEvent(&rec)
	if err != nil {
		t.Fatal(err)
	}
	mo := ev.(Motion)
	if mo.Flags != FlagSendEvent|FlagHint {
		t.Errorf("flags = %#x, want the two known bits", uint32(mo.Flags))
	}
}

func TestDecodeKeySpecialRange(t *testing.T) {
	tests := []struct {
		name string
		in   native.KeyData
		want Key
	}{
		{
			name: "backspace",
			in:   native.KeyData{Key: 0x08, Keycode: 22},
			want: Key{Special: KeyBackspace, Code: 22},
		},
		{
			name: "escape",
			in:   native.KeyData{Key: 0x1B, Keycode: 9},
			want: Key{Special: KeyEscape, Code: 9},
		},
		{
			name: "pause is the last special",
			in:   native.KeyData{Key: native.KeyPause},
			want: Key{Special: KeyPause},
		},
		{
			name: "above the special range is a character",
			in:   native.KeyData{Key: native.KeyPause + 1},
			want: Key{Rune: rune(native.KeyPause + 1)},
		},
		{
			name: "zero key and ordinary keycode stays empty",
			in:   native.KeyData{Keycode: 54},
			want: Key{Code: 54},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.in); got != tt.want {
				t.Errorf("decodeKey(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
