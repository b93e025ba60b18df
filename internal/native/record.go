package native

import "unsafe"

// recordSize is the size of the native event union: the largest
// member (scroll and text, 72 bytes) bounds it. The layout asserts in
// the tests pin every offset this package relies on.
const recordSize = 72

// Record is one raw native event. The payload bytes are copied out of
// the native union when the event is delivered, so a Record stays
// valid after the callback returns. Every event starts with the tag
// and the flags; the rest of the payload may only be read through the
// accessor matching the tag. Reading under the wrong tag is the
// misuse this type exists to prevent, which is why the buffer itself
// is unexported.
type Record struct {
	buf [recordSize]byte
}

// ReadRecord copies one event out of native memory.
func ReadRecord(p unsafe.Pointer) Record {
	return Record{buf: *(*[recordSize]byte)(p)}
}

// Kind returns the event tag.
func (r *Record) Kind() EventType {
	return EventType(r.any().Type)
}

// Flags returns the event flag bits.
func (r *Record) Flags() uint32 {
	return r.any().Flags
}

func (r *Record) any() *anyData {
	return (*anyData)(unsafe.Pointer(&r.buf[0]))
}

// anyData is the header common to all event payloads.
type anyData struct {
	Type  uint32
	Flags uint32
}

// KeyData is the payload of key press and release events.
type KeyData struct {
	Type    uint32
	Flags   uint32
	Time    float64
	X       float64
	Y       float64
	XRoot   float64
	YRoot   float64
	State   uint32
	Keycode uint32
	Key     uint32
}

// TextData is the payload of character input events.
type TextData struct {
	Type      uint32
	Flags     uint32
	Time      float64
	X         float64
	Y         float64
	XRoot     float64
	YRoot     float64
	State     uint32
	Keycode   uint32
	Character uint32
	String    [8]byte
}

// ButtonData is the payload of button press and release events.
type ButtonData struct {
	Type   uint32
	Flags  uint32
	Time   float64
	X      float64
	Y      float64
	XRoot  float64
	YRoot  float64
	State  uint32
	Button uint32
}

// MotionData is the payload of pointer motion events.
type MotionData struct {
	Type  uint32
	Flags uint32
	Time  float64
	X     float64
	Y     float64
	XRoot float64
	YRoot float64
	State uint32
}

// ScrollData is the payload of scroll events. The pad matches the
// alignment hole before the scroll distances in the native struct.
type ScrollData struct {
	Type  uint32
	Flags uint32
	Time  float64
	X     float64
	Y     float64
	XRoot float64
	YRoot float64
	State uint32
	_     uint32
	Dx    float64
	Dy    float64
}

// CrossingData is the payload of pointer enter and leave events.
type CrossingData struct {
	Type  uint32
	Flags uint32
	Time  float64
	X     float64
	Y     float64
	XRoot float64
	YRoot float64
	State uint32
	Mode  uint32
}

// ExposeData is the payload of expose events.
type ExposeData struct {
	Type   uint32
	Flags  uint32
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ConfigureData is the payload of configure (resize/move) events.
type ConfigureData struct {
	Type   uint32
	Flags  uint32
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// TimerData is the payload of timer events.
type TimerData struct {
	Type  uint32
	Flags uint32
	ID    uintptr
}

// Key reads the payload as a key event. Only valid when Kind is
// EventKeyPress or EventKeyRelease.
func (r *Record) Key() KeyData {
	return *(*KeyData)(unsafe.Pointer(&r.buf[0]))
}

// Text reads the payload as a text event. Only valid when Kind is
// EventText.
func (r *Record) Text() TextData {
	return *(*TextData)(unsafe.Pointer(&r.buf[0]))
}

// Button reads the payload as a button event. Only valid when Kind is
// EventButtonPress or EventButtonRelease.
func (r *Record) Button() ButtonData {
	return *(*ButtonData)(unsafe.Pointer(&r.buf[0]))
}

// Motion reads the payload as a motion event. Only valid when Kind is
// EventMotionNotify.
func (r *Record) Motion() MotionData {
	return *(*MotionData)(unsafe.Pointer(&r.buf[0]))
}

// Scroll reads the payload as a scroll event. Only valid when Kind is
// EventScroll.
func (r *Record) Scroll() ScrollData {
	return *(*ScrollData)(unsafe.Pointer(&r.buf[0]))
}

// Crossing reads the payload as a crossing event. Only valid when
// Kind is EventPointerIn or EventPointerOut.
func (r *Record) Crossing() CrossingData {
	return *(*CrossingData)(unsafe.Pointer(&r.buf[0]))
}

// Expose reads the payload as an expose event. Only valid when Kind
// is EventExpose.
func (r *Record) Expose() ExposeData {
	return *(*ExposeData)(unsafe.Pointer(&r.buf[0]))
}

// Configure reads the payload as a configure event. Only valid when
// Kind is EventConfigure.
func (r *Record) Configure() ConfigureData {
	return *(*ConfigureData)(unsafe.Pointer(&r.buf[0]))
}

// Timer reads the payload as a timer event. Only valid when Kind is
// EventTimer.
func (r *Record) Timer() TimerData {
	return *(*TimerData)(unsafe.Pointer(&r.buf[0]))
}

// The builders below assemble records the way the native library
// lays them out. The mem driver and the conversion tests use them to
// fabricate events; the type field of the payload becomes the tag.

func put[T any](v T) Record {
	var r Record
	*(*T)(unsafe.Pointer(&r.buf[0])) = v
	return r
}

// NewKeyRecord fabricates a key record. kind is EventKeyPress or
// EventKeyRelease; the tag in d is overwritten.
func NewKeyRecord(kind EventType, d KeyData) Record {
	d.Type = uint32(kind)
	return put(d)
}

// NewTextRecord fabricates a text input record.
func NewTextRecord(d TextData) Record {
	d.Type = uint32(EventText)
	return put(d)
}

// NewButtonRecord fabricates a button record. kind is
// EventButtonPress or EventButtonRelease.
func NewButtonRecord(kind EventType, d ButtonData) Record {
	d.Type = uint32(kind)
	return put(d)
}

// NewMotionRecord fabricates a pointer motion record.
func NewMotionRecord(d MotionData) Record {
	d.Type = uint32(EventMotionNotify)
	return put(d)
}

// NewScrollRecord fabricates a scroll record.
func NewScrollRecord(d ScrollData) Record {
	d.Type = uint32(EventScroll)
	return put(d)
}

// NewCrossingRecord fabricates a crossing record. kind is
// EventPointerIn or EventPointerOut.
func NewCrossingRecord(kind EventType, d CrossingData) Record {
	d.Type = uint32(kind)
	return put(d)
}

// NewExposeRecord fabricates an expose record.
func NewExposeRecord(d ExposeData) Record {
	d.Type = uint32(EventExpose)
	return put(d)
}

// NewConfigureRecord fabricates a configure record.
func NewConfigureRecord(d ConfigureData) Record {
	d.Type = uint32(EventConfigure)
	return put(d)
}

// NewTimerRecord fabricates a timer record.
func NewTimerRecord(d TimerData) Record {
	d.Type = uint32(EventTimer)
	return put(d)
}

// NewRawRecord fabricates a record carrying only a tag. Tests use it
// for tags outside the converted set.
func NewRawRecord(kind EventType, flags uint32) Record {
	return put(anyData{Type: uint32(kind), Flags: flags})
}
