// Package draw exposes the cairo drawing surface of a view. Expose
// handlers receive a Canvas valid for the duration of the callback;
// drawing outside an expose is undefined in the native library and
// is not supported here either.
//
// The cairo library is loaded on first use. On systems without it,
// and for views using the stub backend, every Canvas method is a
// no-op, so handlers can draw unconditionally.
package draw

// Canvas wraps a cairo context. The zero-pointer canvas is inert.
type Canvas struct {
	cr uintptr
}

// Wrap adopts a raw cairo context pointer. A zero pointer yields an
// inert canvas whose methods do nothing, which is what views without
// a drawing backend hand to expose handlers.
func Wrap(cr uintptr) *Canvas {
	return &Canvas{cr: cr}
}

// Raw is the underlying cairo context pointer, zero when inert. It
// exists for interop with other cairo bindings.
func (c *Canvas) Raw() uintptr {
	if c == nil {
		return 0
	}
	return c.cr
}

func (c *Canvas) ok() bool {
	return c != nil && c.cr != 0 && loadCairo() == nil
}

// FontSlant selects the slant of SelectFontFace.
type FontSlant int32

const (
	SlantNormal FontSlant = iota
	SlantItalic
	SlantOblique
)

// FontWeight selects the weight of SelectFontFace.
type FontWeight int32

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// TextExtents describes the space ShowText would use.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

var (
	cairoSave           func(uintptr)
	cairoRestore        func(uintptr)
	cairoSetSourceRGB   func(uintptr, float64, float64, float64)
	cairoSetSourceRGBA  func(uintptr, float64, float64, float64, float64)
	cairoSetLineWidth   func(uintptr, float64)
	cairoMoveTo         func(uintptr, float64, float64)
	cairoLineTo         func(uintptr, float64, float64)
	cairoRectangle      func(uintptr, float64, float64, float64, float64)
	cairoArc            func(uintptr, float64, float64, float64, float64, float64)
	cairoClosePath      func(uintptr)
	cairoNewPath        func(uintptr)
	cairoFill           func(uintptr)
	cairoFillPreserve   func(uintptr)
	cairoStroke         func(uintptr)
	cairoPaint          func(uintptr)
	cairoClip           func(uintptr)
	cairoResetClip      func(uintptr)
	cairoTranslate      func(uintptr, float64, float64)
	cairoScale          func(uintptr, float64, float64)
	cairoRotate         func(uintptr, float64)
	cairoSelectFontFace func(uintptr, string, int32, int32)
	cairoSetFontSize    func(uintptr, float64)
	cairoShowText       func(uintptr, string)
	cairoTextExtents    func(uintptr, string, *TextExtents)
)

// Save pushes the drawing state.
func (c *Canvas) Save() {
	if c.ok() {
		cairoSave(c.cr)
	}
}

// Restore pops the drawing state.
func (c *Canvas) Restore() {
	if c.ok() {
		cairoRestore(c.cr)
	}
}

// SetSourceRGB sets the drawing color. Components are 0 to 1.
func (c *Canvas) SetSourceRGB(r, g, b float64) {
	if c.ok() {
		cairoSetSourceRGB(c.cr, r, g, b)
	}
}

// SetSourceRGBA sets the drawing color with alpha.
func (c *Canvas) SetSourceRGBA(r, g, b, a float64) {
	if c.ok() {
		cairoSetSourceRGBA(c.cr, r, g, b, a)
	}
}

// SetLineWidth sets the stroke width in user units.
func (c *Canvas) SetLineWidth(w float64) {
	if c.ok() {
		cairoSetLineWidth(c.cr, w)
	}
}

// MoveTo starts a new sub-path at the point.
func (c *Canvas) MoveTo(x, y float64) {
	if c.ok() {
		cairoMoveTo(c.cr, x, y)
	}
}

// LineTo extends the path with a line to the point.
func (c *Canvas) LineTo(x, y float64) {
	if c.ok() {
		cairoLineTo(c.cr, x, y)
	}
}

// Rectangle appends a rectangle to the path.
func (c *Canvas) Rectangle(x, y, w, h float64) {
	if c.ok() {
		cairoRectangle(c.cr, x, y, w, h)
	}
}

// Arc appends a circular arc, angles in radians.
func (c *Canvas) Arc(xc, yc, radius, angle1, angle2 float64) {
	if c.ok() {
		cairoArc(c.cr, xc, yc, radius, angle1, angle2)
	}
}

// ClosePath closes the current sub-path.
func (c *Canvas) ClosePath() {
	if c.ok() {
		cairoClosePath(c.cr)
	}
}

// NewPath clears the current path.
func (c *Canvas) NewPath() {
	if c.ok() {
		cairoNewPath(c.cr)
	}
}

// Fill fills the path and clears it.
func (c *Canvas) Fill() {
	if c.ok() {
		cairoFill(c.cr)
	}
}

// FillPreserve fills the path and keeps it for stroking.
func (c *Canvas) FillPreserve() {
	if c.ok() {
		cairoFillPreserve(c.cr)
	}
}

// Stroke outlines the path and clears it.
func (c *Canvas) Stroke() {
	if c.ok() {
		cairoStroke(c.cr)
	}
}

// Paint covers the whole clip region with the source color.
func (c *Canvas) Paint() {
	if c.ok() {
		cairoPaint(c.cr)
	}
}

// Clip intersects the clip region with the current path.
func (c *Canvas) Clip() {
	if c.ok() {
		cairoClip(c.cr)
	}
}

// ResetClip removes the clip set by Clip.
func (c *Canvas) ResetClip() {
	if c.ok() {
		cairoResetClip(c.cr)
	}
}

// Translate moves the user-space origin.
func (c *Canvas) Translate(x, y float64) {
	if c.ok() {
		cairoTranslate(c.cr, x, y)
	}
}

// Scale scales user space.
func (c *Canvas) Scale(x, y float64) {
	if c.ok() {
		cairoScale(c.cr, x, y)
	}
}

// Rotate rotates user space, radians.
func (c *Canvas) Rotate(angle float64) {
	if c.ok() {
		cairoRotate(c.cr, angle)
	}
}

// SelectFontFace picks the font for ShowText.
func (c *Canvas) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	if c.ok() {
		cairoSelectFontFace(c.cr, family, int32(slant), int32(weight))
	}
}

// SetFontSize sets the font size in user units.
func (c *Canvas) SetFontSize(size float64) {
	if c.ok() {
		cairoSetFontSize(c.cr, size)
	}
}

// ShowText draws text at the current point.
func (c *Canvas) ShowText(text string) {
	if c.ok() {
		cairoShowText(c.cr, text)
	}
}

// Extents measures text in the current font. Inert canvases report
// zero extents.
func (c *Canvas) Extents(text string) TextExtents {
	var ext TextExtents
	if c.ok() {
		cairoTextExtents(c.cr, text, &ext)
	}
	return ext
}
