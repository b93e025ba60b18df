//go:build linux || darwin || freebsd

package draw

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/openchord/go-pugl/internal/logger"
)

var (
	loadOnce sync.Once
	loadErr  error
)

func cairoNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libcairo.2.dylib", "libcairo.dylib"}
	}
	return []string{"libcairo.so.2", "libcairo.so"}
}

// loadCairo binds libcairo on first call. Failure is remembered and
// leaves every canvas inert.
func loadCairo() error {
	loadOnce.Do(func() {
		var lib uintptr
		for _, name := range cairoNames() {
			h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err != nil {
				logger.Debugf("draw: dlopen %s: %v", name, err)
				loadErr = err
				continue
			}
			lib = h
			loadErr = nil
			break
		}
		if lib == 0 {
			loadErr = fmt.Errorf("draw: load cairo: %w", loadErr)
			logger.Warnf("%v", loadErr)
			return
		}
		loadErr = registerCairo(lib)
	})
	return loadErr
}

func registerCairo(lib uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw: incompatible cairo: %v", r)
		}
	}()
	purego.RegisterLibFunc(&cairoSave, lib, "cairo_save")
	purego.RegisterLibFunc(&cairoRestore, lib, "cairo_restore")
	purego.RegisterLibFunc(&cairoSetSourceRGB, lib, "cairo_set_source_rgb")
	purego.RegisterLibFunc(&cairoSetSourceRGBA, lib, "cairo_set_source_rgba")
	purego.RegisterLibFunc(&cairoSetLineWidth, lib, "cairo_set_line_width")
	purego.RegisterLibFunc(&cairoMoveTo, lib, "cairo_move_to")
	purego.RegisterLibFunc(&cairoLineTo, lib, "cairo_line_to")
	purego.RegisterLibFunc(&cairoRectangle, lib, "cairo_rectangle")
	purego.RegisterLibFunc(&cairoArc, lib, "cairo_arc")
	purego.RegisterLibFunc(&cairoClosePath, lib, "cairo_close_path")
	purego.RegisterLibFunc(&cairoNewPath, lib, "cairo_new_path")
	purego.RegisterLibFunc(&cairoFill, lib, "cairo_fill")
	purego.RegisterLibFunc(&cairoFillPreserve, lib, "cairo_fill_preserve")
	purego.RegisterLibFunc(&cairoStroke, lib, "cairo_stroke")
	purego.RegisterLibFunc(&cairoPaint, lib, "cairo_paint")
	purego.RegisterLibFunc(&cairoClip, lib, "cairo_clip")
	purego.RegisterLibFunc(&cairoResetClip, lib, "cairo_reset_clip")
	purego.RegisterLibFunc(&cairoTranslate, lib, "cairo_translate")
	purego.RegisterLibFunc(&cairoScale, lib, "cairo_scale")
	purego.RegisterLibFunc(&cairoRotate, lib, "cairo_rotate")
	purego.RegisterLibFunc(&cairoSelectFontFace, lib, "cairo_select_font_face")
	purego.RegisterLibFunc(&cairoSetFontSize, lib, "cairo_set_font_size")
	purego.RegisterLibFunc(&cairoShowText, lib, "cairo_show_text")
	purego.RegisterLibFunc(&cairoTextExtents, lib, "cairo_text_extents")
	return nil
}
