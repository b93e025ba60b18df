package pugl

type viewConfig struct {
	world     *World
	worldKind WorldKind
	className string
	backend   Backend

	// steps run against the view right after the native view and
	// backend exist, in the order the options were given.
	steps []func(*View) error
}

func defaultViewConfig() viewConfig {
	return viewConfig{backend: BackendCairo}
}

// ViewOption configures a view at creation.
type ViewOption func(*viewConfig)

func (c *viewConfig) step(f func(*View) error) {
	c.steps = append(c.steps, f)
}

// WithWorld attaches the new view to an existing world instead of
// creating one, sharing its event loop and lifetime. If the world
// was already destroyed, the view gets a fresh world instead.
func WithWorld(w *World) ViewOption {
	return func(c *viewConfig) { c.world = w }
}

// WithWorldKind selects the kind of world to create when the view
// does not join an existing one. The default is WorldProgram.
func WithWorldKind(k WorldKind) ViewOption {
	return func(c *viewConfig) { c.worldKind = k }
}

// WithClassName sets the window-system class of a freshly created
// world.
func WithClassName(name string) ViewOption {
	return func(c *viewConfig) { c.className = name }
}

// WithBackend selects the drawing backend. The default is
// BackendCairo; BackendStub opens a view without drawing support.
func WithBackend(b Backend) ViewOption {
	return func(c *viewConfig) { c.backend = b }
}

// WithParentWindow embeds the view in a native window of the host,
// for plugin UIs. The id is whatever the host's windowing API calls
// a window handle.
func WithParentWindow(win uintptr) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error {
			return statusErr("set parent window", v.drv.SetParentWindow(v.handle, win))
		})
	}
}

// WithTitle sets the window title.
func WithTitle(title string) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetTitle(title) })
	}
}

// WithFrame positions and sizes the view before it is realized.
func WithFrame(r Rect) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetFrame(r) })
	}
}

// WithDefaultSize sets the size the view takes when no frame is set.
func WithDefaultSize(width, height int) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetDefaultSize(width, height) })
	}
}

// WithMinSize bounds how small the window system may resize the view.
func WithMinSize(width, height int) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetMinSize(width, height) })
	}
}

// WithMaxSize bounds how large the window system may resize the view.
func WithMaxSize(width, height int) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetMaxSize(width, height) })
	}
}

// WithAspectRatio constrains resizing between a minimum and maximum
// width to height ratio.
func WithAspectRatio(minW, minH, maxW, maxH int) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetAspectRatio(minW, minH, maxW, maxH) })
	}
}

// WithResizable lets the user resize the window.
func WithResizable(resizable bool) ViewOption {
	return hintOption(HintResizable, resizable)
}

// WithKeyRepeat delivers repeated key presses while a key is held.
// Off by default, matching the native library's repeat filtering.
func WithKeyRepeat(enabled bool) ViewOption {
	return hintOption(HintIgnoreKeyRepeat, !enabled)
}

// WithDoubleBuffer draws to a back buffer and swaps on expose.
func WithDoubleBuffer(enabled bool) ViewOption {
	return hintOption(HintDoubleBuffer, enabled)
}

// WithCursor sets the pointer cursor shown over the view.
func WithCursor(cur Cursor) ViewOption {
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetCursor(cur) })
	}
}

func hintOption(h Hint, on bool) ViewOption {
	value := HintOff
	if on {
		value = HintOn
	}
	return func(c *viewConfig) {
		c.step(func(v *View) error { return v.SetHint(h, value) })
	}
}
