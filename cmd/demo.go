package cmd

import (
	"fmt"
	"runtime"
	"time"

	pugl "github.com/openchord/go-pugl"
	"github.com/openchord/go-pugl/draw"
	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/openchord/go-pugl/internal/ui"
	"github.com/spf13/cobra"
)

const demoTimerID uintptr = 1

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open a window with an animated drawing",
	Long: `Open a native window and draw a bouncing square with the cairo
backend. Useful for checking that drawing, timers and input work on
this machine.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	help := ui.ControlsHelp{
		Controls: []ui.Control{
			{Key: "arrows", Desc: "Move the square"},
			{Key: "click", Desc: "Place the square"},
			{Key: "space", Desc: "Pause or resume the animation"},
			{Key: "q/esc", Desc: "Quit"},
		},
	}
	fmt.Println(help.View())

	// The whole window life runs on this one locked goroutine
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h := &demoHandler{
		x: 40, y: 40,
		vx: 2.5, vy: 1.8,
		side:    48,
		width:   float64(cfg.Window.Width),
		height:  float64(cfg.Window.Height),
		focused: true,
	}

	view, err := pugl.NewView(h,
		pugl.WithTitle("pugl demo"),
		pugl.WithDefaultSize(cfg.Window.Width, cfg.Window.Height),
		pugl.WithMinSize(160, 120),
		pugl.WithClassName(cfg.Window.ClassName),
		pugl.WithBackend(configuredBackend(cfg)),
		pugl.WithResizable(true),
	)
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	h.view = view

	if err := view.Show(); err != nil {
		view.Close()
		return fmt.Errorf("failed to show window: %w", err)
	}

	if err := h.setAnimating(true); err != nil {
		logger.Warnf("Animation timer unavailable: %v", err)
	}

	logger.Infof("Demo window open (%s backend)", cfg.Driver.Backend)

	for view.Alive() && !h.quit {
		if err := view.Update(100 * time.Millisecond); err != nil {
			logger.Errorf("Event loop failed: %v", err)
			break
		}
	}

	if err := view.Close(); err != nil {
		return err
	}

	logger.Infof("Demo finished after %d frames", h.frames)
	return nil
}

// demoHandler draws a bouncing square and moves it with the keyboard,
// the pointer and a repeating timer.
type demoHandler struct {
	view      *pugl.View
	x, y      float64
	vx, vy    float64
	side      float64
	width     float64
	height    float64
	animating bool
	focused   bool
	quit      bool
	frames    int
}

func (h *demoHandler) Event(ev pugl.Event) error {
	switch e := ev.(type) {
	case pugl.KeyPress:
		return h.keyPressed(e.Key)
	case pugl.ButtonPress:
		h.x = e.Pos.X - h.side/2
		h.y = e.Pos.Y - h.side/2
		h.clamp()
		return h.view.PostRedisplay()
	}
	return nil
}

func (h *demoHandler) keyPressed(k pugl.Key) error {
	const step = 12.0
	switch {
	case k.Special == pugl.KeyLeft:
		h.x -= step
	case k.Special == pugl.KeyRight:
		h.x += step
	case k.Special == pugl.KeyUp:
		h.y -= step
	case k.Special == pugl.KeyDown:
		h.y += step
	case k.Rune == ' ':
		return h.setAnimating(!h.animating)
	case k.Rune == 'q', k.Special == pugl.KeyEscape:
		h.quit = true
		return nil
	default:
		return nil
	}
	h.clamp()
	return h.view.PostRedisplay()
}

func (h *demoHandler) setAnimating(on bool) error {
	if on == h.animating {
		return nil
	}
	h.animating = on
	if on {
		return h.view.StartTimer(demoTimerID, 16*time.Millisecond)
	}
	return h.view.StopTimer(demoTimerID)
}

func (h *demoHandler) Exposed(ev pugl.Expose, cr *draw.Canvas) {
	bg := 0.13
	if !h.focused {
		bg = 0.07
	}
	cr.SetSourceRGB(bg, bg, 0.16)
	cr.Paint()

	cr.SetSourceRGB(0.22, 0.65, 0.96)
	cr.Rectangle(h.x, h.y, h.side, h.side)
	cr.Fill()

	cr.SetSourceRGB(0.85, 0.85, 0.88)
	cr.SelectFontFace("monospace", draw.SlantNormal, draw.WeightNormal)
	cr.SetFontSize(12)
	cr.MoveTo(8, h.height-10)
	cr.ShowText("arrows move, space pauses, q quits")

	h.frames++
}

func (h *demoHandler) Resized(size pugl.Size) {
	h.width, h.height = size.W, size.H
	h.clamp()
}

func (h *demoHandler) CloseRequested() {
	h.quit = true
}

func (h *demoHandler) FocusChanged(focused bool) {
	h.focused = focused
	if err := h.view.PostRedisplay(); err != nil {
		logger.Debugf("Redisplay failed: %v", err)
	}
}

func (h *demoHandler) TimerFired(id uintptr) {
	if id != demoTimerID {
		return
	}
	h.x += h.vx
	h.y += h.vy
	if h.x <= 0 || h.x+h.side >= h.width {
		h.vx = -h.vx
	}
	if h.y <= 0 || h.y+h.side >= h.height {
		h.vy = -h.vy
	}
	h.clamp()
	if err := h.view.PostRedisplay(); err != nil {
		logger.Debugf("Redisplay failed: %v", err)
	}
}

func (h *demoHandler) clamp() {
	if h.x < 0 {
		h.x = 0
	}
	if h.y < 0 {
		h.y = 0
	}
	if limit := h.width - h.side; limit > 0 && h.x > limit {
		h.x = limit
	}
	if limit := h.height - h.side; limit > 0 && h.y > limit {
		h.y = limit
	}
}
