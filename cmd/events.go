package cmd

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	pugl "github.com/openchord/go-pugl"
	"github.com/openchord/go-pugl/draw"
	"github.com/openchord/go-pugl/internal/config"
	"github.com/openchord/go-pugl/internal/logger"
	"github.com/openchord/go-pugl/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var presetName string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Open a window and watch its event stream",
	Long: `Open a native window and show every event it delivers in an inline
terminal UI. Closing the window or pressing q ends the watch.`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Window preset from the config")
	eventsCmd.Flags().StringP("title", "t", "", "Window title")
	eventsCmd.Flags().Int("width", 0, "Window width in pixels")
	eventsCmd.Flags().Int("height", 0, "Window height in pixels")

	// Bind flags to viper
	viper.BindPFlag("window.title", eventsCmd.Flags().Lookup("title"))
	viper.BindPFlag("window.width", eventsCmd.Flags().Lookup("width"))
	viper.BindPFlag("window.height", eventsCmd.Flags().Lookup("height"))

	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	title, width, height := cfg.Window.Title, cfg.Window.Width, cfg.Window.Height
	if presetName != "" {
		preset, err := config.GetPreset(presetName)
		if err != nil {
			return err
		}
		// Explicit flags still win over the preset
		if !cmd.Flags().Changed("title") {
			title = preset.Title
		}
		if !cmd.Flags().Changed("width") {
			width = preset.Width
		}
		if !cmd.Flags().Changed("height") {
			height = preset.Height
		}
	}

	// Send log output to a file since the TUI owns the terminal. This
	// must happen before the driver loads to keep its logs off screen.
	logFile, err := logger.SetupFileLogging("events")
	if err != nil {
		return fmt.Errorf("failed to set up file logging: %w", err)
	}
	defer logFile.Close()

	driverName, err := pugl.DriverName()
	if err != nil {
		return err
	}

	model := ui.NewWatchModel(title, driverName)
	p := tea.NewProgram(model)

	// The window loop needs its own goroutine: it pins the OS thread
	// and blocks in the native library while Bubble Tea runs here.
	var done atomic.Bool
	errCh := make(chan error, 1)
	go func() {
		errCh <- watchWindow(p, &done, cfg, title, width, height)
	}()

	_, uiErr := p.Run()

	// Tell the loop to stop and wait for it to release the window
	done.Store(true)
	loopErr := <-errCh

	if uiErr != nil {
		return uiErr
	}
	return loopErr
}

// watchWindow owns the native window for its whole life. Everything
// that touches the binding happens on this one locked goroutine.
func watchWindow(p *tea.Program, done *atomic.Bool, cfg *config.Config, title string, width, height int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Give the TUI a moment to start consuming messages; sending into
	// a program that is not running yet blocks
	time.Sleep(200 * time.Millisecond)

	h := &watchHandler{p: p}
	view, err := pugl.NewView(h,
		pugl.WithTitle(title),
		pugl.WithDefaultSize(width, height),
		pugl.WithClassName(cfg.Window.ClassName),
		pugl.WithBackend(configuredBackend(cfg)),
		pugl.WithResizable(cfg.Window.Resizable),
		pugl.WithKeyRepeat(cfg.Window.KeyRepeat),
	)
	if err != nil {
		logger.Errorf("Failed to open window: %v", err)
		p.Send(tea.Quit())
		return err
	}

	if err := view.Show(); err != nil {
		logger.Errorf("Failed to show window: %v", err)
		p.Send(tea.Quit())
		view.Close()
		return err
	}

	for view.Alive() && !done.Load() && !h.closeRequested {
		if err := view.Update(100 * time.Millisecond); err != nil {
			logger.Errorf("Event loop failed: %v", err)
			break
		}
	}

	p.Send(ui.ViewClosedMsg{})
	return view.Close()
}

// watchHandler forwards every window event into the terminal UI.
type watchHandler struct {
	p              *tea.Program
	opened         bool
	closeRequested bool
}

func (h *watchHandler) send(ev pugl.Event) {
	h.p.Send(ui.EventMsg{Entry: ui.Describe(ev)})
}

func (h *watchHandler) Event(ev pugl.Event) error {
	if m, ok := ev.(pugl.Motion); ok {
		h.p.Send(ui.PointerMsg{X: m.Pos.X, Y: m.Pos.Y})
	}
	h.send(ev)
	return nil
}

func (h *watchHandler) Exposed(ev pugl.Expose, cr *draw.Canvas) {
	if !h.opened {
		h.opened = true
		h.p.Send(ui.ViewOpenedMsg{})
	}

	cr.SetSourceRGB(0.12, 0.12, 0.14)
	cr.Paint()

	h.send(ev)
}

func (h *watchHandler) Resized(size pugl.Size) {
	h.p.Send(ui.ViewSizeMsg{Width: int(size.W), Height: int(size.H)})
	h.send(pugl.Resize{Size: size})
}

func (h *watchHandler) CloseRequested() {
	h.send(pugl.Close{})
	// Let the loop close the view between updates instead of tearing
	// it down from inside the event callback
	h.closeRequested = true
}
