package pugl

import (
	"fmt"
	"time"

	"github.com/openchord/go-pugl/internal/native"
)

// WorldKind selects how the native world integrates with the
// process: a program owns its main loop, a module embeds into a
// host's loop (plugin UIs).
type WorldKind int

const (
	WorldProgram WorldKind = iota
	WorldModule
)

func (k WorldKind) String() string {
	switch k {
	case WorldProgram:
		return "program"
	case WorldModule:
		return "module"
	}
	return fmt.Sprintf("worldkind(%d)", int(k))
}

// World is one native event-dispatch context, shared by every view
// attached to it. Worlds are created through NewView and destroyed
// when the last view holding them closes; there is no direct
// constructor.
type World struct {
	id     WorldID
	handle native.WorldHandle
	drv    native.Driver
	kind   WorldKind
	refs   int
	live   bool
}

// ID names this world in the registry.
func (w *World) ID() WorldID { return w.id }

// Kind reports whether the world runs as a program or a module.
func (w *World) Kind() WorldKind { return w.kind }

// Alive reports whether the native world still exists.
func (w *World) Alive() bool { return w.live }

// RefCount reports how many views hold this world.
func (w *World) RefCount() int { return w.refs }

func (w *World) guard(op string) error {
	if !w.live {
		return fmt.Errorf("pugl: %s: %w", op, ErrWorldDestroyed)
	}
	return nil
}

// Update dispatches pending native events to the views of this
// world. A negative timeout blocks until an event arrives, zero
// polls, positive waits at most that long.
func (w *World) Update(timeout time.Duration) error {
	if err := w.guard("update"); err != nil {
		return err
	}
	seconds := timeout.Seconds()
	if timeout < 0 {
		seconds = -1
	}
	return statusErr("update", w.drv.Update(w.handle, seconds))
}

// Time reads the world clock. Event timestamps use the same epoch.
func (w *World) Time() (time.Duration, error) {
	if err := w.guard("time"); err != nil {
		return 0, err
	}
	return time.Duration(w.drv.Time(w.handle) * float64(time.Second)), nil
}

// SetClassName sets the class used to identify the application to
// the window system, shared by all views of the world.
func (w *World) SetClassName(name string) error {
	if err := w.guard("set class name"); err != nil {
		return err
	}
	return statusErr("set class name", w.drv.SetClassName(w.handle, name))
}
