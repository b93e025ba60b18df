// Package pugl binds the pugl windowing library to Go. It wraps the
// native world and view objects with reference-counted ownership and
// converts the native event union into a closed set of typed events.
//
// The native library is single threaded. Every call into this package
// must happen on the one goroutine that drives the event loop, and
// that goroutine should pin itself with runtime.LockOSThread before
// the first view is created. The package keeps no locks; breaking the
// thread contract is a caller error, as it is in the C API.
//
// A minimal program:
//
//	type app struct{ view *pugl.View }
//
//	func (a *app) Event(ev pugl.Event) error      { return nil }
//	func (a *app) Resized(s pugl.Size)            {}
//	func (a *app) CloseRequested()                { a.view.Close() }
//	func (a *app) Exposed(e pugl.Expose, cr *draw.Canvas) {
//		cr.SetSourceRGB(0.1, 0.1, 0.1)
//		cr.Paint()
//	}
//
//	func main() {
//		runtime.LockOSThread()
//		a := &app{}
//		view, err := pugl.NewView(a,
//			pugl.WithTitle("hello"),
//			pugl.WithDefaultSize(480, 360))
//		if err != nil {
//			log.Fatal(err)
//		}
//		a.view = view
//		if err := view.Show(); err != nil {
//			log.Fatal(err)
//		}
//		for view.Alive() {
//			view.Update(-1)
//		}
//	}
//
// Set PUGL_DRIVER=mem to run against the in-memory driver instead of
// the platform library, and PUGL_LOG_LEVEL=debug to watch dispatch.
package pugl

import (
	"fmt"
	"os"

	"github.com/openchord/go-pugl/internal/native"
)

var drv native.Driver

// activeDriver opens the native driver on first use. PUGL_DRIVER
// selects the implementation; empty means the platform library.
func activeDriver() (native.Driver, error) {
	if drv == nil {
		d, err := native.Open(os.Getenv("PUGL_DRIVER"))
		if err != nil {
			return nil, fmt.Errorf("pugl: %w", err)
		}
		drv = d
	}
	return drv, nil
}

// DriverName reports which native driver is serving the process,
// loading it if needed.
func DriverName() (string, error) {
	d, err := activeDriver()
	if err != nil {
		return "", err
	}
	return d.Name(), nil
}
