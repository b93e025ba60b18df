//go:build !(linux || darwin || freebsd)

package draw

import "errors"

func loadCairo() error {
	return errors.New("draw: cairo is not available on this platform")
}
