//go:build !(linux || darwin || freebsd)

package native

import (
	"fmt"
	"runtime"
)

func openPlatform(string) (Driver, error) {
	return nil, fmt.Errorf("native: no platform driver for %s/%s", runtime.GOOS, runtime.GOARCH)
}
