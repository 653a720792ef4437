//go:build !windows

package winapi

import (
	"fmt"
	"runtime"
)

// NewUser32Port always fails outside Windows.
func NewUser32Port() (Port, error) {
	return nil, fmt.Errorf("%w: unsupported platform %s", ErrNativeInputUnavailable, runtime.GOOS)
}
