//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procSendInput        = user32.NewProc("SendInput")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

type user32Port struct{}

// NewUser32Port loads user32.dll and resolves the procedures used for injection.
func NewUser32Port() (Port, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeInputUnavailable, err)
	}

	for _, proc := range []*windows.LazyProc{procSendInput, procGetSystemMetrics} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNativeInputUnavailable, err)
		}
	}

	return user32Port{}, nil
}

func (user32Port) SendInput(inputs []Input) (uint32, error) {
	if len(inputs) == 0 {
		return 0, nil
	}

	r1, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(InputSize),
	)
	sent := uint32(r1)
	if sent == uint32(len(inputs)) {
		return sent, nil
	}

	// SendInput reports UIPI blocking and similar failures through GetLastError
	if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
		return sent, errno
	}
	return sent, nil
}

func (user32Port) GetSystemMetrics(index int32) (int32, error) {
	r1, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int32(r1), nil
}
