package winapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks errors the caller can correct by changing the request.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNativeInputUnavailable is returned when user32 cannot be loaded on this host.
	ErrNativeInputUnavailable = errors.New("native input injection is not available on this host")

	// ErrScreenMetrics is returned when GetSystemMetrics does not yield usable geometry.
	ErrScreenMetrics = errors.New("cannot retrieve virtual screen dimensions via GetSystemMetrics")
)

// InvalidArgumentf formats an error that wraps ErrInvalidArgument.
func InvalidArgumentf(format string, args ...interface{}) error {
	return &invalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string {
	return e.msg
}

func (e *invalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsInvalidArgument reports whether err is caller-correctable.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// DispatchError is returned when SendInput accepts fewer records than submitted.
type DispatchError struct {
	Submitted int
	Accepted  int
	Err       error
}

func (e *DispatchError) Error() string {
	msg := fmt.Sprintf("SendInput API call failed. %d of %d inputs succeeded", e.Accepted, e.Submitted)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
