package winapi

// Port is the capability surface of user32 that input injection needs.
type Port interface {
	// SendInput submits the records in one call and returns how many were accepted.
	SendInput(inputs []Input) (uint32, error)

	// GetSystemMetrics returns the value for the given SM_* index.
	GetSystemMetrics(index int32) (int32, error)
}

// unavailablePort stands in when user32 cannot be loaded, so callers get a
// descriptive error instead of a nil port.
type unavailablePort struct {
	err error
}

func (p unavailablePort) SendInput(inputs []Input) (uint32, error) {
	return 0, p.err
}

func (p unavailablePort) GetSystemMetrics(index int32) (int32, error) {
	return 0, p.err
}

// DefaultPort returns the native port, or a port that fails every call with
// ErrNativeInputUnavailable when the native one cannot be created.
func DefaultPort() Port {
	port, err := NewUser32Port()
	if err != nil {
		return unavailablePort{err: err}
	}
	return port
}
