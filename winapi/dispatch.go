package winapi

// Dispatcher submits batches of input records to the system input queue.
type Dispatcher struct {
	port Port
}

// NewDispatcher creates a dispatcher on top of the given port.
func NewDispatcher(port Port) *Dispatcher {
	return &Dispatcher{port: port}
}

// Dispatch submits all inputs in a single call. A partially accepted batch
// is reported as a *DispatchError and never replayed, since the accepted
// part has already reached the input queue.
func (d *Dispatcher) Dispatch(inputs ...Input) error {
	if len(inputs) == 0 {
		return nil
	}

	accepted, err := d.port.SendInput(inputs)
	if err != nil || int(accepted) != len(inputs) {
		return &DispatchError{
			Submitted: len(inputs),
			Accepted:  int(accepted),
			Err:       err,
		}
	}

	return nil
}
