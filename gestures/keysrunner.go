package gestures

import (
	"fmt"
)

// KeysRequest is a keyboard input sequence.
type KeysRequest struct {
	Actions KeyActions `json:"actions"`
}

// Keys parses the actions and submits the resulting batches in order,
// sleeping for every pause in between.
func (r *Runner) Keys(req KeysRequest) error {
	log := r.newLog("keys")

	steps, err := ParseKeyActions(req.Actions)
	if err != nil {
		return err
	}

	for i, step := range steps {
		if step.IsPause() {
			log.Debugf("Pausing for %s", step.Pause)
			r.sleep(step.Pause)
			continue
		}
		if err := r.dispatcher.Dispatch(step.Inputs...); err != nil {
			return fmt.Errorf("failed to send key batch #%d: %w", i+1, err)
		}
	}
	return nil
}
