package gestures

import (
	"fmt"

	"github.com/mobile-next/wingest/winapi"
)

// ScrollRequest describes a mouse wheel gesture. Exactly one of DeltaX and
// DeltaY must be set; the value is in wheel detents.
type ScrollRequest struct {
	ElementID    string       `json:"elementId,omitempty"`
	X            *int         `json:"x,omitempty"`
	Y            *int         `json:"y,omitempty"`
	DeltaX       *int         `json:"deltaX,omitempty"`
	DeltaY       *int         `json:"deltaY,omitempty"`
	ModifierKeys ModifierKeys `json:"modifierKeys,omitempty"`
}

// Scroll moves the cursor to the target and rotates the wheel.
func (r *Runner) Scroll(req ScrollRequest) error {
	log := r.newLog("scroll")

	press, release, err := ModifierInputs(req.ModifierKeys)
	if err != nil {
		return err
	}

	point, err := r.resolver.Resolve(Target{ElementID: req.ElementID, X: req.X, Y: req.Y}, "", log)
	if err != nil {
		return err
	}

	size, err := r.metrics.VirtualScreenSize()
	if err != nil {
		return err
	}
	move, err := encodeMove(point, size)
	if err != nil {
		return err
	}
	wheel, err := winapi.MouseWheelInput(req.DeltaX, req.DeltaY)
	if err != nil {
		return err
	}

	return r.withModifiers(log, press, release, func() error {
		if err := r.dispatcher.Dispatch(move); err != nil {
			return fmt.Errorf("failed to move cursor to (%d,%d): %w", point.X, point.Y, err)
		}

		if wheel == nil {
			axis := "deltaX"
			if req.DeltaX == nil {
				axis = "deltaY"
			}
			log.Infof("There is no need to actually perform scroll with the given %s", axis)
			return nil
		}

		if err := r.dispatcher.Dispatch(*wheel); err != nil {
			return fmt.Errorf("failed to scroll: %w", err)
		}
		return nil
	})
}
