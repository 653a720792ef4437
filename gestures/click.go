package gestures

import (
	"fmt"

	"github.com/mobile-next/wingest/winapi"
)

const (
	DefaultRepeatCount        = 1
	DefaultInterRepeatDelayMs = 100
)

// ClickRequest describes a click gesture.
type ClickRequest struct {
	ElementID    string             `json:"elementId,omitempty"`
	X            *int               `json:"x,omitempty"`
	Y            *int               `json:"y,omitempty"`
	Button       winapi.MouseButton `json:"button,omitempty"`
	ModifierKeys ModifierKeys       `json:"modifierKeys,omitempty"`
	// PressDurationMs holds the button down this long. Without it a single
	// record carrying both down and up flags is sent.
	PressDurationMs *int `json:"pressDurationMs,omitempty"`
	RepeatCount     *int `json:"repeatCount,omitempty"`
	// InterRepeatDelayMs is applied after every click, the last one included.
	InterRepeatDelayMs *int `json:"interRepeatDelayMs,omitempty"`
}

// Click moves the cursor to the target and clicks RepeatCount times.
func (r *Runner) Click(req ClickRequest) error {
	log := r.newLog("click")

	button := req.Button
	if button == "" {
		button = winapi.MouseButtonLeft
	}
	repeatCount := intOrDefault(req.RepeatCount, DefaultRepeatCount)
	if repeatCount < 1 {
		return winapi.InvalidArgumentf("repeatCount must be a positive integer, got %d", repeatCount)
	}
	if err := requireNonNegative("pressDurationMs", req.PressDurationMs); err != nil {
		return err
	}
	if err := requireNonNegative("interRepeatDelayMs", req.InterRepeatDelayMs); err != nil {
		return err
	}
	pressDuration := intOrDefault(req.PressDurationMs, 0)
	interRepeatDelay := intOrDefault(req.InterRepeatDelayMs, DefaultInterRepeatDelayMs)

	press, release, err := ModifierInputs(req.ModifierKeys)
	if err != nil {
		return err
	}

	point, err := r.resolver.Resolve(Target{ElementID: req.ElementID, X: req.X, Y: req.Y}, "", log)
	if err != nil {
		return err
	}

	swapped, err := r.metrics.IsLeftRightSwapped()
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
	down, err := winapi.MouseButtonInput(button, winapi.ButtonActionDown, swapped)
	if err != nil {
		return err
	}
	up, err := winapi.MouseButtonInput(button, winapi.ButtonActionUp, swapped)
	if err != nil {
		return err
	}
	click, err := winapi.MouseButtonInput(button, winapi.ButtonActionClick, swapped)
	if err != nil {
		return err
	}

	log.Debugf("Clicking %s button %d time(s) at (%d, %d)", button, repeatCount, point.X, point.Y)
	return r.withModifiers(log, press, release, func() error {
		if err := r.dispatcher.Dispatch(move); err != nil {
			return fmt.Errorf("failed to move cursor to (%d,%d): %w", point.X, point.Y, err)
		}

		for i := 0; i < repeatCount; i++ {
			if pressDuration > 0 {
				err := r.holdButton(log, down, up, func() error {
					r.wait(pressDuration)
					return nil
				})
				if err != nil {
					return err
				}
			} else if err := r.dispatcher.Dispatch(click); err != nil {
				return fmt.Errorf("failed to click %s button: %w", button, err)
			}

			r.wait(interRepeatDelay)
		}
		return nil
	})
}
