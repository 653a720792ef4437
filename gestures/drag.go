package gestures

import (
	"fmt"

	"github.com/mobile-next/wingest/winapi"
)

const (
	DefaultDragDurationMs = 5000

	// some applications only recognize a drag when the button press and
	// the moves do not happen at the same instant
	dragSettleDelayMs = 10
)

// DragRequest describes a drag and drop gesture with the left button.
type DragRequest struct {
	StartElementID string       `json:"startElementId,omitempty"`
	StartX         *int         `json:"startX,omitempty"`
	StartY         *int         `json:"startY,omitempty"`
	EndElementID   string       `json:"endElementId,omitempty"`
	EndX           *int         `json:"endX,omitempty"`
	EndY           *int         `json:"endY,omitempty"`
	ModifierKeys   ModifierKeys `json:"modifierKeys,omitempty"`
	// DurationMs is the time between pressing the button and moving to the end point.
	DurationMs *int `json:"durationMs,omitempty"`
}

// Drag presses the left button at the start point, waits, moves to the end
// point and releases the button there.
func (r *Runner) Drag(req DragRequest) error {
	log := r.newLog("drag")

	if err := requireNonNegative("durationMs", req.DurationMs); err != nil {
		return err
	}
	duration := intOrDefault(req.DurationMs, DefaultDragDurationMs)

	// one snapshot so both points are normalized against the same screen
	size, err := r.metrics.VirtualScreenSize()
	if err != nil {
		return err
	}

	press, release, err := ModifierInputs(req.ModifierKeys)
	if err != nil {
		return err
	}

	start, err := r.resolver.Resolve(Target{ElementID: req.StartElementID, X: req.StartX, Y: req.StartY}, "Starting drag point", log)
	if err != nil {
		return err
	}
	end, err := r.resolver.Resolve(Target{ElementID: req.EndElementID, X: req.EndX, Y: req.EndY}, "Ending drag point", log)
	if err != nil {
		return err
	}

	swapped, err := r.metrics.IsLeftRightSwapped()
	if err != nil {
		return err
	}

	moveStart, err := encodeMove(start, size)
	if err != nil {
		return err
	}
	moveEnd, err := encodeMove(end, size)
	if err != nil {
		return err
	}
	down, err := winapi.MouseButtonInput(winapi.MouseButtonLeft, winapi.ButtonActionDown, swapped)
	if err != nil {
		return err
	}
	up, err := winapi.MouseButtonInput(winapi.MouseButtonLeft, winapi.ButtonActionUp, swapped)
	if err != nil {
		return err
	}

	log.Debugf("Dragging from (%d, %d) to (%d, %d) in %dms", start.X, start.Y, end.X, end.Y, duration)
	return r.withModifiers(log, press, release, func() error {
		if err := r.dispatcher.Dispatch(moveStart); err != nil {
			return fmt.Errorf("failed to move cursor to (%d,%d): %w", start.X, start.Y, err)
		}
		r.wait(dragSettleDelayMs)

		return r.holdButton(log, down, up, func() error {
			r.wait(duration)
			if err := r.dispatcher.Dispatch(moveEnd); err != nil {
				return fmt.Errorf("failed to move cursor to (%d,%d): %w", end.X, end.Y, err)
			}
			r.wait(dragSettleDelayMs)
			return nil
		})
	})
}
