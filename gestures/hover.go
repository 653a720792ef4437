package gestures

import (
	"fmt"

	"github.com/mobile-next/wingest/types"
	"github.com/mobile-next/wingest/winapi"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHoverDurationMs = 500
	// MaxHoverDurationMs caps a hover at ten minutes
	MaxHoverDurationMs = 10 * 60 * 1000

	hoverStepMs = 5
	// max number of move records encoded at the same time
	hoverEncodeLimit = 10
)

// HoverRequest describes a pointer movement from one point to another.
type HoverRequest struct {
	StartElementID string       `json:"startElementId,omitempty"`
	StartX         *int         `json:"startX,omitempty"`
	StartY         *int         `json:"startY,omitempty"`
	EndElementID   string       `json:"endElementId,omitempty"`
	EndX           *int         `json:"endX,omitempty"`
	EndY           *int         `json:"endY,omitempty"`
	ModifierKeys   ModifierKeys `json:"modifierKeys,omitempty"`
	DurationMs     *int         `json:"durationMs,omitempty"`
}

// HoverPath returns the points visited while moving from start to end in
// durationMs, one every 5ms. Both ends are included. Durations above
// MaxHoverDurationMs are sampled as if they were MaxHoverDurationMs.
func HoverPath(start, end types.Point, durationMs int) []types.Point {
	steps := min(max(durationMs/hoverStepMs, 1), MaxHoverDurationMs/hoverStepMs)

	points := make([]types.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, types.Point{
			X: start.X + (end.X-start.X)*i/steps,
			Y: start.Y + (end.Y-start.Y)*i/steps,
		})
	}
	return points
}

// encodeMoves builds a record per point, at most hoverEncodeLimit at a time.
// The records come back in the same order as the points.
func encodeMoves(points []types.Point, encode func(types.Point) (winapi.Input, error)) ([]winapi.Input, error) {
	inputs := make([]winapi.Input, len(points))

	var g errgroup.Group
	g.SetLimit(hoverEncodeLimit)
	for i, point := range points {
		i, point := i, point
		g.Go(func() error {
			input, err := encode(point)
			if err != nil {
				return fmt.Errorf("failed to encode hover point #%d: %w", i, err)
			}
			inputs[i] = input
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// Hover moves the cursor along a straight line between two points.
func (r *Runner) Hover(req HoverRequest) error {
	log := r.newLog("hover")

	if err := requireNonNegative("durationMs", req.DurationMs); err != nil {
		return err
	}
	duration := intOrDefault(req.DurationMs, DefaultHoverDurationMs)
	if duration > MaxHoverDurationMs {
		return winapi.InvalidArgumentf("durationMs must not exceed %d, got %d", MaxHoverDurationMs, duration)
	}

	size, err := r.metrics.VirtualScreenSize()
	if err != nil {
		return err
	}

	press, release, err := ModifierInputs(req.ModifierKeys)
	if err != nil {
		return err
	}

	start, err := r.resolver.Resolve(Target{ElementID: req.StartElementID, X: req.StartX, Y: req.StartY}, "Starting hover point", log)
	if err != nil {
		return err
	}
	end, err := r.resolver.Resolve(Target{ElementID: req.EndElementID, X: req.EndX, Y: req.EndY}, "Ending hover point", log)
	if err != nil {
		return err
	}

	moves, err := encodeMoves(HoverPath(start, end, duration), func(point types.Point) (winapi.Input, error) {
		return encodeMove(point, size)
	})
	if err != nil {
		return err
	}

	log.Debugf("Hovering from (%d, %d) to (%d, %d) in %d steps", start.X, start.Y, end.X, end.Y, len(moves)-1)
	return r.withModifiers(log, press, release, func() error {
		for i, move := range moves {
			if err := r.dispatcher.Dispatch(move); err != nil {
				return fmt.Errorf("failed to move cursor at hover step %d: %w", i, err)
			}
			if i < len(moves)-1 {
				r.wait(hoverStepMs)
			}
		}
		return nil
	})
}
