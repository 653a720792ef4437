package commands

import (
	"fmt"

	"github.com/mobile-next/wingest/gestures"
)

func describeTarget(elementID string, x, y *int) string {
	switch {
	case elementID != "" && x != nil && y != nil:
		return fmt.Sprintf("element %s at offset (%d,%d)", elementID, *x, *y)
	case elementID != "":
		return fmt.Sprintf("element %s", elementID)
	case x != nil && y != nil:
		return fmt.Sprintf("(%d,%d)", *x, *y)
	}
	return "?"
}

// ClickCommand clicks a mouse button at the given point or element
func ClickCommand(req gestures.ClickRequest) *CommandResponse {
	button := req.Button
	if button == "" {
		button = "left"
	}

	return runGesture(func(r *gestures.Runner) error {
		return r.Click(req)
	}, fmt.Sprintf("Clicked %s button at %s", button, describeTarget(req.ElementID, req.X, req.Y)))
}

// ScrollCommand rotates the mouse wheel at the given point or element
func ScrollCommand(req gestures.ScrollRequest) *CommandResponse {
	return runGesture(func(r *gestures.Runner) error {
		return r.Scroll(req)
	}, fmt.Sprintf("Scrolled at %s", describeTarget(req.ElementID, req.X, req.Y)))
}

// DragCommand drags with the left mouse button from one point to another
func DragCommand(req gestures.DragRequest) *CommandResponse {
	return runGesture(func(r *gestures.Runner) error {
		return r.Drag(req)
	}, fmt.Sprintf("Dragged from %s to %s",
		describeTarget(req.StartElementID, req.StartX, req.StartY),
		describeTarget(req.EndElementID, req.EndX, req.EndY)))
}

// HoverCommand moves the cursor from one point to another
func HoverCommand(req gestures.HoverRequest) *CommandResponse {
	return runGesture(func(r *gestures.Runner) error {
		return r.Hover(req)
	}, fmt.Sprintf("Hovered from %s to %s",
		describeTarget(req.StartElementID, req.StartX, req.StartY),
		describeTarget(req.EndElementID, req.EndX, req.EndY)))
}

// KeysCommand sends a sequence of key actions
func KeysCommand(req gestures.KeysRequest) *CommandResponse {
	return runGesture(func(r *gestures.Runner) error {
		return r.Keys(req)
	}, fmt.Sprintf("Sent %d key action(s)", len(req.Actions)))
}
