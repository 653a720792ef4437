package winapi

import (
	"math"
	"strings"
	"unicode/utf16"
)

// MouseButton is a logical mouse button name.
type MouseButton string

const (
	MouseButtonLeft    MouseButton = "left"
	MouseButtonMiddle  MouseButton = "middle"
	MouseButtonRight   MouseButton = "right"
	MouseButtonBack    MouseButton = "back"
	MouseButtonForward MouseButton = "forward"
)

var mouseButtons = []MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButtonRight, MouseButtonBack, MouseButtonForward}

// ButtonAction is what happens to a mouse button.
type ButtonAction string

const (
	ButtonActionDown ButtonAction = "down"
	ButtonActionUp   ButtonAction = "up"
	// ButtonActionClick produces a single record carrying both down and up flags.
	ButtonActionClick ButtonAction = "click"
)

// MouseButtonInput encodes a button event. When swapped is true the left and
// right buttons are exchanged, undoing the host-level remapping so that the
// requested button is the one the application observes.
func MouseButtonInput(button MouseButton, action ButtonAction, swapped bool) (Input, error) {
	name := MouseButton(strings.ToLower(string(button)))
	if swapped {
		switch name {
		case MouseButtonLeft:
			name = MouseButtonRight
		case MouseButtonRight:
			name = MouseButtonLeft
		}
	}

	var down, up, mouseData uint32
	switch name {
	case MouseButtonLeft:
		down, up = MouseEventFLeftDown, MouseEventFLeftUp
	case MouseButtonRight:
		down, up = MouseEventFRightDown, MouseEventFRightUp
	case MouseButtonMiddle:
		down, up = MouseEventFMiddleDown, MouseEventFMiddleUp
	case MouseButtonBack:
		down, up = MouseEventFXDown, MouseEventFXUp
		mouseData = XButton1
	case MouseButtonForward:
		down, up = MouseEventFXDown, MouseEventFXUp
		mouseData = XButton2
	default:
		return Input{}, InvalidArgumentf("Mouse button '%s' is unknown. Only %s buttons are supported", button, joinButtons())
	}

	var flags uint32
	switch ButtonAction(strings.ToLower(string(action))) {
	case ButtonActionDown:
		flags = down
	case ButtonActionUp:
		flags = up
	case ButtonActionClick:
		flags = down | up
	default:
		return Input{}, InvalidArgumentf("Mouse button action '%s' is unknown. Only up,down actions are supported", action)
	}

	return NewMouseInput(MouseInput{Flags: flags, MouseData: mouseData}), nil
}

func joinButtons() string {
	names := make([]string, len(mouseButtons))
	for i, b := range mouseButtons {
		names[i] = string(b)
	}
	return strings.Join(names, ",")
}

// MouseMove describes a cursor move. Exactly one of the relative pair
// (DX, DY) or the absolute pair (X, Y) must be set.
type MouseMove struct {
	DX, DY *int
	X, Y   *int
}

// AbsoluteMove is a shortcut for a move to an absolute virtual screen point.
func AbsoluteMove(x, y int) MouseMove {
	return MouseMove{X: &x, Y: &y}
}

// RelativeMove is a shortcut for a move relative to the current cursor position.
func RelativeMove(dx, dy int) MouseMove {
	return MouseMove{DX: &dx, DY: &dy}
}

// MouseMoveInput encodes a cursor move. Absolute points are clamped to the
// virtual screen and normalized to the 0..65535 range SendInput expects.
func MouseMoveInput(move MouseMove, size ScreenSize) (Input, error) {
	isAbsolute := move.X != nil && move.Y != nil
	isRelative := move.DX != nil && move.DY != nil
	if isAbsolute == isRelative {
		return Input{}, InvalidArgumentf("Either relative or absolute move coordinates must be provided")
	}

	if isRelative {
		if !fitsInt32(*move.DX) || !fitsInt32(*move.DY) {
			return Input{}, InvalidArgumentf("Relative move (%d, %d) is out of range", *move.DX, *move.DY)
		}
		return NewMouseInput(MouseInput{
			Dx:    int32(*move.DX),
			Dy:    int32(*move.DY),
			Flags: MouseEventFMove,
		}), nil
	}

	if size.Width <= 1 || size.Height <= 1 {
		return Input{}, ErrScreenMetrics
	}

	x := clamp(*move.X, 0, size.Width)
	y := clamp(*move.Y, 0, size.Height)
	return NewMouseInput(MouseInput{
		Dx:    int32(Normalize(x, size.Width)),
		Dy:    int32(Normalize(y, size.Height)),
		Flags: MouseEventFMove | MouseEventFAbsolute | MouseEventFVirtualDesk,
	}), nil
}

// Normalize maps a pixel coordinate onto the absolute 0..65535 axis.
func Normalize(coord, dimension int) int {
	return int(math.Round(float64(coord) * MouseMoveNorm / float64(dimension-1)))
}

// Denormalize is the inverse of Normalize, up to rounding.
func Denormalize(value, dimension int) int {
	return int(math.Round(float64(value) * float64(dimension-1) / MouseMoveNorm))
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// MaxWheelDetents is the largest scroll delta whose wheel data fits in int32.
const MaxWheelDetents = math.MaxInt32 / WheelDelta

// MouseWheelInput encodes a wheel rotation by whole detents. Exactly one axis
// must be given. A zero delta returns nil since there is nothing to inject.
func MouseWheelInput(dx, dy *int) (*Input, error) {
	if dx == nil && dy == nil {
		return nil, InvalidArgumentf("Either horizontal or vertical scroll delta must be provided")
	}
	if dx != nil && dy != nil {
		return nil, InvalidArgumentf("Either horizontal or vertical scroll delta must be provided, but not both")
	}

	delta := dx
	if delta == nil {
		delta = dy
	}
	if *delta > MaxWheelDetents || *delta < -MaxWheelDetents {
		return nil, InvalidArgumentf("Scroll delta %d is out of range, it must be within ±%d", *delta, MaxWheelDetents)
	}

	if dx != nil && *dx != 0 {
		// horizontal wheel requires both flags
		in := NewMouseInput(MouseInput{
			MouseData: uint32(int32(*dx * WheelDelta)),
			Flags:     MouseEventFHWheel | MouseEventFWheel,
		})
		return &in, nil
	}
	if dy != nil && *dy != 0 {
		in := NewMouseInput(MouseInput{
			MouseData: uint32(int32(*dy * WheelDelta)),
			Flags:     MouseEventFWheel,
		})
		return &in, nil
	}
	return nil, nil
}

// KeyInput encodes a virtual-key press or release.
func KeyInput(virtualKey uint16, down bool) Input {
	var flags uint32
	if !down {
		flags = KeyEventFKeyUp
	}
	return NewKeyboardInput(KeybdInput{VirtualKey: virtualKey, Flags: flags})
}

// UnicodeKeyInputs encodes text as a sequence of Unicode key presses, one
// down/up pair per UTF-16 code unit. Line feeds are additionally sent as
// VK_RETURN, since applications see '\r' from WM_CHAR and some check for
// the Enter key explicitly.
func UnicodeKeyInputs(text string) []Input {
	units := utf16.Encode([]rune(text))
	result := make([]Input, 0, len(units)*2)
	for _, unit := range units {
		if unit == '\n' {
			result = append(result, KeyInput(VKReturn, true), KeyInput(VKReturn, false))
		}
		result = append(result,
			NewKeyboardInput(KeybdInput{ScanCode: unit, Flags: KeyEventFUnicode}),
			NewKeyboardInput(KeybdInput{ScanCode: unit, Flags: KeyEventFUnicode | KeyEventFKeyUp}),
		)
	}
	return result
}
