package winapi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestMouseButtonInput(t *testing.T) {
	tests := []struct {
		name      string
		button    MouseButton
		action    ButtonAction
		swapped   bool
		flags     uint32
		mouseData uint32
	}{
		{"left down", MouseButtonLeft, ButtonActionDown, false, MouseEventFLeftDown, 0},
		{"left up", MouseButtonLeft, ButtonActionUp, false, MouseEventFLeftUp, 0},
		{"left click", MouseButtonLeft, ButtonActionClick, false, MouseEventFLeftDown | MouseEventFLeftUp, 0},
		{"right click", MouseButtonRight, ButtonActionClick, false, MouseEventFRightDown | MouseEventFRightUp, 0},
		{"middle down", MouseButtonMiddle, ButtonActionDown, false, MouseEventFMiddleDown, 0},
		{"back click", MouseButtonBack, ButtonActionClick, false, MouseEventFXDown | MouseEventFXUp, XButton1},
		{"forward up", MouseButtonForward, ButtonActionUp, false, MouseEventFXUp, XButton2},
		{"case insensitive", "LEFT", "Down", false, MouseEventFLeftDown, 0},
		{"swapped left becomes right", MouseButtonLeft, ButtonActionDown, true, MouseEventFRightDown, 0},
		{"swapped right becomes left", MouseButtonRight, ButtonActionClick, true, MouseEventFLeftDown | MouseEventFLeftUp, 0},
		{"swap leaves middle alone", MouseButtonMiddle, ButtonActionUp, true, MouseEventFMiddleUp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := MouseButtonInput(tt.button, tt.action, tt.swapped)
			require.NoError(t, err)
			assert.Equal(t, InputMouse, in.Type)
			assert.Equal(t, tt.flags, in.Mouse().Flags)
			assert.Equal(t, tt.mouseData, in.Mouse().MouseData)
			assert.Zero(t, in.Mouse().Dx)
			assert.Zero(t, in.Mouse().Dy)
		})
	}
}

func TestMouseButtonInput_Invalid(t *testing.T) {
	_, err := MouseButtonInput("yolo", ButtonActionClick, false)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "left,middle,right,back,forward")

	_, err = MouseButtonInput(MouseButtonLeft, "hold", false)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestMouseMoveInput_Absolute(t *testing.T) {
	size := ScreenSize{Width: 1921, Height: 1081}

	in, err := MouseMoveInput(AbsoluteMove(960, 540), size)
	require.NoError(t, err)
	assert.Equal(t, MouseEventFMove|MouseEventFAbsolute|MouseEventFVirtualDesk, in.Mouse().Flags)
	assert.Equal(t, int32(32768), in.Mouse().Dx)
	assert.Equal(t, int32(32768), in.Mouse().Dy)

	in, err = MouseMoveInput(AbsoluteMove(1920, 1080), size)
	require.NoError(t, err)
	assert.Equal(t, int32(MouseMoveNorm), in.Mouse().Dx)
	assert.Equal(t, int32(MouseMoveNorm), in.Mouse().Dy)
}

func TestMouseMoveInput_Clamps(t *testing.T) {
	size := ScreenSize{Width: 1000, Height: 500}

	in, err := MouseMoveInput(AbsoluteMove(-50, -1), size)
	require.NoError(t, err)
	assert.Zero(t, in.Mouse().Dx)
	assert.Zero(t, in.Mouse().Dy)

	in, err = MouseMoveInput(AbsoluteMove(5000, 5000), size)
	require.NoError(t, err)
	assert.Equal(t, int32(Normalize(1000, 1000)), in.Mouse().Dx)
	assert.Equal(t, int32(Normalize(500, 500)), in.Mouse().Dy)
}

func TestMouseMoveInput_Relative(t *testing.T) {
	in, err := MouseMoveInput(RelativeMove(-7, 12), ScreenSize{})
	require.NoError(t, err)
	assert.Equal(t, MouseEventFMove, in.Mouse().Flags)
	assert.Equal(t, int32(-7), in.Mouse().Dx)
	assert.Equal(t, int32(12), in.Mouse().Dy)
}

func TestMouseMoveInput_RelativeOutOfRange(t *testing.T) {
	_, err := MouseMoveInput(RelativeMove(math.MaxInt32+1, 0), ScreenSize{})
	assert.True(t, IsInvalidArgument(err))

	_, err = MouseMoveInput(RelativeMove(0, math.MinInt32-1), ScreenSize{})
	assert.True(t, IsInvalidArgument(err))

	in, err := MouseMoveInput(RelativeMove(math.MinInt32, math.MaxInt32), ScreenSize{})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), in.Mouse().Dx)
	assert.Equal(t, int32(math.MaxInt32), in.Mouse().Dy)
}

func TestMouseMoveInput_Invalid(t *testing.T) {
	size := ScreenSize{Width: 100, Height: 100}
	moves := []MouseMove{
		{},
		{X: intPtr(1)},
		{DY: intPtr(1)},
		{X: intPtr(1), Y: intPtr(1), DX: intPtr(1), DY: intPtr(1)},
	}
	for _, m := range moves {
		_, err := MouseMoveInput(m, size)
		assert.True(t, IsInvalidArgument(err), "move %+v", m)
	}

	_, err := MouseMoveInput(AbsoluteMove(1, 1), ScreenSize{Width: 1, Height: 100})
	assert.ErrorIs(t, err, ErrScreenMetrics)
}

func TestNormalizeRoundTrip(t *testing.T) {
	for _, dim := range []int{2, 3, 640, 1080, 1920, 5120} {
		for x := 0; x < dim; x += max(1, dim/97) {
			back := Denormalize(Normalize(x, dim), dim)
			assert.InDelta(t, x, back, 1, "x=%d dim=%d", x, dim)
		}
		assert.Equal(t, MouseMoveNorm, Normalize(dim-1, dim))
	}
}

func TestMouseWheelInput(t *testing.T) {
	in, err := MouseWheelInput(nil, intPtr(2))
	require.NoError(t, err)
	require.NotNil(t, in)
	assert.Equal(t, MouseEventFWheel, in.Mouse().Flags)
	assert.Equal(t, int32(240), int32(in.Mouse().MouseData))

	in, err = MouseWheelInput(intPtr(-3), nil)
	require.NoError(t, err)
	require.NotNil(t, in)
	assert.Equal(t, MouseEventFHWheel|MouseEventFWheel, in.Mouse().Flags)
	assert.Equal(t, int32(-360), int32(in.Mouse().MouseData))
}

func TestMouseWheelInput_ZeroDelta(t *testing.T) {
	in, err := MouseWheelInput(intPtr(0), nil)
	require.NoError(t, err)
	assert.Nil(t, in)

	in, err = MouseWheelInput(nil, intPtr(0))
	require.NoError(t, err)
	assert.Nil(t, in)
}

func TestMouseWheelInput_Invalid(t *testing.T) {
	_, err := MouseWheelInput(nil, nil)
	assert.True(t, IsInvalidArgument(err))

	_, err = MouseWheelInput(intPtr(5), intPtr(5))
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "not both")
}

func TestMouseWheelInput_Range(t *testing.T) {
	in, err := MouseWheelInput(nil, intPtr(MaxWheelDetents))
	require.NoError(t, err)
	assert.Positive(t, int32(in.Mouse().MouseData))

	in, err = MouseWheelInput(intPtr(-MaxWheelDetents), nil)
	require.NoError(t, err)
	assert.Negative(t, int32(in.Mouse().MouseData))

	for _, delta := range []int{MaxWheelDetents + 1, 20000000, -MaxWheelDetents - 1} {
		_, err = MouseWheelInput(nil, intPtr(delta))
		assert.True(t, IsInvalidArgument(err), "delta %d", delta)

		_, err = MouseWheelInput(intPtr(delta), nil)
		assert.True(t, IsInvalidArgument(err), "delta %d", delta)
	}
}

func TestKeyInput(t *testing.T) {
	down := KeyInput(0x41, true)
	assert.Equal(t, InputKeyboard, down.Type)
	assert.Equal(t, uint16(0x41), down.Keyboard().VirtualKey)
	assert.Zero(t, down.Keyboard().Flags)

	up := KeyInput(0x41, false)
	assert.Equal(t, KeyEventFKeyUp, up.Keyboard().Flags)
}

func TestUnicodeKeyInputs(t *testing.T) {
	inputs := UnicodeKeyInputs("ab")
	require.Len(t, inputs, 4)

	assert.Equal(t, uint16('a'), inputs[0].Keyboard().ScanCode)
	assert.Equal(t, KeyEventFUnicode, inputs[0].Keyboard().Flags)
	assert.Equal(t, uint16('a'), inputs[1].Keyboard().ScanCode)
	assert.Equal(t, KeyEventFUnicode|KeyEventFKeyUp, inputs[1].Keyboard().Flags)
	assert.Equal(t, uint16('b'), inputs[2].Keyboard().ScanCode)
	for _, in := range inputs {
		assert.Zero(t, in.Keyboard().VirtualKey)
	}
}

func TestUnicodeKeyInputs_LineFeed(t *testing.T) {
	inputs := UnicodeKeyInputs("a\nb")
	require.Len(t, inputs, 2*3+2)

	assert.Equal(t, VKReturn, inputs[2].Keyboard().VirtualKey)
	assert.Zero(t, inputs[2].Keyboard().Flags)
	assert.Equal(t, VKReturn, inputs[3].Keyboard().VirtualKey)
	assert.Equal(t, KeyEventFKeyUp, inputs[3].Keyboard().Flags)
	assert.Equal(t, uint16('\n'), inputs[4].Keyboard().ScanCode)
}

func TestUnicodeKeyInputs_SurrogatePairs(t *testing.T) {
	// U+1F600 is two UTF-16 code units
	inputs := UnicodeKeyInputs("😀")
	require.Len(t, inputs, 4)
	assert.Equal(t, uint16(0xD83D), inputs[0].Keyboard().ScanCode)
	assert.Equal(t, uint16(0xDE00), inputs[2].Keyboard().ScanCode)
}
