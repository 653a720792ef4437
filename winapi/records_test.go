package winapi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestInputLayoutMatchesWin32(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		assert.Equal(t, uintptr(32), unsafe.Sizeof(MouseInput{}))
		assert.Equal(t, uintptr(24), unsafe.Sizeof(KeybdInput{}))
		assert.Equal(t, int32(40), InputSize)
		assert.Equal(t, uintptr(8), unsafe.Offsetof(Input{}.union))
	} else {
		assert.Equal(t, uintptr(24), unsafe.Sizeof(MouseInput{}))
		assert.Equal(t, uintptr(16), unsafe.Sizeof(KeybdInput{}))
		assert.Equal(t, int32(28), InputSize)
		assert.Equal(t, uintptr(4), unsafe.Offsetof(Input{}.union))
	}
	assert.Equal(t, uintptr(8), unsafe.Sizeof(HardwareInput{}))
}

func TestKeyboardInputSharesUnionStorage(t *testing.T) {
	in := NewKeyboardInput(KeybdInput{VirtualKey: 0x41, ScanCode: 0x1E, Flags: KeyEventFKeyUp})

	assert.Equal(t, InputKeyboard, in.Type)
	assert.Equal(t, uint16(0x41), in.Keyboard().VirtualKey)
	assert.Equal(t, uint16(0x1E), in.Keyboard().ScanCode)
	assert.Equal(t, KeyEventFKeyUp, in.Keyboard().Flags)
	assert.Zero(t, in.Keyboard().Time)
	assert.Zero(t, in.Keyboard().ExtraInfo)
}

func TestHardwareInput(t *testing.T) {
	in := NewHardwareInput(HardwareInput{Msg: 0x100, ParamLow: 1, ParamHigh: 2})

	assert.Equal(t, InputHardware, in.Type)
	assert.Equal(t, uint32(0x100), in.Hardware().Msg)
	assert.Equal(t, uint16(1), in.Hardware().ParamLow)
	assert.Equal(t, uint16(2), in.Hardware().ParamHigh)
}

func TestInputString(t *testing.T) {
	assert.Equal(t, "key{vk=0x10 scan=0x0000 flags=0x0000}", KeyInput(VKShift, true).String())
	assert.Equal(t, "mouse{dx=0 dy=0 data=0 flags=0x0006}", NewMouseInput(MouseInput{Flags: MouseEventFLeftDown | MouseEventFLeftUp}).String())
}
