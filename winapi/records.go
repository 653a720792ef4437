package winapi

import (
	"fmt"
	"unsafe"
)

// MouseInput mirrors MOUSEINPUT.
type MouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// KeybdInput mirrors KEYBDINPUT.
type KeybdInput struct {
	VirtualKey uint16
	ScanCode   uint16
	Flags      uint32
	Time       uint32
	ExtraInfo  uintptr
}

// HardwareInput mirrors HARDWAREINPUT.
type HardwareInput struct {
	Msg       uint32
	ParamLow  uint16
	ParamHigh uint16
}

// Input mirrors INPUT. The C union is represented by its largest member;
// Keyboard and Hardware reinterpret the same storage, which keeps the
// alignment and padding identical to what SendInput expects.
type Input struct {
	Type  uint32
	union MouseInput
}

// InputSize is the cbSize argument for SendInput.
const InputSize = int32(unsafe.Sizeof(Input{}))

// NewMouseInput wraps a mouse record.
func NewMouseInput(mi MouseInput) Input {
	return Input{Type: InputMouse, union: mi}
}

// NewKeyboardInput wraps a keyboard record.
func NewKeyboardInput(ki KeybdInput) Input {
	in := Input{Type: InputKeyboard}
	*(*KeybdInput)(unsafe.Pointer(&in.union)) = ki
	return in
}

// NewHardwareInput wraps a hardware record.
func NewHardwareInput(hi HardwareInput) Input {
	in := Input{Type: InputHardware}
	*(*HardwareInput)(unsafe.Pointer(&in.union)) = hi
	return in
}

// Mouse returns the mouse member of the union.
func (in *Input) Mouse() *MouseInput {
	return &in.union
}

// Keyboard returns the keyboard member of the union.
func (in *Input) Keyboard() *KeybdInput {
	return (*KeybdInput)(unsafe.Pointer(&in.union))
}

// Hardware returns the hardware member of the union.
func (in *Input) Hardware() *HardwareInput {
	return (*HardwareInput)(unsafe.Pointer(&in.union))
}

func (in Input) String() string {
	switch in.Type {
	case InputMouse:
		mi := in.Mouse()
		return fmt.Sprintf("mouse{dx=%d dy=%d data=%d flags=0x%04X}", mi.Dx, mi.Dy, int32(mi.MouseData), mi.Flags)
	case InputKeyboard:
		ki := in.Keyboard()
		return fmt.Sprintf("key{vk=0x%02X scan=0x%04X flags=0x%04X}", ki.VirtualKey, ki.ScanCode, ki.Flags)
	case InputHardware:
		hi := in.Hardware()
		return fmt.Sprintf("hardware{msg=0x%X l=%d h=%d}", hi.Msg, hi.ParamLow, hi.ParamHigh)
	default:
		return fmt.Sprintf("input{type=%d}", in.Type)
	}
}
