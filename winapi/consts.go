package winapi

// INPUT.type discriminants
const (
	InputMouse    uint32 = 0
	InputKeyboard uint32 = 1
	InputHardware uint32 = 2
)

// MOUSEINPUT.dwFlags
const (
	MouseEventFMove        uint32 = 0x0001
	MouseEventFLeftDown    uint32 = 0x0002
	MouseEventFLeftUp      uint32 = 0x0004
	MouseEventFRightDown   uint32 = 0x0008
	MouseEventFRightUp     uint32 = 0x0010
	MouseEventFMiddleDown  uint32 = 0x0020
	MouseEventFMiddleUp    uint32 = 0x0040
	MouseEventFXDown       uint32 = 0x0080
	MouseEventFXUp         uint32 = 0x0100
	MouseEventFWheel       uint32 = 0x0800
	MouseEventFHWheel      uint32 = 0x1000
	MouseEventFVirtualDesk uint32 = 0x4000
	MouseEventFAbsolute    uint32 = 0x8000
)

// KEYBDINPUT.dwFlags
const (
	KeyEventFKeyUp   uint32 = 0x0002
	KeyEventFUnicode uint32 = 0x0004
)

// GetSystemMetrics indices
const (
	SMSwapButton      int32 = 23
	SMCXVirtualScreen int32 = 78
	SMCYVirtualScreen int32 = 79
)

// MOUSEINPUT.mouseData values for the extended buttons
const (
	XButton1 uint32 = 0x0001
	XButton2 uint32 = 0x0002
)

const (
	// WheelDelta is the amount of a single wheel detent.
	WheelDelta = 120

	// MouseMoveNorm is the upper bound of the normalized absolute coordinate space.
	MouseMoveNorm = 0xFFFF
)

// Virtual-key codes used by the encoder and the modifier translator.
const (
	VKReturn  uint16 = 0x0D
	VKShift   uint16 = 0x10
	VKControl uint16 = 0x11
	VKMenu    uint16 = 0x12
	VKLWin    uint16 = 0x5B
)
