package cli

var (
	verbose bool

	// all commands
	configPath string
	driverURL  string
	sessionID  string
	sizeCache  int

	// for io commands
	elementID          string
	button             string
	modifierKeys       []string
	pressDurationMs    int
	repeatCount        int
	interRepeatDelayMs int
	deltaX             int
	deltaY             int

	// for drag and hover
	fromPoint   string
	toPoint     string
	fromElement string
	toElement   string
	durationMs  int

	// for keys
	keysText string
)
