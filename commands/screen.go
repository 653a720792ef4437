package commands

// ScreenInfo describes the virtual screen gestures are mapped onto
type ScreenInfo struct {
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Swapped bool `json:"swapped"`
}

func getScreenInfo() (*ScreenInfo, error) {
	r, err := GetRunner()
	if err != nil {
		return nil, err
	}

	size, err := r.Metrics().VirtualScreenSize()
	if err != nil {
		return nil, err
	}

	swapped, err := r.Metrics().IsLeftRightSwapped()
	if err != nil {
		return nil, err
	}

	return &ScreenInfo{
		Width:   size.Width,
		Height:  size.Height,
		Swapped: swapped,
	}, nil
}

// ScreenCommand returns the virtual screen size and mouse button swap state
func ScreenCommand() *CommandResponse {
	info, err := getScreenInfo()
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(info)
}
