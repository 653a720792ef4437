package types

// Point is a position on the virtual screen, in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size represents width and height dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is an element's bounding box as reported by the automation driver.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the middle of the rectangle, truncated to whole pixels.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}
