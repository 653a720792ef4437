package winapi

import (
	"fmt"
	"sync"
)

// ScreenSize is the size of the virtual screen in pixels.
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScreenMetricsCache memoizes the virtual screen size and the mouse button
// swap state for the lifetime of the cache. Failed queries are not memoized,
// so a later call retries the system call.
type ScreenMetricsCache struct {
	port Port

	mu         sync.Mutex
	size       *ScreenSize
	swapped    bool
	hasSwapped bool
}

// NewScreenMetricsCache creates a cache that queries the given port.
func NewScreenMetricsCache(port Port) *ScreenMetricsCache {
	return &ScreenMetricsCache{port: port}
}

// VirtualScreenSize returns the bounding size of all attached displays.
func (c *ScreenMetricsCache) VirtualScreenSize() (ScreenSize, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.size != nil {
		return *c.size, nil
	}

	width, err := c.port.GetSystemMetrics(SMCXVirtualScreen)
	if err != nil {
		return ScreenSize{}, fmt.Errorf("failed to query virtual screen width: %w", err)
	}

	height, err := c.port.GetSystemMetrics(SMCYVirtualScreen)
	if err != nil {
		return ScreenSize{}, fmt.Errorf("failed to query virtual screen height: %w", err)
	}

	if width <= 1 || height <= 1 {
		return ScreenSize{}, fmt.Errorf("%w (got %dx%d)", ErrScreenMetrics, width, height)
	}

	c.size = &ScreenSize{Width: int(width), Height: int(height)}
	return *c.size, nil
}

// IsLeftRightSwapped reports whether the host swaps the primary and secondary buttons.
func (c *ScreenMetricsCache) IsLeftRightSwapped() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasSwapped {
		return c.swapped, nil
	}

	value, err := c.port.GetSystemMetrics(SMSwapButton)
	if err != nil {
		return false, fmt.Errorf("failed to query mouse button swap state: %w", err)
	}

	c.swapped = value != 0
	c.hasSwapped = true
	return c.swapped, nil
}

// Reset drops the memoized values.
func (c *ScreenMetricsCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.size = nil
	c.swapped = false
	c.hasSwapped = false
}
