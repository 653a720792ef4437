package winapi

import (
	"sync"
	"time"
)

// Batch is one SendInput call observed by a FakePort.
type Batch struct {
	Inputs []Input
	At     time.Time
}

// FakePort is an in-memory Port for tests and dry runs. It records every
// submitted batch and answers metrics queries from Metrics.
type FakePort struct {
	mu sync.Mutex

	// Metrics holds the values returned by GetSystemMetrics.
	Metrics map[int32]int32

	// AcceptLimit, when non-negative, caps how many records of each batch are
	// reported as accepted.
	AcceptLimit int

	// FailAfter makes every SendInput call after the first FailAfter ones
	// accept nothing. Zero disables it.
	FailAfter int

	// MetricsErr is returned by GetSystemMetrics when set.
	MetricsErr error

	batches      []Batch
	metricsCalls int
}

// NewFakePort returns a fake with the given virtual screen size and swap state.
func NewFakePort(width, height int32, swapped bool) *FakePort {
	var swap int32
	if swapped {
		swap = 1
	}
	return &FakePort{
		Metrics: map[int32]int32{
			SMCXVirtualScreen: width,
			SMCYVirtualScreen: height,
			SMSwapButton:      swap,
		},
		AcceptLimit: -1,
	}
}

func (p *FakePort) SendInput(inputs []Input) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make([]Input, len(inputs))
	copy(copied, inputs)
	p.batches = append(p.batches, Batch{Inputs: copied, At: time.Now()})

	if p.FailAfter > 0 && len(p.batches) > p.FailAfter {
		return 0, nil
	}

	accepted := len(inputs)
	if p.AcceptLimit >= 0 && p.AcceptLimit < accepted {
		accepted = p.AcceptLimit
	}
	return uint32(accepted), nil
}

func (p *FakePort) GetSystemMetrics(index int32) (int32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.metricsCalls++
	if p.MetricsErr != nil {
		return 0, p.MetricsErr
	}
	return p.Metrics[index], nil
}

// Batches returns a copy of the recorded batches.
func (p *FakePort) Batches() []Batch {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]Batch, len(p.batches))
	copy(result, p.batches)
	return result
}

// Inputs returns every recorded input, flattened in submission order.
func (p *FakePort) Inputs() []Input {
	var result []Input
	for _, b := range p.Batches() {
		result = append(result, b.Inputs...)
	}
	return result
}

// MetricsCalls returns how many times GetSystemMetrics was called.
func (p *FakePort) MetricsCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.metricsCalls
}
