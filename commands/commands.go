package commands

import (
	"fmt"
	"sync"

	"github.com/mobile-next/wingest/gestures"
	"github.com/mobile-next/wingest/utils"
	"github.com/mobile-next/wingest/webdriver"
	"github.com/mobile-next/wingest/winapi"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`

	err error
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
		err:    err,
	}
}

// Err returns the error behind an error response, so callers can still
// tell invalid arguments from runtime failures.
func (r *CommandResponse) Err() error {
	if r.Status != "error" {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return fmt.Errorf("%s", r.Error)
}

// RunnerConfig describes how the shared gesture runner is built.
type RunnerConfig struct {
	// Port overrides the user32 port, mostly for tests.
	Port winapi.Port

	// DriverURL is the automation driver used to resolve element ids.
	DriverURL string
	SessionID string

	// SizeCache enables caching of element sizes when positive.
	SizeCache int
}

var (
	runnerMu     sync.Mutex
	runner       *gestures.Runner
	runnerConfig RunnerConfig

	// gestures share the system input queue and must not interleave
	gestureMu sync.Mutex
)

// Configure sets how the runner is built. It is called once at startup by
// the cli, before any command runs.
func Configure(cfg RunnerConfig) {
	runnerMu.Lock()
	defer runnerMu.Unlock()

	runnerConfig = cfg
	runner = nil
}

// SetRunner replaces the shared runner.
func SetRunner(r *gestures.Runner) {
	runnerMu.Lock()
	defer runnerMu.Unlock()

	runner = r
}

// GetRunner returns the shared runner, creating it on first use.
func GetRunner() (*gestures.Runner, error) {
	runnerMu.Lock()
	defer runnerMu.Unlock()

	if runner != nil {
		return runner, nil
	}

	port := runnerConfig.Port
	if port == nil {
		port = winapi.DefaultPort()
	}

	var opts []gestures.Option
	if runnerConfig.DriverURL != "" {
		client := webdriver.NewClient(runnerConfig.DriverURL, runnerConfig.SessionID)
		if runnerConfig.SizeCache > 0 {
			if err := client.EnableSizeCache(runnerConfig.SizeCache); err != nil {
				return nil, err
			}
		}
		utils.Verbose("Resolving elements through driver at %s (session %q)", client.BaseURL(), client.SessionID())
		opts = append(opts, gestures.WithGeometry(client))
	}

	runner = gestures.NewRunner(port, nil, opts...)
	return runner, nil
}

// runGesture serializes gestures and turns the result into a response.
func runGesture(gesture func(r *gestures.Runner) error, message string) *CommandResponse {
	r, err := GetRunner()
	if err != nil {
		return NewErrorResponse(err)
	}

	gestureMu.Lock()
	defer gestureMu.Unlock()

	if err := gesture(r); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": message,
	})
}
