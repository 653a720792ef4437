package gestures

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mobile-next/wingest/types"
	"github.com/mobile-next/wingest/utils"
	"github.com/mobile-next/wingest/winapi"
	"github.com/sirupsen/logrus"
)

// Runner performs gestures against one input port. Gestures on the same
// runner are expected to be serialized by the caller, the system input
// queue is shared by the whole desktop.
type Runner struct {
	dispatcher *winapi.Dispatcher
	metrics    *winapi.ScreenMetricsCache
	resolver   *Resolver
	sleep      func(time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithGeometry sets the provider used to resolve element targets.
func WithGeometry(geometry Geometry) Option {
	return func(r *Runner) {
		r.resolver = NewResolver(geometry)
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}

// NewRunner creates a runner. metrics may be shared between runners using
// the same port; when nil a new cache is created.
func NewRunner(port winapi.Port, metrics *winapi.ScreenMetricsCache, opts ...Option) *Runner {
	if metrics == nil {
		metrics = winapi.NewScreenMetricsCache(port)
	}

	r := &Runner{
		dispatcher: winapi.NewDispatcher(port),
		metrics:    metrics,
		resolver:   NewResolver(nil),
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Metrics exposes the screen metrics cache used by the runner.
func (r *Runner) Metrics() *winapi.ScreenMetricsCache {
	return r.metrics
}

func (r *Runner) newLog(gesture string) *logrus.Entry {
	return utils.Logger().WithFields(logrus.Fields{
		"gesture": gesture,
		"id":      uuid.NewString(),
	})
}

func (r *Runner) wait(ms int) {
	if ms > 0 {
		r.sleep(time.Duration(ms) * time.Millisecond)
	}
}

// withModifiers presses the modifier keys, runs body and releases the keys
// on every exit path, including a failed press and a panic in body.
func (r *Runner) withModifiers(log *logrus.Entry, press, release []winapi.Input, body func() error) (err error) {
	if len(press) > 0 {
		defer func() {
			releaseErr := r.dispatcher.Dispatch(release...)
			if releaseErr == nil {
				return
			}
			log.Errorf("failed to release modifier keys: %v", releaseErr)
			if err == nil {
				err = fmt.Errorf("failed to release modifier keys: %w", releaseErr)
			}
		}()

		log.Debugf("Pressing %d modifier key(s)", len(press))
		if err := r.dispatcher.Dispatch(press...); err != nil {
			return fmt.Errorf("failed to press modifier keys: %w", err)
		}
	}

	return body()
}

// holdButton presses a mouse button, runs body and releases the button. If
// body fails the release is still attempted so the button is not left down.
func (r *Runner) holdButton(log *logrus.Entry, down, up winapi.Input, body func() error) error {
	if err := r.dispatcher.Dispatch(down); err != nil {
		return fmt.Errorf("failed to press mouse button: %w", err)
	}

	if err := body(); err != nil {
		if releaseErr := r.dispatcher.Dispatch(up); releaseErr != nil {
			log.Errorf("failed to release mouse button: %v", releaseErr)
		}
		return err
	}

	if err := r.dispatcher.Dispatch(up); err != nil {
		return fmt.Errorf("failed to release mouse button: %w", err)
	}
	return nil
}

func encodeMove(point types.Point, size winapi.ScreenSize) (winapi.Input, error) {
	return winapi.MouseMoveInput(winapi.AbsoluteMove(point.X, point.Y), size)
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func requireNonNegative(name string, v *int) error {
	if v != nil && *v < 0 {
		return winapi.InvalidArgumentf("%s must be a non-negative integer, got %d", name, *v)
	}
	return nil
}
