package gestures

import (
	"errors"
	"fmt"

	"github.com/mobile-next/wingest/types"
	"github.com/mobile-next/wingest/winapi"
	"github.com/sirupsen/logrus"
)

// ErrNoGeometry is returned when an element is referenced but no geometry
// provider has been configured.
var ErrNoGeometry = errors.New("element geometry provider is not configured")

// Geometry answers where an element is and how large it is.
type Geometry interface {
	ElementLocation(elementID string) (types.Point, error)
	ElementSize(elementID string) (types.Size, error)
}

// Target is a gesture point: either an absolute X,Y pair, or an element
// with an optional X,Y offset from its top left corner. Without an offset
// the element's center is used.
type Target struct {
	ElementID string
	X         *int
	Y         *int
}

// Resolver turns targets into absolute virtual screen points.
type Resolver struct {
	geometry Geometry
}

// NewResolver creates a resolver. geometry may be nil if only absolute
// coordinates are used.
func NewResolver(geometry Geometry) *Resolver {
	return &Resolver{geometry: geometry}
}

// Resolve returns the absolute point for target. label prefixes error
// messages, e.g. "Starting drag point".
func (r *Resolver) Resolve(target Target, label string, log *logrus.Entry) (types.Point, error) {
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}

	hasX := target.X != nil
	hasY := target.Y != nil

	if target.ElementID == "" {
		if !hasX && !hasY {
			return types.Point{}, winapi.InvalidArgumentf("%sEither element identifier or absolute coordinates must be provided", prefix)
		}
		if !hasX || !hasY {
			return types.Point{}, winapi.InvalidArgumentf("%sBoth absolute coordinates must be provided", prefix)
		}
		point := types.Point{X: *target.X, Y: *target.Y}
		log.Debugf("%sAbsolute coordinates: (%d, %d)", prefix, point.X, point.Y)
		return point, nil
	}

	if hasX != hasY {
		return types.Point{}, winapi.InvalidArgumentf("%sBoth relative element coordinates must be provided", prefix)
	}

	if r.geometry == nil {
		return types.Point{}, fmt.Errorf("%s%w", prefix, ErrNoGeometry)
	}

	location, err := r.geometry.ElementLocation(target.ElementID)
	if err != nil {
		return types.Point{}, fmt.Errorf("%sfailed to get location of element %s: %w", prefix, target.ElementID, err)
	}

	var point types.Point
	if !hasX {
		size, err := r.geometry.ElementSize(target.ElementID)
		if err != nil {
			return types.Point{}, fmt.Errorf("%sfailed to get size of element %s: %w", prefix, target.ElementID, err)
		}
		point = types.Rect{X: location.X, Y: location.Y, Width: size.Width, Height: size.Height}.Center()
	} else {
		point = types.Point{X: location.X + *target.X, Y: location.Y + *target.Y}
	}

	log.Debugf("%sAbsolute coordinates: (%d, %d)", prefix, point.X, point.Y)
	return point, nil
}
