package arrow

import (
	"strings"

	"github.com/helgeesch/captain-arro/pkg/errors"
)

// Direction is the travel direction of a flow arrow.
type Direction string

// Supported travel directions.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ValidDirections lists all supported directions.
var ValidDirections = map[Direction]bool{
	DirectionUp:    true,
	DirectionDown:  true,
	DirectionLeft:  true,
	DirectionRight: true,
}

// ParseDirection converts a string into a Direction, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !ValidDirections[d] {
		return "", errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (valid: up, down, left, right)", s)
	}
	return d, nil
}

// Validate checks that d is one of the supported directions.
func (d Direction) Validate() error {
	if !ValidDirections[d] {
		return errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (valid: up, down, left, right)", string(d))
	}
	return nil
}

// Horizontal reports whether the direction travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Orientation is the travel axis of a spread pattern. Spread arrows move
// outward in both directions along the axis, so unlike Direction it carries
// no sign.
type Orientation string

// Supported spread orientations.
const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// ValidOrientations lists all supported orientations.
var ValidOrientations = map[Orientation]bool{
	OrientationHorizontal: true,
	OrientationVertical:   true,
}

// ParseOrientation converts a string into an Orientation, case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if !ValidOrientations[o] {
		return "", errors.New(errors.ErrCodeInvalidOrientation,
			"invalid orientation: %q (valid: horizontal, vertical)", s)
	}
	return o, nil
}

// Validate checks that o is one of the supported orientations.
func (o Orientation) Validate() error {
	if !ValidOrientations[o] {
		return errors.New(errors.ErrCodeInvalidOrientation,
			"invalid orientation: %q (valid: horizontal, vertical)", string(o))
	}
	return nil
}

// Horizontal reports whether the spread axis is the x axis.
func (o Orientation) Horizontal() bool {
	return o == OrientationHorizontal
}
