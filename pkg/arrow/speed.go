package arrow

import (
	"fmt"
	"math"

	"github.com/helgeesch/captain-arro/pkg/errors"
)

// epsilon guards the rate division when resolving durations.
const epsilon = 1e-6

// speedMode discriminates the two speed forms.
type speedMode int

const (
	speedUnset speedMode = iota
	speedPixelsPerSecond
	speedDurationSeconds
)

// Speed specifies how fast an animation cycle runs: either as a travel rate
// in pixels per second or as a fixed cycle duration in seconds. Values are
// built through [PixelsPerSecond] or [DurationSeconds], so a Speed can never
// carry both forms at once. The zero value is unset and fails validation.
type Speed struct {
	mode  speedMode
	value float64
}

// PixelsPerSecond returns a Speed expressed as a travel rate.
func PixelsPerSecond(v float64) Speed {
	return Speed{mode: speedPixelsPerSecond, value: v}
}

// DurationSeconds returns a Speed that fixes the cycle duration directly,
// independent of travel distance.
func DurationSeconds(v float64) Speed {
	return Speed{mode: speedDurationSeconds, value: v}
}

// NewSpeed builds a Speed from the two optional numeric fields exposed by
// flags, preset files and query parameters. Exactly one of the two must be
// positive; setting both or neither is a configuration error.
func NewSpeed(pxPerSecond, durationSeconds float64) (Speed, error) {
	pxSet := pxPerSecond > 0
	durSet := durationSeconds > 0

	switch {
	case pxPerSecond < 0:
		return Speed{}, errors.New(errors.ErrCodeInvalidSpeed,
			"pixels per second must be positive, got %g", pxPerSecond)
	case durationSeconds < 0:
		return Speed{}, errors.New(errors.ErrCodeInvalidSpeed,
			"duration seconds must be positive, got %g", durationSeconds)
	case pxSet && durSet:
		return Speed{}, errors.New(errors.ErrCodeInvalidSpeed,
			"speed given both as %g px/s and as %gs duration; set exactly one", pxPerSecond, durationSeconds)
	case pxSet:
		return PixelsPerSecond(pxPerSecond), nil
	case durSet:
		return DurationSeconds(durationSeconds), nil
	default:
		return Speed{}, errors.New(errors.ErrCodeInvalidSpeed,
			"speed not set; give either pixels per second or a duration")
	}
}

// IsZero reports whether the speed is unset.
func (s Speed) IsZero() bool {
	return s.mode == speedUnset
}

// Validate checks that the speed is set and strictly positive.
func (s Speed) Validate() error {
	if s.mode == speedUnset {
		return errors.New(errors.ErrCodeInvalidSpeed,
			"speed not set; use PixelsPerSecond or DurationSeconds")
	}
	if s.value <= 0 {
		return errors.New(errors.ErrCodeInvalidSpeed,
			"speed must be positive, got %s", s)
	}
	return nil
}

// Duration resolves the animation cycle duration in seconds for the given
// travel distance in pixels. Fixed durations ignore the distance; rates
// divide distance by the rate, guarded against division by zero.
func (s Speed) Duration(travelDistance float64) float64 {
	if s.mode == speedDurationSeconds {
		return s.value
	}
	return travelDistance / math.Max(s.value, epsilon)
}

// String renders the speed for logs and error messages.
func (s Speed) String() string {
	switch s.mode {
	case speedPixelsPerSecond:
		return fmt.Sprintf("%g px/s", s.value)
	case speedDurationSeconds:
		return fmt.Sprintf("%gs", s.value)
	default:
		return "unset"
	}
}
