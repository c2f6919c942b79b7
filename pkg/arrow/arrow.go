// Package arrow defines the shared vocabulary of the generator suite:
// pattern names, travel directions, spread orientations, and the speed
// specification that every animated pattern resolves into a cycle duration.
package arrow

import (
	"strings"

	"github.com/helgeesch/captain-arro/pkg/errors"
)

// Point is an integer canvas coordinate.
type Point struct {
	X int
	Y int
}

// Pattern identifies one of the four generator variants.
type Pattern string

// Supported patterns.
const (
	PatternFlow            Pattern = "flow"
	PatternSpotlightFlow   Pattern = "spotlight-flow"
	PatternSpread          Pattern = "spread"
	PatternSpotlightSpread Pattern = "spotlight-spread"
)

// ValidPatterns lists all supported pattern names.
var ValidPatterns = map[Pattern]bool{
	PatternFlow:            true,
	PatternSpotlightFlow:   true,
	PatternSpread:          true,
	PatternSpotlightSpread: true,
}

// ParsePattern converts a string into a Pattern, case-insensitively.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if !ValidPatterns[p] {
		return "", errors.New(errors.ErrCodeInvalidPattern,
			"invalid pattern: %q (valid: flow, spotlight-flow, spread, spotlight-spread)", s)
	}
	return p, nil
}

// Validate checks that p is one of the supported patterns.
func (p Pattern) Validate() error {
	if !ValidPatterns[p] {
		return errors.New(errors.ErrCodeInvalidPattern,
			"invalid pattern: %q (valid: flow, spotlight-flow, spread, spotlight-spread)", string(p))
	}
	return nil
}
