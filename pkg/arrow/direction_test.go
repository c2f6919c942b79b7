package arrow

import (
	"testing"

	"github.com/helgeesch/captain-arro/pkg/errors"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{"right", "right", DirectionRight, false},
		{"left", "left", DirectionLeft, false},
		{"up", "up", DirectionUp, false},
		{"down", "down", DirectionDown, false},
		{"mixed case", "RIGHT", DirectionRight, false},
		{"padded", "  up  ", DirectionUp, false},

		{"empty", "", "", true},
		{"diagonal", "north-east", "", true},
		{"typo", "rihgt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidDirection) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDirection)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectionHorizontal(t *testing.T) {
	tests := []struct {
		dir  Direction
		want bool
	}{
		{DirectionLeft, true},
		{DirectionRight, true},
		{DirectionUp, false},
		{DirectionDown, false},
	}

	for _, tt := range tests {
		if got := tt.dir.Horizontal(); got != tt.want {
			t.Errorf("%v.Horizontal() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Orientation
		wantErr bool
	}{
		{"horizontal", "horizontal", OrientationHorizontal, false},
		{"vertical", "vertical", OrientationVertical, false},
		{"mixed case", "Vertical", OrientationVertical, false},

		{"empty", "", "", true},
		{"direction value", "left", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrientation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrientation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidOrientation) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOrientation)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseOrientation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pattern
		wantErr bool
	}{
		{"flow", "flow", PatternFlow, false},
		{"spotlight flow", "spotlight-flow", PatternSpotlightFlow, false},
		{"spread", "spread", PatternSpread, false},
		{"spotlight spread", "SPOTLIGHT-SPREAD", PatternSpotlightSpread, false},

		{"empty", "", "", true},
		{"unknown", "ripple", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidPattern) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPattern)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePattern(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
