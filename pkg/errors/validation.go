package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateName validates an arrow or preset name for safety and correctness.
// Names end up as output filenames and store keys, so anything usable for
// path traversal or injection is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	const maxNameLength = 128
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// easingRegex matches the CSS easing forms the generators accept: keyword
// easings plus the cubic-bezier() and steps() function forms.
var easingRegex = regexp.MustCompile(`^([a-zA-Z-]+|cubic-bezier\([0-9.,\s-]+\)|steps\(\s*[0-9]+\s*(,\s*[a-zA-Z-]+\s*)?\))$`)

// ValidateEasing validates a CSS easing function string before it is
// embedded into an animation shorthand. Like [ValidateColor], this does not
// interpret the value; it only guarantees the value cannot break out of a
// style block.
func ValidateEasing(easing string) error {
	if easing == "" {
		return New(ErrCodeInvalidConfig, "easing cannot be empty")
	}

	const maxEasingLength = 64
	if len(easing) > maxEasingLength {
		return New(ErrCodeInvalidConfig, "easing too long (max %d characters)", maxEasingLength)
	}

	if !easingRegex.MatchString(easing) {
		return New(ErrCodeInvalidConfig, "invalid easing: %q", easing)
	}

	return nil
}

// colorRegex matches the CSS color forms the generators accept: hex colors,
// named colors, and the rgb()/rgba()/hsl()/hsla() function forms.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

// ValidateColor validates a CSS color string before it is embedded into
// generated markup. The generator does not interpret color values; this only
// guarantees the value cannot break out of an attribute or style block.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidConfig, "color cannot be empty")
	}

	const maxColorLength = 64
	if len(color) > maxColorLength {
		return New(ErrCodeInvalidConfig, "color too long (max %d characters)", maxColorLength)
	}

	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidConfig, "invalid color: %q", color)
	}

	return nil
}
