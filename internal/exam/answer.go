// Package exam implements the answer-sheet core: subjects, the segmented
// view over them, categories, and the quiz entry state machine.
package exam

import "unicode"

// Answer is a single question's recorded outcome. The values double as the
// single-character serialization codes.
type Answer string

const (
	Correct Answer = "D"
	Wrong   Answer = "Y"
	Empty   Answer = "B"
	// Missing marks a slot that has not been answered yet. It is never a
	// user-entered value.
	Missing Answer = " "
)

// ParseKey maps a keyboard rune to an Answer. Matching is case-insensitive.
// Missing is not parseable; it only appears as the unset default.
func ParseKey(r rune) (Answer, bool) {
	switch unicode.ToUpper(r) {
	case 'D':
		return Correct, true
	case 'Y':
		return Wrong, true
	case 'B':
		return Empty, true
	default:
		return "", false
	}
}
