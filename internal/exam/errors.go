package exam

import "errors"

var (
	// ErrIndexOutOfRange reports an absolute or subject-internal index
	// outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCursorExhausted reports an UpdateNext call past the view's capacity.
	ErrCursorExhausted = errors.New("cursor exhausted")
	// ErrInvalidBlueprint reports a blueprint whose question counts do not
	// sum to the expected category size.
	ErrInvalidBlueprint = errors.New("invalid blueprint")
)
