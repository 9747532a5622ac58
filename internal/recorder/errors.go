package recorder

import "errors"

var (
	// ErrNoFrames indicates an encode was attempted before anything was captured.
	ErrNoFrames = errors.New("recorder: no frames captured")

	// ErrInvalidScale indicates a non-positive scale factor.
	ErrInvalidScale = errors.New("recorder: invalid scale")
)
