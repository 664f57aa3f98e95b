package practice

import "errors"

var (
	// ErrMalformedInput means the text is too short (or otherwise unusable)
	// to construct an exercise from.
	ErrMalformedInput = errors.New("malformed input")

	// ErrDataUnavailable means the caller supplied fewer distractor
	// candidates than the builder needs.
	ErrDataUnavailable = errors.New("data unavailable")
)
