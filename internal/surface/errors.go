package surface

import "errors"

var (
	// ErrInvalidSize indicates a buffer was requested with a non-positive or oversized dimension.
	ErrInvalidSize = errors.New("surface: invalid buffer size")

	// ErrSizeMismatch indicates two buffers that must share dimensions do not.
	ErrSizeMismatch = errors.New("surface: buffer size mismatch")
)
