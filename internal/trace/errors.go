package trace

import "errors"

// ErrTooShort indicates fewer samples than a plot needs.
var ErrTooShort = errors.New("trace: need at least two samples")
