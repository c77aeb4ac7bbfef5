package nonempty

import "errors"

// ErrEmpty is returned when a [Slice] is requested from zero elements.
var ErrEmpty = errors.New("sequence is empty")
