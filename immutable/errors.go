package immutable

import "errors"

// ErrTooLong indicates a length that would exceed alloc.MaxLength.
var ErrTooLong = errors.New("immutable: length exceeds maximum")
