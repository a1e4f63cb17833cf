package cache

import "errors"

// ErrTooLarge is returned by Put when the payload exceeds MaxEntryBytes.
var ErrTooLarge = errors.New("cache: payload exceeds size limit")
