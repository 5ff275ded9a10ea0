package store

import "errors"

// ErrNotFound is returned by lookups for ids the store does not hold.
var ErrNotFound = errors.New("not found")
