package repositories

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored entity
var ErrNotFound = errors.New("not found")
