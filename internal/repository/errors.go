package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers map it to a 404 response.
var ErrNotFound = errors.New("record not found")
