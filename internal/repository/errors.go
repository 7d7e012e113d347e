package repository

import "errors"

// ErrRecordNotFound is returned when the requested id has no matching row.
var ErrRecordNotFound = errors.New("record not found")
