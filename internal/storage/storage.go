// Package storage defines the sentinel errors shared by every storage
// implementation, so callers can match with errors.Is without knowing
// the backing driver.
package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrStatusConflict is returned when a guarded status transition
// matched no row: the booking moved to another status concurrently.
var ErrStatusConflict = errors.New("booking status changed concurrently")
