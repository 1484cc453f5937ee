package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new lexicographically sortable identifier.
// ulid.Make is safe for concurrent use and monotonic within the process.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s is a well-formed ULID string.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
