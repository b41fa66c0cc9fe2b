package location

import "errors"

// Sentinel errors.

// ErrEmptySourceID describes an empty synthetic source ID.
//
// No function returns it: MustNewSourceID panics with a message built from
// its text.
var ErrEmptySourceID = errors.New("location: synthetic source ID cannot be empty")
