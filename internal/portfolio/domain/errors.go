package domain

import "errors"

// ErrNotFound marks an absent record. It is an expected outcome, not a
// failure: callers map it to 404 and the persistence facade never treats
// it as a reason to fall back.
var ErrNotFound = errors.New("not found")
