package domain

import "errors"

// ErrScriptNotFound is returned when a script name cannot be found in the store.
var ErrScriptNotFound = errors.New("script not found")

// ErrInvalidScriptName is returned when a script name is empty or contains characters
// outside [A-Za-z0-9._-].
var ErrInvalidScriptName = errors.New("invalid script name")
