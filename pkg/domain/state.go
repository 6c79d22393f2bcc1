package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Snapshot is a read-only copy of the session's visible state.
// It is published after every redraw so viewers never touch the live image.
type Snapshot struct {
	Frame     string    `json:"frame"`
	Script    string    `json:"script"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	PixelsOn  int       `json:"pixels_on"`
	Commands  int       `json:"commands"`
	UpdatedAt time.Time `json:"updated_at"`
}

var scriptNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateScriptName checks that name can be used as a store key and a file name.
func ValidateScriptName(name string) error {
	if name == "" || name == "." || name == ".." || !scriptNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidScriptName, name)
	}
	return nil
}
