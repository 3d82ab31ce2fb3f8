package config

import (
	"errors"
	"fmt"
	"strings"
)

var errMissingModes = errors.New("missing or malformed 'modes' mapping")

// UnknownProfileError is returned when a requested profile id is not in the
// registry. It carries the set of valid ids so callers can surface them.
type UnknownProfileError struct {
	ID        string
	Available []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile '%s' not found. Available profiles: %s",
		e.ID, strings.Join(e.Available, ", "))
}

// Lookup fetches a profile by id, returning an UnknownProfileError that
// lists the valid ids when the id is absent.
func (r Registry) Lookup(id string) (*Profile, error) {
	if p, ok := r[id]; ok {
		return p, nil
	}
	return nil, &UnknownProfileError{ID: id, Available: r.IDs()}
}
