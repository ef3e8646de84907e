package mood

import (
	"errors"
	"fmt"
)

// ErrInvalidMood is returned by Record for a mood outside the five known values.
var ErrInvalidMood = errors.New("invalid mood")

// PersistenceError reports that the history could not be saved.
// The store's in-memory history is unchanged when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s mood history: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// MalformedHistoryError describes stored data that does not decode as a history.
// It never leaves the package; the store logs it and starts empty.
type MalformedHistoryError struct {
	Err error
}

func (e *MalformedHistoryError) Error() string {
	return fmt.Sprintf("malformed mood history: %v", e.Err)
}

func (e *MalformedHistoryError) Unwrap() error {
	return e.Err
}
