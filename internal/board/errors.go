package board

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is matched by every *MissingColumnError.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyFile is returned when the source has no header row.
	ErrEmptyFile = errors.New("data file has no header row")
)

// MissingColumnError names a column that an operation needs but the
// loaded table does not have.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
