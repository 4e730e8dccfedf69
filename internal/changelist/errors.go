package changelist

import (
	"errors"
	"fmt"
)

// InvalidSortMessage is the only message a user sees for a rejected sort
// parameter, whatever the underlying cause.
const InvalidSortMessage = "Invalid sort parameter"

var (
	ErrInvalidSortSyntax   = errors.New("invalid sort syntax")
	ErrSortIndexOutOfRange = errors.New("sort index out of range")
	ErrUnsortableColumn    = errors.New("column is not sortable")
	ErrDuplicateSortColumn = errors.New("column referenced more than once")

	ErrDuplicateHeaderName = errors.New("duplicate header name")
	ErrMisconfiguredSearch = errors.New("search requires at least one field")
)

// SortError reports why a raw sort descriptor was rejected. Kind is one of the
// sort sentinel errors and can be matched with errors.Is.
type SortError struct {
	Kind    error
	Segment string
}

func (e *SortError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Segment)
}

func (e *SortError) Unwrap() error {
	return e.Kind
}

// UserMessage returns the message safe to show back to the user.
func (e *SortError) UserMessage() string {
	return InvalidSortMessage
}
