package texas

import (
	"errors"
	"fmt"
)

// ErrNotApplicable is returned by the exact enumerator when the request needs sampling.
var ErrNotApplicable = errors.New("texas: exact enumeration not applicable")

// DuplicateCardError reports a card requested more than once across hand and board.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("texas: duplicate card %s", e.Card)
}

// InsufficientDeckError reports a deal that needs more cards than remain.
type InsufficientDeckError struct {
	Need int
	Have int
}

func (e *InsufficientDeckError) Error() string {
	return fmt.Sprintf("texas: deal needs %d cards, only %d remain", e.Need, e.Have)
}

// InvalidInputError reports a malformed argument.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("texas: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
