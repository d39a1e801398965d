package lifecycle

import (
	"errors"
	"fmt"

	"github.com/epicircle/scrap-pickups/internal/model"
)

var (
	// ErrValidation marks failures caused by the caller's input.
	ErrValidation = errors.New("validation error")
	// ErrTransition marks events issued from a state that does not accept them.
	ErrTransition = errors.New("transition not allowed")
)

type Code string

const (
	CodeWrongState    Code = "WRONG_STATE"
	CodeInvalidCode   Code = "INVALID_CODE"
	CodeNoItems       Code = "NO_ITEMS"
	CodeMissingFields Code = "MISSING_FIELDS"
	CodeInvalidPrice  Code = "INVALID_PRICE"
)

const (
	MsgInvalidCode   = "The pickup code is incorrect."
	MsgNoItems       = "Please add at least one item before submitting."
	MsgMissingFields = "Please fill out all item details."
	MsgInvalidPrice  = "Price must be a non-negative number."
)

// Error is the structured failure returned by every rejected event. The
// pickup passed to the event is returned unchanged alongside it.
type Error struct {
	Code    Code
	Message string
	kind    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func validationError(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, kind: ErrValidation}
}

func wrongState(event string, status model.PickupStatus) *Error {
	return &Error{
		Code:    CodeWrongState,
		Message: fmt.Sprintf("cannot %s a pickup in status %s", event, status),
		kind:    ErrTransition,
	}
}

// AsError extracts the structured failure from err, if there is one.
func AsError(err error) (*Error, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr, true
	}
	return nil, false
}
