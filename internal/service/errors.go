package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/epicircle/scrap-pickups/internal/lifecycle"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("conflict")
	ErrSuggestionFailed = errors.New("price suggestion failed")
)

// Error keeps the lifecycle failure next to the service sentinel so handlers
// can report both the status and the machine-readable code.
type Error struct {
	Kind  error
	Cause *lifecycle.Error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Cause.Message)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func mapLifecycleError(err error) error {
	cause, ok := lifecycle.AsError(err)
	if !ok {
		return err
	}
	kind := ErrConflict
	if errors.Is(cause, lifecycle.ErrValidation) {
		kind = ErrInvalidInput
	}
	return &Error{Kind: kind, Cause: cause}
}

func mapStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
