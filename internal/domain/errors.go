package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// DuplicateKeyError flags a unique-key violation (e.g. room number taken).
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate key"
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

func (e DuplicateKeyError) Unwrap() error { return e.Err }

// UnavailableError flags a room that already has an open booking.
type UnavailableError struct {
	Resource string
	Err      error
}

func (e UnavailableError) Error() string {
	if e.Resource == "" {
		return "not available"
	}
	return fmt.Sprintf("%s is not available", e.Resource)
}

func (e UnavailableError) Unwrap() error { return e.Err }

// AlreadyClosedError flags a check-out attempt on a closed booking.
type AlreadyClosedError struct {
	BookingID int64
	Err       error
}

func (e AlreadyClosedError) Error() string {
	if e.BookingID == 0 {
		return "booking already checked out"
	}
	return fmt.Sprintf("booking %d already checked out", e.BookingID)
}

func (e AlreadyClosedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsDuplicateKey(err error) bool {
	var target DuplicateKeyError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsAlreadyClosed(err error) bool {
	var target AlreadyClosedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
