package domain

import (
	"errors"
	"fmt"
)

// MissingParameterError means a required query/form field was absent.
// Rendered as a terminal page with a link back to the search form.
type MissingParameterError struct {
	Param string
}

func (e MissingParameterError) Error() string {
	if e.Param == "" {
		return "missing required parameter"
	}
	return fmt.Sprintf("missing required parameter %q", e.Param)
}

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

// ValidationError is non-terminal; the originating form is redisplayed
// with the full set of violations.
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

// StorageWriteError wraps a failed insert. Surfaced as one generic
// message on the booking form; retry is user-initiated.
type StorageWriteError struct {
	Err error
}

func (e StorageWriteError) Error() string {
	return "failed to save"
}

func (e StorageWriteError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsMissingParameter(err error) bool {
	var target MissingParameterError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStorageWrite(err error) bool {
	var target StorageWriteError
	return errors.As(err, &target)
}
