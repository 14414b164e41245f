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

// StoreError is any failure raised while executing a procedure: driver errors,
// connectivity loss and business-rule rejections signalled by the procedure itself.
type StoreError struct {
	Procedure string
	Msg       string
	Err       error
}

func (e StoreError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Procedure != "" {
		return fmt.Sprintf("%s failed", e.Procedure)
	}
	return "store failure"
}

func (e StoreError) Unwrap() error { return e.Err }

// EmptyResultError reports a procedure that succeeded but returned no row where
// one was required.
type EmptyResultError struct {
	Procedure string
	Msg       string
}

func (e EmptyResultError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s returned no rows", e.Procedure)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}

func IsEmptyResult(err error) bool {
	var target EmptyResultError
	return errors.As(err, &target)
}
