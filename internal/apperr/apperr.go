// Package apperr defines the three failure kinds the API distinguishes:
// bad input, missing records and store failures.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindStore is an unexpected failure of the relational store.
	KindStore Kind = iota
	// KindValidation is malformed or missing client input.
	KindValidation
	// KindNotFound means the referenced record does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "store"
	}
}

// Error carries a Kind, a client-safe message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a KindValidation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound returns a KindNotFound error with the given message.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Store wraps a store failure. op names the failed operation and is only
// used in logs.
func Store(op string, err error) error {
	return &Error{Kind: KindStore, Message: op, Err: err}
}

// Wrap returns err unchanged when it is already an *Error and wraps it as a
// store failure otherwise. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Store(op, err)
}

// KindOf reports the Kind of err. Errors that are not *Error are treated
// as store failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// Message returns the client-safe message of err, or "" for errors that
// are not *Error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
