// Package errors defines the error taxonomy shared by the API services.
// Every failure a service returns is an *AppError carrying a kind and a
// caller-facing message; handlers map kinds to HTTP statuses.
package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Kind Kind
	Msg  string
	Base error
}

func NewValidation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Msg: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Msg: msg}
}

func NewAuth(msg string) *AppError {
	return &AppError{Kind: KindAuth, Msg: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Msg: msg}
}

func NewInternal(base error) *AppError {
	return &AppError{Kind: KindInternal, Msg: "internal error", Base: base}
}

// Shared sentinels. Login failures always surface ErrInvalidCredentials so
// an unknown email is indistinguishable from a wrong password.
var (
	ErrInvalidCredentials = NewAuth("invalid credentials")
	ErrInvalidToken       = NewAuth("invalid or expired token")
	ErrEmailAlreadyInUse  = NewConflict("user with this email already exists")
	ErrUserNotFound       = NewNotFound("user not found")
	ErrFavouriteExists    = NewConflict("exercise already in favourites")
	ErrFavouriteNotFound  = NewNotFound("exercise not found in favourites")
)

func (e *AppError) Error() string {
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Base
}

func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return errors.Is(e.Base, target)
	}
	return e.Kind == appErr.Kind && e.Msg == appErr.Msg
}

// HTTPStatus maps an error kind to its response status. Duplicate unique
// fields surface as 400, matching the public API contract.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (e *AppError) IsInternal() bool {
	return e.Kind == KindInternal
}

// FromError normalizes any error into an *AppError, wrapping unknown
// failures as internal.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
