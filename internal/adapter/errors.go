package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyCompletion is returned when a chat completion response is
	// syntactically valid but carries no choices.
	ErrEmptyCompletion = errors.New("completion response has no choices")
)
