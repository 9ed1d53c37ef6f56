package adapter

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
