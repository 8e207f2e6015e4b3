package http

import (
	"errors"
	"net/http"

	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/pkg/errs"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newError(code int, message string) Error {
	return Error{Code: code, Message: message}
}

// statusOf maps application errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, action.ErrUnknownType),
		errors.Is(err, commands.ErrActionIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
