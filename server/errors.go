package server

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/sinspline/config"
	"github.com/katalvlaran/sinspline/sinspline"
)

// ErrBadParam indicates a query value that is not a number.
var ErrBadParam = errors.New("server: malformed parameter")

// statusFor maps a build error to an HTTP status: caller mistakes are 400,
// everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadParam),
		errors.Is(err, config.ErrOutOfLimits),
		errors.Is(err, sinspline.ErrInvalidParameters):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
