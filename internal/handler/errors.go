package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not found",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Server error",
}

// NewErrorHandler renders errors as ErrorResponse. Errors that are not
// *echo.HTTPError become 500 and are logged.
func NewErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}

		message, ok := errorMessages[code]
		if !ok {
			message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorResponse{
				Success: false,
				Error:   code,
				Message: message,
			})
		}
		if writeErr != nil {
			log.ErrorContext(c.Request().Context(), "failed to write error response", slog.String("error", writeErr.Error()))
		}
	}
}

// serverError hides err from the client and keeps it for the error log
func serverError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}
