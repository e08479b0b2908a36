package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Nazehs/trivia-app/internal/pagination"
)

// RequestValidator adapts go-playground/validator to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new request validator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate validates a request struct
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bindRequest decodes and validates a JSON body. Syntax errors and missing
// required fields are 400; values of the wrong JSON type are 422.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	return nil
}

// page reads the optional page query parameter
func page(c echo.Context) int {
	return pagination.ParsePage(c.QueryParam("page"))
}

// idParam reads an integer path parameter. Non-integers are reported as
// not found, the same as an unmatched route.
func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}
	return id, nil
}

var intType = reflect.TypeOf(0)

// jsonInt decodes a JSON number or a string holding an integer, e.g. the
// value of an HTML select
type jsonInt int

func (i *jsonInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*i = jsonInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: intType}
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: intType}
	}
	*i = jsonInt(n)
	return nil
}
