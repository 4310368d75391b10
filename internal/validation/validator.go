// Package validation wires go-playground/validator into Echo so request
// structs are checked from their `validate` tags before any store write
// is attempted.
package validation

import (
    "errors"
    "net/http"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"
)

// Validator adapts a validator.Validate instance to Echo's Validator
// interface.  Assign it to echo.Echo.Validator at startup.
type Validator struct {
    validate *validator.Validate
}

// New returns a Validator with the default tag-based rules.
func New() *Validator {
    return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct and converts any violations into an HTTP
// 400 error carrying a field -> failed-rule map, so clients can render
// the failures inline next to the offending inputs.
func (v *Validator) Validate(i interface{}) error {
    err := v.validate.Struct(i)
    if err == nil {
        return nil
    }
    var verrs validator.ValidationErrors
    if !errors.As(err, &verrs) {
        return echo.NewHTTPError(http.StatusBadRequest, err.Error())
    }
    fields := make(map[string]string, len(verrs))
    for _, fe := range verrs {
        fields[fe.Field()] = fe.Tag()
    }
    return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
        "error":  "validation failed",
        "fields": fields,
    })
}
