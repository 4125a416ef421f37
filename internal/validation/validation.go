// Package validation wires go-playground/validator into Echo so handlers can
// call c.Validate(&req) after binding.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate instance to Echo's Validator
// interface.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds a validator with struct tag support ("validate" tags).
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.  Field errors are flattened into a
// single human-readable message so handlers can return it as-is.
func (ev *EchoValidator) Validate(i interface{}) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
