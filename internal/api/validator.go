package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"medalboard/internal/models"
)

type requestValidator struct {
	v *validator.Validate
}

// NewValidator adapts go-playground/validator to echo. Failures wrap
// models.ErrInvalidSelection.
func NewValidator() echo.Validator {
	return &requestValidator{v: validator.New()}
}

func (rv *requestValidator) Validate(i interface{}) error {
	if err := rv.v.Struct(i); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidSelection, err)
	}
	return nil
}
