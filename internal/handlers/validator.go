package handlers

import (
	"property-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// NewValidator returns the echo validator request DTOs are checked with
func NewValidator() echo.Validator {
	return validation.GetValidator()
}
