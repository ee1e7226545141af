package models

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator returns the validator used to decode admin request bodies.
// It checks shape only; role names are checked by the user-admin service.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
