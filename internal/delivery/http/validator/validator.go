// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request payloads.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
