// Package validator wraps go-playground/validator with a process-wide
// instance, the ledger-specific tags and a uniform error format.
//
// Registered tags:
//   - ledger_address: 1 to 128 printable, non-space characters.
package validator

import (
	"errors"
	"fmt"
	"unicode"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned on any validation failure.
var ErrValidationFailed = errors.New("struct validation failed")

// maxLedgerAddressLength bounds the length of a ledger address.
const maxLedgerAddressLength = 128

// errStringFormat describes a single field failure.
//
// Example: "'Address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("ledger_address", isLedgerAddress); err != nil {
		panic(err)
	}
}

// isLedgerAddress implements the ledger_address tag.
func isLedgerAddress(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > maxLedgerAddressLength {
		return false
	}

	for _, r := range s {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// formatError turns validator.ValidationErrors into ErrValidationFailed joined
// with one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
// Example:
//
//	type Input struct {
//	    Address string `validate:"required,ledger_address"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject input
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. validator.Var(addr, "required,ledger_address").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
