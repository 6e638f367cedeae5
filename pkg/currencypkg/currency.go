// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Constants for the currencies the app offers by default.
const (
	RUB = "RUB"
	USD = "USD"
	EUR = "EUR"
)

// Default is used when an import row or a form omits the currency.
const Default = RUB

// CommonCurrencies holds the currencies suggested to the user.
var CommonCurrencies = []string{
	RUB,
	USD,
	EUR,
}

// Normalize trims the code and upper-cases it.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCode returns true if the code has the ISO 4217 shape: three latin letters.
func IsValidCode(code string) bool {
	code = Normalize(code)
	if len(code) != 3 {
		return false
	}

	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

// ValidCurrency validates whether the field holds a well-formed currency code.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsValidCode(c)
	}
	return false
}

// NewValidator returns a validator with the "currency" tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails on an empty tag or nil func.
	_ = v.RegisterValidation("currency", ValidCurrency)
	return v
}
