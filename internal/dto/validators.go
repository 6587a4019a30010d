package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidators installs the binding rules used by the DTO tags
// on gin's validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", validateCurrencyCode)
}

// validateCurrencyCode accepts any three-letter code. Case is normalized
// by the services, so lowercase input is allowed here.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}
