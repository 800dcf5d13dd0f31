package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("npi", validateNPI)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNPI(fl validator.FieldLevel) bool {
	return IsValidNPI(fl.Field().String())
}

// IsValidNPI reports whether value is a ten digit identifier.
func IsValidNPI(value string) bool {
	if len(value) != 10 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
