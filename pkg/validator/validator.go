package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// use JSON tag names in validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators()
}

func registerCustomValidators() {
	// subname: URL-safe vanity alias, lowercase letters, digits and dashes
	validate.RegisterValidation("subname", func(fl validator.FieldLevel) bool {
		sub := fl.Field().String()
		if sub == "" {
			return false
		}
		for _, char := range sub {
			if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') || char == '-') {
				return false
			}
		}
		return true
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func GetValidator() *validator.Validate {
	return validate
}
