package utils

import (
	"login-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	cssLengthRegex = regexp.MustCompile(constvars.RegexCSSLength)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("css_length", validateCSSLength)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateCSSLength(fl validator.FieldLevel) bool {
	return cssLengthRegex.MatchString(fl.Field().String())
}
