package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonTagName reports fields by their wire name so validation messages
// match what the caller sent.
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return strings.ToLower(field.Name)
	case "":
		return field.Name
	}
	return name
}
