package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a gin binding error into a single combined
// "field: reason; field: reason" message, using the struct's json tag
// names as field paths. Non-validator errors (malformed JSON, wrong
// types) collapse to a generic message.
func BindingErrorMessage(obj any, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.StructField()
		if f, ok := t.FieldByName(name); ok {
			if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
				name = tag
			}
		}
		parts = append(parts, name+": "+bindingReason(fe))
	}
	return strings.Join(parts, "; ")
}

func bindingReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
