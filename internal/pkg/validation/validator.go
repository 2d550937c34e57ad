package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs and reports every failing field at once.
//
// Besides the built-in tags it understands intrange=<min> <max>, which accepts a
// string holding a base-10 integer within the inclusive range.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	if err := v.RegisterValidation("intrange", intRange); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Struct returns one message per invalid field in declaration order, or nil.
func (v *Validator) Struct(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "intrange":
		lo, hi, err := parseRange(fe.Param())
		if err != nil {
			return fmt.Sprintf("%s must be an integer", fe.Field())
		}
		return fmt.Sprintf("%s must be an integer between %d and %d", fe.Field(), lo, hi)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func intRange(fl validator.FieldLevel) bool {
	lo, hi, err := parseRange(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	n, err := strconv.Atoi(field.String())
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

func parseRange(param string) (int, int, error) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("intrange: expected two bounds, got %q", param)
	}

	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("intrange: lower bound: %w", err)
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("intrange: upper bound: %w", err)
	}
	return lo, hi, nil
}
