// Package schema holds the validated record types of the store: user,
// product, order and application configuration. Every record is either fully
// valid or never comes into existence — constructors normalize field values
// in place, run all rules, and report every violation at once instead of
// stopping at the first one.
package schema

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError names one violated rule on one field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Errors aggregates every violation found on a record.
type Errors []FieldError

func (e Errors) Error() string {
	var b strings.Builder
	for i, fe := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field + ": " + fe.Msg)
	}
	return b.String()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so errors read like the
	// serialized form ("max_connections", not "MaxConnections").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// Numeric comparisons (gt=0 on prices) need a plain number; teach the
	// engine to see decimal.Decimal fields as float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// check runs the tagged rules on a record and translates the engine's
// errors into aggregated field messages.
func check(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Msg: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gt":
		if fe.Param() == "0" {
			return "must be greater than 0"
		}
		return "must be greater than " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "cannot be negative"
		}
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "phone":
		return "invalid phone format"
	}
	return "is invalid"
}
