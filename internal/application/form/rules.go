package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Rule checks one field. Either Tag (a validator tag applied to Value) or
// Check is used.
type Rule[T any] struct {
	Field   string
	Message string
	Tag     string
	Value   func(*T) any
	Check   func(*T) bool
}

func (r Rule[T]) valid(v *T) bool {
	if r.Check != nil {
		return r.Check(v)
	}
	return validate.Var(r.Value(v), r.Tag) == nil
}

// Required rejects empty and whitespace-only text
func Required[T any](field, message string, value func(*T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Message: message,
		Tag:     "notblank",
		Value:   func(v *T) any { return value(v) },
	}
}

// Email accepts an empty value or a well-formed address
func Email[T any](field, message string, value func(*T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Message: message,
		Tag:     "omitempty,email",
		Value:   func(v *T) any { return value(v) },
	}
}

// OneOf restricts text to a fixed set
func OneOf[T any](field, message string, value func(*T) string, options ...string) Rule[T] {
	tag := "oneof"
	for _, o := range options {
		tag += " " + o
	}
	return Rule[T]{
		Field:   field,
		Message: message,
		Tag:     tag,
		Value:   func(v *T) any { return value(v) },
	}
}

// MinInt requires an integer of at least min
func MinInt[T any](field, message string, value func(*T) int, min int) Rule[T] {
	return Rule[T]{
		Field:   field,
		Message: message,
		Tag:     fmt.Sprintf("gte=%d", min),
		Value:   func(v *T) any { return value(v) },
	}
}

// MinItems requires a slice with at least min entries
func MinItems[T any](field, message string, length func(*T) int, min int) Rule[T] {
	return MinInt(field, message, length, min)
}

// Positive requires an amount strictly greater than zero
func Positive[T any](field, message string, value func(*T) decimal.Decimal) Rule[T] {
	return Check(field, message, func(v *T) bool { return value(v).IsPositive() })
}

// NonNegative requires an amount of zero or more
func NonNegative[T any](field, message string, value func(*T) decimal.Decimal) Rule[T] {
	return Check(field, message, func(v *T) bool { return !value(v).IsNegative() })
}

// Check wraps an arbitrary predicate
func Check[T any](field, message string, ok func(*T) bool) Rule[T] {
	return Rule[T]{Field: field, Message: message, Check: ok}
}
