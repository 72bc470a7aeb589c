package form

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field binds a text input to one attribute of T
type Field[T any] struct {
	Key   string
	Label string
	// Options lists the accepted values of a choice field
	Options []string
	Get     func(*T) string
	Set     func(*T, string) error

	list func(*T) *[]string
}

// IsList reports whether the field holds a de-duplicated list
func (f Field[T]) IsList() bool { return f.list != nil }

// Text binds a string attribute
func Text[T any](key, label string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return *ref(v) },
		Set: func(v *T, raw string) error {
			*ref(v) = raw
			return nil
		},
	}
}

// Choice binds a string-typed attribute restricted to options. An empty value
// is accepted so required-ness stays with the rules.
func Choice[T any, S ~string](key, label string, ref func(*T) *S, options ...S) Field[T] {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = string(o)
	}
	return Field[T]{
		Key:     key,
		Label:   label,
		Options: names,
		Get:     func(v *T) string { return string(*ref(v)) },
		Set: func(v *T, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw != "" && !slices.Contains(names, raw) {
				return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
			}
			*ref(v) = S(raw)
			return nil
		},
	}
}

// Int binds an integer attribute; blank input means zero
func Int[T any](key, label string, ref func(*T) *int) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return strconv.Itoa(*ref(v)) },
		Set: func(v *T, raw string) error {
			n, err := parseInt(raw)
			if err != nil {
				return err
			}
			*ref(v) = n
			return nil
		},
	}
}

// OptionalInt binds a nullable integer; blank or zero input clears it
func OptionalInt[T any](key, label string, ref func(*T) **int) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get: func(v *T) string {
			if p := *ref(v); p != nil {
				return strconv.Itoa(*p)
			}
			return ""
		},
		Set: func(v *T, raw string) error {
			n, err := parseInt(raw)
			if err != nil {
				return err
			}
			if n == 0 {
				*ref(v) = nil
				return nil
			}
			*ref(v) = &n
			return nil
		},
	}
}

func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return n, nil
}

// Float binds a float attribute; blank input means zero
func Float[T any](key, label string, ref func(*T) *float64) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return strconv.FormatFloat(*ref(v), 'f', -1, 64) },
		Set: func(v *T, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				*ref(v) = 0
				return nil
			}
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%q is not a number", raw)
			}
			*ref(v) = f
			return nil
		},
	}
}

// Money binds a decimal amount; blank input means zero
func Money[T any](key, label string, ref func(*T) *decimal.Decimal) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return ref(v).String() },
		Set: func(v *T, raw string) error {
			d, err := parseMoney(raw)
			if err != nil {
				return err
			}
			*ref(v) = d
			return nil
		},
	}
}

func parseMoney(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount", raw)
	}
	return d, nil
}

// Bool binds a flag; accepts the strconv.ParseBool spellings plus yes/no
func Bool[T any](key, label string, ref func(*T) *bool) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return strconv.FormatBool(*ref(v)) },
		Set: func(v *T, raw string) error {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "yes", "y", "on":
				*ref(v) = true
				return nil
			case "no", "n", "off", "":
				*ref(v) = false
				return nil
			}
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("%q is not yes or no", raw)
			}
			*ref(v) = b
			return nil
		},
	}
}

// List binds a string list edited as comma separated text
func List[T any](key, label string, ref func(*T) *[]string) Field[T] {
	return Field[T]{
		Key:   key,
		Label: label,
		Get:   func(v *T) string { return strings.Join(*ref(v), ", ") },
		Set: func(v *T, raw string) error {
			*ref(v) = SplitList(raw)
			return nil
		},
		list: ref,
	}
}
