// Package form holds the editable state behind every create/update dialog.
// A Form seeds a private copy of a record (or documented defaults), exposes
// typed field accessors for text front ends, validates synchronously and
// hands the prepared value to an injected submit callback.
package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
)

// Mode tells whether a form creates a new record or edits an existing one
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// SubmitFunc persists the prepared value. The form waits for it to return.
type SubmitFunc[T any] func(ctx context.Context, value T) error

// Errors maps a field key to its inline validation message
type Errors map[string]string

// Has reports whether field has a message
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Keys returns the failing field keys in sorted order
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e Errors) String() string {
	parts := make([]string, 0, len(e))
	for _, k := range e.Keys() {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// ValidationError is returned by Submit when client-side validation fails
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Errors)
}

// Unwrap lets errors.Is match shared.ErrInvalidInput
func (e *ValidationError) Unwrap() error {
	return shared.ErrInvalidInput
}

// ErrNoSubmit is returned when Submit is called before a callback was set
var ErrNoSubmit = errors.New("form has no submit handler")

// Form is the local editable copy of a record of type T
type Form[T any] struct {
	Value T

	entity     string
	mode       Mode
	fields     []Field[T]
	rules      []Rule[T]
	checks     []func(*T, Errors)
	prepare    func(*T)
	slug       *slugSource[T]
	errors     Errors
	submit     SubmitFunc[T]
	submitting bool
}

type slugSource[T any] struct {
	from func(*T) *string
	to   func(*T) *string
}

// Option configures a Form
type Option[T any] func(*Form[T])

// WithFields declares the editable fields in display order
func WithFields[T any](fields ...Field[T]) Option[T] {
	return func(f *Form[T]) {
		f.fields = append(f.fields, fields...)
	}
}

// WithRules adds per-field validation rules
func WithRules[T any](rules ...Rule[T]) Option[T] {
	return func(f *Form[T]) {
		f.rules = append(f.rules, rules...)
	}
}

// WithCheck adds a validation step that may report several fields at once
func WithCheck[T any](check func(*T, Errors)) Option[T] {
	return func(f *Form[T]) {
		f.checks = append(f.checks, check)
	}
}

// WithPrepare normalises the submitted copy, e.g. dropping empty nested objects
func WithPrepare[T any](prepare func(*T)) Option[T] {
	return func(f *Form[T]) {
		f.prepare = prepare
	}
}

// WithSlug enables GenerateSlug, deriving to from from
func WithSlug[T any](from, to func(*T) *string) Option[T] {
	return func(f *Form[T]) {
		f.slug = &slugSource[T]{from: from, to: to}
	}
}

// New creates a form. A non-nil record puts the form in edit mode over a deep
// copy of it; nil starts create mode from defaults.
func New[T any](entity string, record *T, defaults func() T, opts ...Option[T]) *Form[T] {
	f := &Form[T]{
		entity: entity,
		errors: Errors{},
	}
	if record != nil {
		f.mode = ModeEdit
		f.Value = clone(*record)
	} else {
		f.mode = ModeCreate
		if defaults != nil {
			f.Value = defaults()
		}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// clone deep-copies v through its JSON form, which is how records travel anyway
func clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

// Entity returns the singular entity name, e.g. "author"
func (f *Form[T]) Entity() string { return f.entity }

// Mode returns whether the form creates or edits
func (f *Form[T]) Mode() Mode { return f.mode }

// Title is the dialog heading, e.g. "Edit author"
func (f *Form[T]) Title() string {
	if f.mode == ModeEdit {
		return "Edit " + f.entity
	}
	return "New " + f.entity
}

// Fields returns the editable fields in display order
func (f *Form[T]) Fields() []Field[T] { return f.fields }

// Field looks up a field by key
func (f *Form[T]) Field(key string) (Field[T], bool) {
	for _, fld := range f.fields {
		if fld.Key == key {
			return fld, true
		}
	}
	return Field[T]{}, false
}

// Get returns the text form of a field's current value
func (f *Form[T]) Get(key string) string {
	fld, ok := f.Field(key)
	if !ok {
		return ""
	}
	return fld.Get(&f.Value)
}

// Set parses raw into a field and clears that field's error
func (f *Form[T]) Set(key, raw string) error {
	fld, ok := f.Field(key)
	if !ok {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s has no field %q", f.entity, key))
	}
	if err := fld.Set(&f.Value, raw); err != nil {
		return fmt.Errorf("%s: %w", fld.Label, err)
	}
	delete(f.errors, key)
	return nil
}

// Update edits the value directly and clears the named field's error
func (f *Form[T]) Update(key string, edit func(*T)) {
	edit(&f.Value)
	delete(f.errors, key)
}

// Add appends a trimmed, non-blank value to a list field unless present
func (f *Form[T]) Add(key, value string) bool {
	fld, ok := f.Field(key)
	if !ok || fld.list == nil {
		return false
	}
	list, added := AddUnique(*fld.list(&f.Value), value)
	*fld.list(&f.Value) = list
	if added {
		delete(f.errors, key)
	}
	return added
}

// RemoveValue removes value from a list field
func (f *Form[T]) RemoveValue(key, value string) {
	fld, ok := f.Field(key)
	if !ok || fld.list == nil {
		return
	}
	*fld.list(&f.Value) = Remove(*fld.list(&f.Value), value)
}

// GenerateSlug derives the slug from the name field
func (f *Form[T]) GenerateSlug() string {
	if f.slug == nil {
		return ""
	}
	s := shared.Slugify(*f.slug.from(&f.Value))
	*f.slug.to(&f.Value) = s
	return s
}

// Errors returns the current inline messages
func (f *Form[T]) Errors() Errors { return f.errors }

// Validate runs every rule and check, replacing the inline messages
func (f *Form[T]) Validate() bool {
	errs := Errors{}
	for _, r := range f.rules {
		if errs.Has(r.Field) {
			continue
		}
		if !r.valid(&f.Value) {
			errs[r.Field] = r.Message
		}
	}
	for _, check := range f.checks {
		check(&f.Value, errs)
	}
	f.errors = errs
	return len(errs) == 0
}

// OnSubmit sets the callback Submit hands the prepared value to
func (f *Form[T]) OnSubmit(fn SubmitFunc[T]) *Form[T] {
	f.submit = fn
	return f
}

// Submitting reports whether a submit is in flight
func (f *Form[T]) Submitting() bool { return f.submitting }

// Prepared returns the copy Submit would send
func (f *Form[T]) Prepared() T {
	v := clone(f.Value)
	if f.prepare != nil {
		f.prepare(&v)
	}
	return v
}

// Submit validates, then calls the submit callback and waits for it.
// Validation failures return a *ValidationError without calling back.
func (f *Form[T]) Submit(ctx context.Context) error {
	if !f.Validate() {
		return &ValidationError{Errors: f.errors}
	}
	if f.submit == nil {
		return ErrNoSubmit
	}

	f.submitting = true
	defer func() { f.submitting = false }()
	return f.submit(ctx, f.Prepared())
}
