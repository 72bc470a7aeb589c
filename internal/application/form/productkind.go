package form

import (
	"fmt"
	"strings"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// ProductKindForm adds custom-field editing to the product kind dialog
type ProductKindForm struct {
	*Form[catalog.ProductKind]
}

// NewProductKindForm creates the product kind dialog state
func NewProductKindForm(record *catalog.ProductKind) *ProductKindForm {
	type kind = catalog.ProductKind

	f := New("product kind", record,
		func() kind {
			return kind{
				IsActive: true,
				Fields:   []catalog.ProductKindField{{Type: catalog.FieldText}},
			}
		},
		WithFields(
			Text("key", "Key", func(k *kind) *string { return &k.Key }),
			Text("name", "Name", func(k *kind) *string { return &k.Name }),
			Text("description", "Description", func(k *kind) *string { return &k.Description }),
			kindFieldsField(),
			Bool("isActive", "Active", func(k *kind) *bool { return &k.IsActive }),
		),
		WithRules(
			Required("key", "Key is required", func(k *kind) string { return k.Key }),
			Required("name", "Name is required", func(k *kind) string { return k.Name }),
			MinItems("fields", "At least one field is required", func(k *kind) int { return len(k.Fields) }, 1),
		),
		WithCheck(func(k *kind, errs Errors) {
			for i, fld := range k.Fields {
				if strings.TrimSpace(fld.Name) == "" {
					errs[fmt.Sprintf("field-%d-name", i)] = "Field name required"
				}
				if strings.TrimSpace(fld.Label) == "" {
					errs[fmt.Sprintf("field-%d-label", i)] = "Label required"
				}
			}
		}),
	)
	return &ProductKindForm{Form: f}
}

// kindFieldsField edits custom fields as "name:Label:type[:required]; ...".
// Options and placeholders are not part of the text form and carry over by name.
func kindFieldsField() Field[catalog.ProductKind] {
	return Field[catalog.ProductKind]{
		Key:   "fields",
		Label: "Fields (name:Label:type[:required]; ...)",
		Get: func(k *catalog.ProductKind) string {
			parts := make([]string, len(k.Fields))
			for i, fld := range k.Fields {
				parts[i] = fld.Name + ":" + fld.Label + ":" + string(fld.Type)
				if fld.Required {
					parts[i] += ":required"
				}
			}
			return strings.Join(parts, "; ")
		},
		Set: func(k *catalog.ProductKind, raw string) error {
			known := make(map[string]catalog.ProductKindField, len(k.Fields))
			for _, fld := range k.Fields {
				known[fld.Name] = fld
			}
			var fields []catalog.ProductKindField
			for _, entry := range strings.Split(raw, ";") {
				entry = strings.TrimSpace(entry)
				if entry == "" {
					continue
				}
				parts := strings.Split(entry, ":")
				fld := catalog.ProductKindField{Type: catalog.FieldText}
				fld.Name = strings.TrimSpace(parts[0])
				if len(parts) > 1 {
					fld.Label = strings.TrimSpace(parts[1])
				}
				if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
					fld.Type = catalog.FieldType(strings.TrimSpace(parts[2]))
				}
				if len(parts) > 3 {
					fld.Required = strings.TrimSpace(parts[3]) == "required"
				}
				if prev, ok := known[fld.Name]; ok {
					fld.Options = prev.Options
					fld.Placeholder = prev.Placeholder
				}
				fields = append(fields, fld)
			}
			k.Fields = fields
			return nil
		},
	}
}

// AddField appends an empty text field
func (f *ProductKindForm) AddField() {
	f.Update("fields", func(k *catalog.ProductKind) {
		k.Fields = append(k.Fields, catalog.ProductKindField{Type: catalog.FieldText})
	})
}

// UpdateField edits the field at index i and clears its inline messages
func (f *ProductKindForm) UpdateField(i int, edit func(*catalog.ProductKindField)) {
	if i < 0 || i >= len(f.Value.Fields) {
		return
	}
	edit(&f.Value.Fields[i])
	delete(f.errors, fmt.Sprintf("field-%d-name", i))
	delete(f.errors, fmt.Sprintf("field-%d-label", i))
}

// RemoveField drops the field at index i
func (f *ProductKindForm) RemoveField(i int) {
	f.Update("fields", func(k *catalog.ProductKind) {
		k.Fields = RemoveAt(k.Fields, i)
	})
}
