package catalog

// FieldType is the input type of a custom product field
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldSelect  FieldType = "select"
	FieldDate    FieldType = "date"
)

// ProductKindField declares one custom attribute of a product kind
type ProductKindField struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// ProductKind defines a product category and its custom fields
type ProductKind struct {
	ID          string             `json:"_id,omitempty"`
	Key         string             `json:"key"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	Fields      []ProductKindField `json:"fields"`
}

func (k ProductKind) GetID() string       { return k.ID }
func (k ProductKind) DisplayName() string { return k.Name }
