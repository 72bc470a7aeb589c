package catalog

import "github.com/shopspring/decimal"

// SetItem is one product bundled into a school set
type SetItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal is quantity x unit price
func (i SetItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SchoolSetType classifies a school set
type SchoolSetType string

const (
	SetTypeGrade      SchoolSetType = "grade_set"
	SetTypeSubject    SchoolSetType = "subject_set"
	SetTypeUniform    SchoolSetType = "uniform_set"
	SetTypeStationery SchoolSetType = "stationery_set"
	SetTypeComplete   SchoolSetType = "complete_set"
)

// SchoolSet is a bundle of products sold together for a grade or school
type SchoolSet struct {
	ID                 string          `json:"_id,omitempty"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug,omitempty"`
	Description        string          `json:"description,omitempty"`
	ShortDescription   string          `json:"shortDescription,omitempty"`
	GradeLevel         string          `json:"gradeLevel"`
	Board              string          `json:"board,omitempty"`
	SyllabusYear       string          `json:"syllabusYear,omitempty"`
	AgeGroup           string          `json:"ageGroup,omitempty"`
	Type               SchoolSetType   `json:"type,omitempty"`
	Status             string          `json:"status,omitempty"`
	SchoolName         string          `json:"schoolName,omitempty"`
	AcademicYear       string          `json:"academicYear,omitempty"`
	Items              []SetItem       `json:"items"`
	Price              decimal.Decimal `json:"price"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	OriginalPrice      decimal.Decimal `json:"originalPrice,omitzero"`
	DiscountPercentage float64         `json:"discountPercentage,omitempty"`
	Currency           string          `json:"currency,omitempty"`
	StockQuantity      int             `json:"stockQuantity,omitempty"`
	SKU                string          `json:"sku,omitempty"`
	Barcode            string          `json:"barcode,omitempty"`
	Weight             float64         `json:"weight,omitempty"`
	Dimensions         *Dimensions     `json:"dimensions,omitempty"`
	Images             []string        `json:"images,omitempty"`
	Specifications     map[string]any  `json:"specifications,omitempty"`
	IsActive           bool            `json:"isActive"`
	IsFeatured         bool            `json:"isFeatured"`
	Tags               []string        `json:"tags,omitempty"`
	KeyFeatures        []string        `json:"keyFeatures,omitempty"`
	MetaTitle          string          `json:"metaTitle,omitempty"`
	MetaDescription    string          `json:"metaDescription,omitempty"`
	SEOKeywords        []string        `json:"seoKeywords,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	Timestamps
}

func (s SchoolSet) GetID() string       { return s.ID }
func (s SchoolSet) DisplayName() string { return s.Name }

// ItemsTotal is the sum of the set's line totals
func (s SchoolSet) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Uniform is a school uniform product
type Uniform struct {
	ID               string          `json:"_id,omitempty"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug,omitempty"`
	Description      string          `json:"description,omitempty"`
	SchoolName       string          `json:"schoolName"`
	GradeLevel       string          `json:"gradeLevel,omitempty"`
	Type             string          `json:"type"`
	Gender           string          `json:"gender"`
	Sizes            []string        `json:"sizes,omitempty"`
	Colors           []string        `json:"colors,omitempty"`
	Materials        []string        `json:"materials,omitempty"`
	CareInstructions string          `json:"careInstructions,omitempty"`
	Season           string          `json:"season,omitempty"`
	Price            decimal.Decimal `json:"price"`
	CostPrice        decimal.Decimal `json:"costPrice"`
	SKU              string          `json:"sku,omitempty"`
	Barcode          string          `json:"barcode,omitempty"`
	Weight           float64         `json:"weight,omitempty"`
	Dimensions       *Dimensions     `json:"dimensions,omitempty"`
	Images           []string        `json:"images,omitempty"`
	Specifications   map[string]any  `json:"specifications,omitempty"`
	IsActive         bool            `json:"isActive"`
	IsFeatured       bool            `json:"isFeatured"`
	Tags             []string        `json:"tags,omitempty"`
	MetaTitle        string          `json:"metaTitle,omitempty"`
	MetaDescription  string          `json:"metaDescription,omitempty"`
	SEOKeywords      []string        `json:"seoKeywords,omitempty"`
	Timestamps
}

func (u Uniform) GetID() string       { return u.ID }
func (u Uniform) DisplayName() string { return u.Name }
