package form

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// TempIDPrefix marks set items whose product has not been linked yet
const TempIDPrefix = "temp-"

// SchoolSetForm adds bundled-item editing to the school set dialog
type SchoolSetForm struct {
	*Form[catalog.SchoolSet]
}

// NewSchoolSetForm creates the school set dialog state
func NewSchoolSetForm(record *catalog.SchoolSet) *SchoolSetForm {
	type set = catalog.SchoolSet

	f := New("school set", record,
		func() set {
			return set{IsActive: true, Price: decimal.Zero}
		},
		WithFields(
			Text("name", "Name", func(s *set) *string { return &s.Name }),
			Text("slug", "Slug", func(s *set) *string { return &s.Slug }),
			Text("description", "Description", func(s *set) *string { return &s.Description }),
			Text("shortDescription", "Short description", func(s *set) *string { return &s.ShortDescription }),
			Text("gradeLevel", "Grade level", func(s *set) *string { return &s.GradeLevel }),
			Text("board", "Board", func(s *set) *string { return &s.Board }),
			Text("syllabusYear", "Syllabus year", func(s *set) *string { return &s.SyllabusYear }),
			Text("ageGroup", "Age group", func(s *set) *string { return &s.AgeGroup }),
			Choice("type", "Type", func(s *set) *catalog.SchoolSetType { return &s.Type },
				catalog.SetTypeGrade, catalog.SetTypeSubject, catalog.SetTypeUniform, catalog.SetTypeStationery, catalog.SetTypeComplete),
			Text("schoolName", "School", func(s *set) *string { return &s.SchoolName }),
			Text("academicYear", "Academic year", func(s *set) *string { return &s.AcademicYear }),
			setItemsField(),
			Money("price", "Price", func(s *set) *decimal.Decimal { return &s.Price }),
			Money("costPrice", "Cost price", func(s *set) *decimal.Decimal { return &s.CostPrice }),
			Money("originalPrice", "Original price", func(s *set) *decimal.Decimal { return &s.OriginalPrice }),
			Text("sku", "SKU", func(s *set) *string { return &s.SKU }),
			Text("barcode", "Barcode", func(s *set) *string { return &s.Barcode }),
			Float("weight", "Weight", func(s *set) *float64 { return &s.Weight }),
			List("images", "Images", func(s *set) *[]string { return &s.Images }),
			List("tags", "Tags", func(s *set) *[]string { return &s.Tags }),
			List("keyFeatures", "Key features", func(s *set) *[]string { return &s.KeyFeatures }),
			Text("metaTitle", "Meta title", func(s *set) *string { return &s.MetaTitle }),
			Text("metaDescription", "Meta description", func(s *set) *string { return &s.MetaDescription }),
			List("seoKeywords", "SEO keywords", func(s *set) *[]string { return &s.SEOKeywords }),
			Bool("isActive", "Active", func(s *set) *bool { return &s.IsActive }),
			Bool("isFeatured", "Featured", func(s *set) *bool { return &s.IsFeatured }),
		),
		WithRules(
			Required("name", "Name is required", func(s *set) string { return s.Name }),
			Required("gradeLevel", "Grade level is required", func(s *set) string { return s.GradeLevel }),
			Positive("price", "Valid price is required", func(s *set) decimal.Decimal { return s.Price }),
			MinItems("items", "At least one item is required", func(s *set) int { return len(s.Items) }, 1),
		),
		WithSlug(
			func(s *set) *string { return &s.Name },
			func(s *set) *string { return &s.Slug },
		),
	)
	return &SchoolSetForm{Form: f}
}

func setItemsField() Field[catalog.SchoolSet] {
	return Field[catalog.SchoolSet]{
		Key:   "items",
		Label: "Items (name x qty @ price; ...)",
		Get: func(s *catalog.SchoolSet) string {
			lines := make([]Line, len(s.Items))
			for i, item := range s.Items {
				lines[i] = Line{Ref: item.ProductName, Quantity: item.Quantity, Price: item.UnitPrice}
			}
			return FormatLines(lines)
		},
		Set: func(s *catalog.SchoolSet, raw string) error {
			lines, err := ParseLines(raw)
			if err != nil {
				return err
			}
			known := make(map[string]string, len(s.Items))
			for _, item := range s.Items {
				known[item.ProductName] = item.ProductID
			}
			items := make([]catalog.SetItem, 0, len(lines))
			for _, l := range lines {
				item, err := newSetItem(known[l.Ref], l.Ref, l.Quantity, l.Price)
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			s.Items = items
			return nil
		},
	}
}

func newSetItem(productID, productName string, quantity int, unitPrice decimal.Decimal) (catalog.SetItem, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return catalog.SetItem{}, errors.New("product name is required")
	}
	if quantity <= 0 {
		return catalog.SetItem{}, errors.New("quantity must be greater than 0")
	}
	if unitPrice.IsNegative() {
		return catalog.SetItem{}, errors.New("unit price cannot be negative")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		productID = TempIDPrefix + uuid.NewString()
	}
	return catalog.SetItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// AddItem appends a bundled product. A blank product id gets a temporary one.
func (f *SchoolSetForm) AddItem(productID, productName string, quantity int, unitPrice decimal.Decimal) error {
	item, err := newSetItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}
	f.Update("items", func(s *catalog.SchoolSet) {
		s.Items = append(s.Items, item)
	})
	return nil
}

// RemoveItem drops the item at index i
func (f *SchoolSetForm) RemoveItem(i int) {
	f.Update("items", func(s *catalog.SchoolSet) {
		s.Items = RemoveAt(s.Items, i)
	})
}

// ItemsTotal is the sum of the current line totals
func (f *SchoolSetForm) ItemsTotal() decimal.Decimal {
	return f.Value.ItemsTotal()
}

// NewUniformForm creates the uniform dialog state
func NewUniformForm(record *catalog.Uniform) *Form[catalog.Uniform] {
	type uniform = catalog.Uniform

	return New("uniform", record,
		func() uniform {
			return uniform{Type: "school", Gender: "unisex", IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(u *uniform) *string { return &u.Name }),
			Text("slug", "Slug", func(u *uniform) *string { return &u.Slug }),
			Text("description", "Description", func(u *uniform) *string { return &u.Description }),
			Text("schoolName", "School", func(u *uniform) *string { return &u.SchoolName }),
			Text("gradeLevel", "Grade level", func(u *uniform) *string { return &u.GradeLevel }),
			Text("type", "Type", func(u *uniform) *string { return &u.Type }),
			Text("gender", "Gender", func(u *uniform) *string { return &u.Gender }),
			List("sizes", "Sizes", func(u *uniform) *[]string { return &u.Sizes }),
			List("colors", "Colors", func(u *uniform) *[]string { return &u.Colors }),
			List("materials", "Materials", func(u *uniform) *[]string { return &u.Materials }),
			Text("careInstructions", "Care instructions", func(u *uniform) *string { return &u.CareInstructions }),
			Text("season", "Season", func(u *uniform) *string { return &u.Season }),
			Money("price", "Price", func(u *uniform) *decimal.Decimal { return &u.Price }),
			Money("costPrice", "Cost price", func(u *uniform) *decimal.Decimal { return &u.CostPrice }),
			Text("sku", "SKU", func(u *uniform) *string { return &u.SKU }),
			Text("barcode", "Barcode", func(u *uniform) *string { return &u.Barcode }),
			Float("weight", "Weight", func(u *uniform) *float64 { return &u.Weight }),
			List("images", "Images", func(u *uniform) *[]string { return &u.Images }),
			List("tags", "Tags", func(u *uniform) *[]string { return &u.Tags }),
			Text("metaTitle", "Meta title", func(u *uniform) *string { return &u.MetaTitle }),
			Text("metaDescription", "Meta description", func(u *uniform) *string { return &u.MetaDescription }),
			List("seoKeywords", "SEO keywords", func(u *uniform) *[]string { return &u.SEOKeywords }),
			Bool("isActive", "Active", func(u *uniform) *bool { return &u.IsActive }),
			Bool("isFeatured", "Featured", func(u *uniform) *bool { return &u.IsFeatured }),
		),
		WithRules(
			Required("name", "Name is required", func(u *uniform) string { return u.Name }),
			Required("schoolName", "School name is required", func(u *uniform) string { return u.SchoolName }),
			Required("type", "Type is required", func(u *uniform) string { return u.Type }),
			Positive("price", "Valid price is required", func(u *uniform) decimal.Decimal { return u.Price }),
		),
		WithSlug(
			func(u *uniform) *string { return &u.Name },
			func(u *uniform) *string { return &u.Slug },
		),
	)
}
