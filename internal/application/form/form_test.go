package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
)

var equateDecimal = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func intPtr(n int) *int { return &n }

func TestRequiredValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "   \t", true},
		{"present", "Jane Austen", false},
		{"padded", "  Jane  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAuthorForm(nil)
			require.NoError(t, f.Set("name", tt.value))

			ok := f.Validate()
			assert.Equal(t, !tt.wantErr, ok)
			if tt.wantErr {
				assert.Equal(t, "Author name is required", f.Errors()["name"])
			} else {
				assert.Empty(t, f.Errors())
			}
		})
	}
}

func TestRequiredMessages(t *testing.T) {
	t.Run("supplier", func(t *testing.T) {
		f := NewSupplierForm(nil)
		require.NoError(t, f.Set("email", "not-an-email"))
		assert.False(t, f.Validate())
		assert.Equal(t, Errors{
			"name":  "Name is required",
			"code":  "Code is required",
			"email": "Invalid email format",
		}, f.Errors())
	})

	t.Run("warehouse", func(t *testing.T) {
		f := NewWarehouseForm(nil)
		assert.False(t, f.Validate())
		assert.Equal(t, []string{"city", "code", "name", "street"}, f.Errors().Keys())
		assert.Equal(t, "Street address is required", f.Errors()["street"])
	})

	t.Run("book specification", func(t *testing.T) {
		f := NewBookSpecificationForm(nil)
		assert.False(t, f.Validate())
		assert.Equal(t, Errors{"productId": "Product is required"}, f.Errors())
	})

	t.Run("school set", func(t *testing.T) {
		f := NewSchoolSetForm(nil)
		assert.False(t, f.Validate())
		assert.Equal(t, Errors{
			"name":       "Name is required",
			"gradeLevel": "Grade level is required",
			"price":      "Valid price is required",
			"items":      "At least one item is required",
		}, f.Errors())
	})

	t.Run("uniform", func(t *testing.T) {
		f := NewUniformForm(nil)
		assert.False(t, f.Validate())
		assert.Equal(t, Errors{
			"name":       "Name is required",
			"schoolName": "School name is required",
			"price":      "Valid price is required",
		}, f.Errors())
	})

	t.Run("product kind", func(t *testing.T) {
		f := NewProductKindForm(nil)
		assert.False(t, f.Validate())
		assert.Equal(t, Errors{
			"key":           "Key is required",
			"name":          "Name is required",
			"field-0-name":  "Field name required",
			"field-0-label": "Label required",
		}, f.Errors())

		f.RemoveField(0)
		f.Validate()
		assert.Equal(t, "At least one field is required", f.Errors()["fields"])
	})

	t.Run("pricing rule", func(t *testing.T) {
		f := NewPricingRuleForm(nil)
		require.NoError(t, f.Set("name", "Summer"))
		require.NoError(t, f.Set("discountValue", "150"))
		assert.False(t, f.Validate())
		assert.Equal(t, "Percentage cannot exceed 100", f.Errors()["discountValue"])

		require.NoError(t, f.Set("discountType", "free_shipping"))
		require.NoError(t, f.Set("discountValue", "0"))
		assert.True(t, f.Validate())
	})
}

func TestEditingClearsFieldError(t *testing.T) {
	f := NewWarehouseForm(nil)
	require.False(t, f.Validate())
	require.True(t, f.Errors().Has("city"))

	require.NoError(t, f.Set("city", "Pune"))
	assert.False(t, f.Errors().Has("city"))
	assert.True(t, f.Errors().Has("street"))

	f.Update("street", func(w *catalog.Warehouse) { w.Address.Street = "1 Dock Rd" })
	assert.False(t, f.Errors().Has("street"))
}

func TestListHelpersNeverDuplicate(t *testing.T) {
	list, added := AddUnique(nil, "  Fantasy ")
	require.True(t, added)
	assert.Equal(t, []string{"Fantasy"}, list)

	for _, v := range []string{"Fantasy", " Fantasy", "", "   "} {
		next, added := AddUnique(list, v)
		assert.False(t, added, "value %q", v)
		assert.Equal(t, []string{"Fantasy"}, next)
	}

	f := NewUniformForm(nil)
	assert.True(t, f.Add("sizes", "M"))
	assert.True(t, f.Add("sizes", "L"))
	assert.False(t, f.Add("sizes", "M"))
	assert.False(t, f.Add("name", "not a list"))
	assert.Equal(t, []string{"M", "L"}, f.Value.Sizes)

	f.RemoveValue("sizes", "M")
	assert.Equal(t, []string{"L"}, f.Value.Sizes)

	require.NoError(t, f.Set("colors", "navy, white, navy, ,white"))
	assert.Equal(t, []string{"navy", "white"}, f.Value.Colors)
}

func TestEditModePrepopulates(t *testing.T) {
	record := catalog.Author{
		ID:          "a1",
		Name:        "Ursula K. Le Guin",
		Slug:        "ursula-k-le-guin",
		Biography:   "Author of Earthsea",
		Nationality: "American",
		SocialMedia: &catalog.SocialMedia{Twitter: "@ursula"},
		IsActive:    false,
		BooksCount:  23,
		Awards:      []string{"Hugo", "Nebula"},
		Genres:      []string{"Fantasy"},
	}

	f := NewAuthorForm(&record)
	assert.Equal(t, ModeEdit, f.Mode())
	assert.Equal(t, "Edit author", f.Title())
	if diff := cmp.Diff(record, f.Value); diff != "" {
		t.Errorf("form value mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "@ursula", f.Get("twitter"))
	assert.Equal(t, "Hugo, Nebula", f.Get("awards"))

	f.Add("awards", "Locus")
	assert.Equal(t, []string{"Hugo", "Nebula"}, record.Awards)
	assert.Equal(t, "@ursula", record.SocialMedia.Twitter)

	order := catalog.PurchaseOrder{
		ID:         "o1",
		SupplierID: "s1",
		Status:     catalog.PurchaseOrderPending,
		Currency:   "USD",
		Items: []catalog.PurchaseOrderItem{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.RequireFromString("12.50"), TotalCost: decimal.NewFromInt(25)},
		},
		Subtotal:    decimal.NewFromInt(25),
		TotalAmount: decimal.NewFromInt(25),
	}
	pf := NewPurchaseOrderForm(&order)
	if diff := cmp.Diff(order, pf.Value, equateDecimal); diff != "" {
		t.Errorf("purchase order mismatch (-want +got):\n%s", diff)
	}

	publisher := catalog.Publisher{ID: "p1", Name: "Tor", FoundedYear: intPtr(1980), Address: &catalog.Address{City: "New York"}}
	if diff := cmp.Diff(publisher, NewPublisherForm(&publisher).Value); diff != "" {
		t.Errorf("publisher mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateModeDefaults(t *testing.T) {
	assert.Equal(t, catalog.Author{IsActive: true, SocialMedia: &catalog.SocialMedia{}}, NewAuthorForm(nil).Value)
	assert.Equal(t, catalog.BookSeries{IsActive: true}, NewBookSeriesForm(nil).Value)

	supplier := NewSupplierForm(nil)
	assert.Equal(t, ModeCreate, supplier.Mode())
	assert.Equal(t, "New supplier", supplier.Title())
	assert.Equal(t, "INR", supplier.Value.Currency)
	assert.Equal(t, "India", supplier.Value.Address.Country)
	assert.True(t, supplier.Value.IsActive)

	warehouse := NewWarehouseForm(nil).Value
	assert.Equal(t, "India", warehouse.Address.Country)
	assert.True(t, warehouse.IsActive)
	assert.False(t, warehouse.IsPrimary)

	spec := NewBookSpecificationForm(nil).Value
	assert.Equal(t, catalog.FormatPaperback, spec.Format)
	assert.Equal(t, "english", spec.Language)

	set := NewSchoolSetForm(nil).Value
	assert.True(t, set.IsActive)
	assert.False(t, set.IsFeatured)
	assert.True(t, set.Price.IsZero())

	uniform := NewUniformForm(nil).Value
	assert.Equal(t, "school", uniform.Type)
	assert.Equal(t, "unisex", uniform.Gender)
	assert.True(t, uniform.IsActive)

	kind := NewProductKindForm(nil).Value
	assert.Equal(t, []catalog.ProductKindField{{Type: catalog.FieldText}}, kind.Fields)
	assert.True(t, kind.IsActive)

	order := NewPurchaseOrderForm(nil).Value
	assert.Equal(t, catalog.PurchaseOrderDraft, order.Status)
	assert.Equal(t, "INR", order.Currency)

	assert.Equal(t, catalog.GiftWrap, NewGiftServiceForm(nil).Value.Type)
	card := NewGiftCardForm(nil).Value
	assert.Equal(t, catalog.GiftCardActive, card.Status)
	assert.True(t, card.IsDigital)

	rule := NewPricingRuleForm(nil).Value
	assert.Equal(t, catalog.RuleBulkDiscount, rule.Type)
	assert.Equal(t, catalog.DiscountPercentage, rule.DiscountType)

	adj := NewStockAdjustmentForm().Value
	assert.Equal(t, catalog.StockAdd, adj.Operation)
}

func TestSubmit(t *testing.T) {
	t.Run("invalid form never calls back", func(t *testing.T) {
		called := false
		f := NewAuthorForm(nil).OnSubmit(func(ctx context.Context, a catalog.Author) error {
			called = true
			return nil
		})

		err := f.Submit(context.Background())
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, "Author name is required", verr.Errors["name"])
		assert.False(t, called)
	})

	t.Run("prepared copy drops empty nested objects", func(t *testing.T) {
		var got catalog.Author
		f := NewAuthorForm(nil).OnSubmit(func(ctx context.Context, a catalog.Author) error {
			got = a
			return nil
		})
		require.NoError(t, f.Set("name", "Jane"))

		require.NoError(t, f.Submit(context.Background()))
		assert.Equal(t, "Jane", got.Name)
		assert.Nil(t, got.SocialMedia)
		assert.NotNil(t, f.Value.SocialMedia)
	})

	t.Run("callback error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		f := NewPublisherForm(nil).OnSubmit(func(ctx context.Context, p catalog.Publisher) error {
			assert.Nil(t, p.Address)
			assert.Nil(t, p.FoundedYear)
			return boom
		})
		require.NoError(t, f.Set("name", "Tor"))
		require.NoError(t, f.Set("foundedYear", "0"))

		assert.ErrorIs(t, f.Submit(context.Background()), boom)
		assert.False(t, f.Submitting())
	})

	t.Run("no handler", func(t *testing.T) {
		f := NewBookSeriesForm(nil)
		require.NoError(t, f.Set("name", "Discworld"))
		assert.ErrorIs(t, f.Submit(context.Background()), ErrNoSubmit)
	})
}

func TestGenerateSlug(t *testing.T) {
	f := NewBookSeriesForm(nil)
	require.NoError(t, f.Set("name", "  The Wheel of Time  "))
	assert.Equal(t, "the-wheel-of-time", f.GenerateSlug())
	assert.Equal(t, "the-wheel-of-time", f.Value.Slug)

	assert.Empty(t, NewWarehouseForm(nil).GenerateSlug())
}

func TestSetParsing(t *testing.T) {
	f := NewSupplierForm(nil)

	require.NoError(t, f.Set("creditLimit", "15000.75"))
	assert.Equal(t, "15000.75", f.Value.CreditLimit.String())
	assert.Error(t, f.Set("creditLimit", "lots"))

	require.NoError(t, f.Set("leadTime", " 7 "))
	assert.Equal(t, 7, f.Value.LeadTime)
	assert.Error(t, f.Set("leadTime", "a week"))

	require.NoError(t, f.Set("isActive", "no"))
	assert.False(t, f.Value.IsActive)
	require.NoError(t, f.Set("isActive", "true"))
	assert.True(t, f.Value.IsActive)

	assert.Error(t, f.Set("unknown", "x"))

	spec := NewBookSpecificationForm(nil)
	assert.Error(t, spec.Set("format", "scroll"))
	require.NoError(t, spec.Set("format", "ebook"))
	assert.Equal(t, catalog.FormatEbook, spec.Value.Format)
}

func TestSchoolSetItems(t *testing.T) {
	f := NewSchoolSetForm(nil)

	require.Error(t, f.AddItem("", "  ", 1, decimal.Zero))
	require.Error(t, f.AddItem("", "Notebook", 0, decimal.Zero))
	require.Error(t, f.AddItem("", "Notebook", 1, decimal.NewFromInt(-1)))

	require.NoError(t, f.AddItem("", "Notebook", 4, decimal.RequireFromString("45.5")))
	require.NoError(t, f.AddItem("p-2", "Pencil box", 1, decimal.NewFromInt(120)))
	require.Len(t, f.Value.Items, 2)
	assert.Contains(t, f.Value.Items[0].ProductID, TempIDPrefix)
	assert.Equal(t, "p-2", f.Value.Items[1].ProductID)
	assert.Equal(t, "302", f.ItemsTotal().String())

	assert.Equal(t, "Notebook x 4 @ 45.5; Pencil box x 1 @ 120", f.Get("items"))
	require.NoError(t, f.Set("items", "Pencil box x 2 @ 120"))
	require.Len(t, f.Value.Items, 1)
	assert.Equal(t, "p-2", f.Value.Items[0].ProductID)

	f.RemoveItem(0)
	assert.Empty(t, f.Value.Items)
}

func TestPurchaseOrderItems(t *testing.T) {
	f := NewPurchaseOrderForm(nil)
	require.NoError(t, f.Set("supplierId", "s1"))
	require.NoError(t, f.AddItem(catalog.PurchaseOrderItem{ProductID: "p1", Quantity: 3, UnitCost: decimal.NewFromInt(10)}))
	require.NoError(t, f.Set("shippingCost", "5"))
	require.Error(t, f.AddItem(catalog.PurchaseOrderItem{ProductID: "p2"}))

	prepared := f.Prepared()
	assert.Equal(t, "30", prepared.Subtotal.String())
	assert.Equal(t, "35", prepared.TotalAmount.String())
	assert.True(t, f.Validate())

	f.RemoveItem(0)
	assert.False(t, f.Validate())
	assert.Equal(t, "At least one item is required", f.Errors()["items"])
}

func TestProductKindFields(t *testing.T) {
	f := NewProductKindForm(nil)
	require.NoError(t, f.Set("key", "book"))
	require.NoError(t, f.Set("name", "Book"))
	f.UpdateField(0, func(fld *catalog.ProductKindField) {
		fld.Name = "isbn"
		fld.Label = "ISBN"
	})
	f.AddField()
	require.False(t, f.Validate())
	assert.Equal(t, []string{"field-1-label", "field-1-name"}, f.Errors().Keys())

	f.UpdateField(1, func(fld *catalog.ProductKindField) {
		fld.Name = "pages"
		fld.Label = "Pages"
		fld.Type = catalog.FieldNumber
	})
	assert.Empty(t, f.Errors())
	assert.True(t, f.Validate())
	assert.Equal(t, "isbn:ISBN:text; pages:Pages:number", f.Get("fields"))

	require.NoError(t, f.Set("fields", "grade:Grade:select:required"))
	assert.Equal(t, []catalog.ProductKindField{{Name: "grade", Label: "Grade", Type: catalog.FieldSelect, Required: true}}, f.Value.Fields)
}

func TestGiftCardPrepare(t *testing.T) {
	var got catalog.GiftCard
	f := NewGiftCardForm(nil).OnSubmit(func(ctx context.Context, g catalog.GiftCard) error {
		got = g
		return nil
	})
	require.NoError(t, f.Set("code", "GC-100"))
	require.NoError(t, f.Set("originalAmount", "500"))

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, "500", got.CurrentBalance.String())
}

func TestParseLines(t *testing.T) {
	lines, err := ParseLines("Notebook x 2 @ 45.50; Eraser;  ")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Notebook", lines[0].Ref)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "45.5", lines[0].Price.String())
	assert.Equal(t, Line{Ref: "Eraser", Quantity: 1, Price: decimal.Zero}, lines[1])

	_, err = ParseLines("Notebook x two")
	assert.Error(t, err)
	_, err = ParseLines("@ 5")
	assert.Error(t, err)
}
