package console

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

func inputIndex(t *testing.T, keys []string, key string) int {
	t.Helper()
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	t.Fatalf("no input %q", key)
	return -1
}

func TestFormModel_ProductKindEditKeepsFieldDetails(t *testing.T) {
	rec := catalog.ProductKind{
		ID:       "k1",
		Key:      "book",
		Name:     "Book",
		IsActive: true,
		Fields: []catalog.ProductKindField{
			{Name: "cover", Label: "Cover", Type: catalog.FieldSelect, Options: []string{"hard", "soft"}, Placeholder: "pick"},
			{Name: "pages", Label: "Pages", Type: catalog.FieldNumber},
		},
	}
	m := newFormModel(form.NewProductKindForm(&rec).Form, DefaultStyles())

	require.True(t, m.apply())
	assert.Equal(t, rec.Fields, m.form.Prepared().Fields)

	i := inputIndex(t, m.keys, "fields")
	m.inputs[i].SetValue("cover:Cover type:select:required; pages:Pages:number")
	require.True(t, m.apply())

	got := m.form.Prepared().Fields
	require.Len(t, got, 2)
	assert.Equal(t, "Cover type", got[0].Label)
	assert.True(t, got[0].Required)
	assert.Equal(t, []string{"hard", "soft"}, got[0].Options)
	assert.Equal(t, "pick", got[0].Placeholder)
}

func TestFormModel_PurchaseOrderEditKeepsLineDetails(t *testing.T) {
	rec := catalog.PurchaseOrder{
		ID:         "po1",
		SupplierID: "s1",
		Status:     catalog.PurchaseOrderPending,
		Currency:   "INR",
		Items: []catalog.PurchaseOrderItem{{
			ProductID:            "p1",
			VariantID:            "v9",
			Quantity:             5,
			QuantityReceived:     2,
			UnitCost:             decimal.NewFromInt(10),
			ExpectedDeliveryDate: "2026-11-01",
			Notes:                "fragile",
		}},
	}
	m := newFormModel(form.NewPurchaseOrderForm(&rec).Form, DefaultStyles())

	require.True(t, m.apply())
	item := m.form.Prepared().Items[0]
	assert.Equal(t, "v9", item.VariantID)
	assert.Equal(t, 2, item.QuantityReceived)
	assert.Equal(t, "2026-11-01", item.ExpectedDeliveryDate)
	assert.Equal(t, "fragile", item.Notes)

	i := inputIndex(t, m.keys, "items")
	m.inputs[i].SetValue("p1 x 6 @ 10; p2 x 1 @ 3")
	require.True(t, m.apply())

	items := m.form.Prepared().Items
	require.Len(t, items, 2)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, "v9", items[0].VariantID)
	assert.Equal(t, 2, items[0].QuantityReceived)
	assert.Equal(t, "fragile", items[0].Notes)
	assert.True(t, decimal.NewFromInt(60).Equal(items[0].TotalCost))
	assert.Equal(t, "p2", items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Empty(t, items[1].VariantID)
	assert.True(t, decimal.NewFromInt(3).Equal(items[1].TotalCost))
}

func TestFormModel_ShowsLineAndRecordErrors(t *testing.T) {
	kind := catalog.ProductKind{
		ID:     "k1",
		Key:    "book",
		Name:   "Book",
		Fields: []catalog.ProductKindField{{Name: "cover", Type: catalog.FieldText}},
	}
	m := newFormModel(form.NewProductKindForm(&kind).Form, DefaultStyles())
	require.True(t, m.apply())
	m.finish(m.form.Submit(context.Background()))

	assert.Equal(t, "Label required", m.errs["field-0-label"])
	assert.Contains(t, m.View(), "#1: Label required")

	order := catalog.PurchaseOrder{
		ID:         "po1",
		SupplierID: "s1",
		Status:     catalog.PurchaseOrderReceived,
		Items:      []catalog.PurchaseOrderItem{{ProductID: "p1", Quantity: 1}},
	}
	po := newFormModel(form.NewPurchaseOrderForm(&order).Form, DefaultStyles())
	i := inputIndex(t, po.keys, "items")
	po.inputs[i].SetValue("p1 x 0 @ 4")
	require.True(t, po.apply())
	po.finish(po.form.Submit(context.Background()))

	view := po.View()
	assert.Contains(t, view, "#1: Quantity must be greater than 0")
	assert.Contains(t, view, "Only draft or pending orders can be changed")
}
