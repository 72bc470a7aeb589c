package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Page[Author]
	}{
		{
			name: "paginated object",
			raw:  `{"data":[{"_id":"a1","name":"Jane","isActive":true}],"page":2,"limit":20,"total":41,"totalPages":3}`,
			want: Page[Author]{Data: []Author{{ID: "a1", Name: "Jane", IsActive: true}}, Page: 2, Limit: 20, Total: 41, TotalPages: 3},
		},
		{
			name: "bare array",
			raw:  `[{"_id":"a1","name":"Jane"},{"_id":"a2","name":"Tom"}]`,
			want: Page[Author]{Data: []Author{{ID: "a1", Name: "Jane"}, {ID: "a2", Name: "Tom"}}, Page: 1, Total: 2, TotalPages: 1},
		},
		{
			name: "nested pagination block",
			raw:  `{"items":[{"_id":"a1","name":"Jane"}],"pagination":{"page":3,"limit":10,"total":25,"pages":3}}`,
			want: Page[Author]{Data: []Author{{ID: "a1", Name: "Jane"}}, Page: 3, Limit: 10, Total: 25, TotalPages: 3},
		},
		{
			name: "total pages derived from total",
			raw:  `{"data":[],"limit":10,"total":25}`,
			want: Page[Author]{Data: []Author{}, Page: 1, Limit: 10, Total: 25, TotalPages: 3},
		},
		{
			name: "null",
			raw:  `null`,
			want: Page[Author]{Data: []Author{}, Page: 1, TotalPages: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Page[Author]
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("page mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPurchaseOrder_Recalculate(t *testing.T) {
	order := PurchaseOrder{
		Items: []PurchaseOrderItem{
			{ProductID: "p1", Quantity: 3, UnitCost: decimal.RequireFromString("12.50")},
			{ProductID: "p2", Quantity: 2, UnitCost: decimal.RequireFromString("4.25")},
		},
		TaxAmount:    decimal.RequireFromString("5.00"),
		ShippingCost: decimal.RequireFromString("10"),
	}

	order.Recalculate()

	assert.True(t, decimal.RequireFromString("37.50").Equal(order.Items[0].TotalCost))
	assert.True(t, decimal.RequireFromString("8.50").Equal(order.Items[1].TotalCost))
	assert.True(t, decimal.RequireFromString("46").Equal(order.Subtotal))
	assert.True(t, decimal.RequireFromString("61").Equal(order.TotalAmount))
}

func TestPurchaseOrder_IsEditable(t *testing.T) {
	assert.True(t, PurchaseOrder{}.IsEditable())
	assert.True(t, PurchaseOrder{Status: PurchaseOrderDraft}.IsEditable())
	assert.False(t, PurchaseOrder{Status: PurchaseOrderReceived}.IsEditable())
}

func TestMoneyIsEncodedAsNumber(t *testing.T) {
	raw, err := json.Marshal(Uniform{Name: "Blazer", Price: decimal.RequireFromString("1499.99")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":1499.99`)
	assert.NotContains(t, string(raw), "dimensions")

	var back Uniform
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Blazer","price":1499.99,"costPrice":"900"}`), &back))
	assert.True(t, decimal.RequireFromString("1499.99").Equal(back.Price))
	assert.True(t, decimal.NewFromInt(900).Equal(back.CostPrice))
}

func TestSchoolSet_ItemsTotal(t *testing.T) {
	set := SchoolSet{Items: []SetItem{
		{ProductName: "Notebook", Quantity: 5, UnitPrice: decimal.NewFromInt(40)},
		{ProductName: "Pencil box", Quantity: 1, UnitPrice: decimal.RequireFromString("99.5")},
	}}
	assert.True(t, decimal.RequireFromString("299.5").Equal(set.ItemsTotal()))
}

func TestEmptyHelpers(t *testing.T) {
	assert.True(t, Address{}.IsEmpty())
	assert.False(t, Address{City: "Pune"}.IsEmpty())
	assert.True(t, SocialMedia{}.IsEmpty())
	assert.False(t, SocialMedia{Twitter: "@jane"}.IsEmpty())
}

func TestDisplayNames(t *testing.T) {
	entities := []Entity{
		Author{Name: "Jane"},
		PurchaseOrder{ID: "po1"},
		PurchaseOrder{ID: "po1", OrderNumber: "PO-0001"},
		InventoryItem{ProductID: "p1", VariantID: "v2"},
		BookSpecification{ProductID: "p1", ISBN13: "978"},
		GiftCard{Code: "GC-1"},
	}
	want := []string{"Jane", "po1", "PO-0001", "p1/v2", "978", "GC-1"}
	for i, e := range entities {
		assert.Equal(t, want[i], e.DisplayName())
	}
}
