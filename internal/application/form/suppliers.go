package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// DefaultCurrency is used by every money-bearing form in create mode
const DefaultCurrency = "INR"

// DefaultCountry seeds new addresses
const DefaultCountry = "India"

// NewSupplierForm creates the supplier dialog state
func NewSupplierForm(record *catalog.Supplier) *Form[catalog.Supplier] {
	f := New("supplier", record,
		func() catalog.Supplier {
			return catalog.Supplier{
				Currency: DefaultCurrency,
				IsActive: true,
				Address:  &catalog.Address{Country: DefaultCountry},
			}
		},
		WithFields(
			Text("name", "Name", func(s *catalog.Supplier) *string { return &s.Name }),
			Text("code", "Code", func(s *catalog.Supplier) *string { return &s.Code }),
			Text("contactPerson", "Contact person", func(s *catalog.Supplier) *string { return &s.ContactPerson }),
			Text("email", "Email", func(s *catalog.Supplier) *string { return &s.Email }),
			Text("phone", "Phone", func(s *catalog.Supplier) *string { return &s.Phone }),
			Text("website", "Website", func(s *catalog.Supplier) *string { return &s.Website }),
			Text("street", "Street", func(s *catalog.Supplier) *string { return &s.Address.Street }),
			Text("city", "City", func(s *catalog.Supplier) *string { return &s.Address.City }),
			Text("state", "State", func(s *catalog.Supplier) *string { return &s.Address.State }),
			Text("postalCode", "Postal code", func(s *catalog.Supplier) *string { return &s.Address.PostalCode }),
			Text("country", "Country", func(s *catalog.Supplier) *string { return &s.Address.Country }),
			Text("paymentTerms", "Payment terms", func(s *catalog.Supplier) *string { return &s.PaymentTerms }),
			Money("creditLimit", "Credit limit", func(s *catalog.Supplier) *decimal.Decimal { return &s.CreditLimit }),
			Text("currency", "Currency", func(s *catalog.Supplier) *string { return &s.Currency }),
			Text("taxId", "Tax ID", func(s *catalog.Supplier) *string { return &s.TaxID }),
			Float("rating", "Rating", func(s *catalog.Supplier) *float64 { return &s.Rating }),
			Int("leadTime", "Lead time (days)", func(s *catalog.Supplier) *int { return &s.LeadTime }),
			Money("minimumOrderAmount", "Minimum order", func(s *catalog.Supplier) *decimal.Decimal { return &s.MinimumOrderAmount }),
			Text("notes", "Notes", func(s *catalog.Supplier) *string { return &s.Notes }),
			Bool("isActive", "Active", func(s *catalog.Supplier) *bool { return &s.IsActive }),
		),
		WithRules(
			Required("name", "Name is required", func(s *catalog.Supplier) string { return s.Name }),
			Required("code", "Code is required", func(s *catalog.Supplier) string { return s.Code }),
			Email("email", "Invalid email format", func(s *catalog.Supplier) string { return s.Email }),
			Check("rating", "Rating must be between 0 and 5", func(s *catalog.Supplier) bool {
				return s.Rating >= 0 && s.Rating <= 5
			}),
			NonNegative("creditLimit", "Credit limit cannot be negative", func(s *catalog.Supplier) decimal.Decimal { return s.CreditLimit }),
		),
		WithPrepare(func(s *catalog.Supplier) {
			if s.Address != nil && s.Address.IsEmpty() {
				s.Address = nil
			}
		}),
	)
	if f.Value.Address == nil {
		f.Value.Address = &catalog.Address{}
	}
	return f
}

// PurchaseOrderForm adds line-item editing to the purchase order dialog
type PurchaseOrderForm struct {
	*Form[catalog.PurchaseOrder]
}

// NewPurchaseOrderForm creates the purchase order dialog state
func NewPurchaseOrderForm(record *catalog.PurchaseOrder) *PurchaseOrderForm {
	f := New("purchase order", record,
		func() catalog.PurchaseOrder {
			return catalog.PurchaseOrder{
				Status:   catalog.PurchaseOrderDraft,
				Currency: DefaultCurrency,
			}
		},
		WithFields(
			Text("supplierId", "Supplier ID", func(o *catalog.PurchaseOrder) *string { return &o.SupplierID }),
			orderItemsField(),
			Money("taxAmount", "Tax", func(o *catalog.PurchaseOrder) *decimal.Decimal { return &o.TaxAmount }),
			Money("shippingCost", "Shipping", func(o *catalog.PurchaseOrder) *decimal.Decimal { return &o.ShippingCost }),
			Text("currency", "Currency", func(o *catalog.PurchaseOrder) *string { return &o.Currency }),
			Text("expectedDeliveryDate", "Expected delivery", func(o *catalog.PurchaseOrder) *string { return &o.ExpectedDeliveryDate }),
			Text("notes", "Notes", func(o *catalog.PurchaseOrder) *string { return &o.Notes }),
		),
		WithRules(
			Required("supplierId", "Supplier is required", func(o *catalog.PurchaseOrder) string { return o.SupplierID }),
			MinItems("items", "At least one item is required", func(o *catalog.PurchaseOrder) int { return len(o.Items) }, 1),
			Check("status", "Only draft or pending orders can be changed", func(o *catalog.PurchaseOrder) bool { return o.IsEditable() }),
		),
		WithCheck(func(o *catalog.PurchaseOrder, errs Errors) {
			for i, item := range o.Items {
				if item.Quantity <= 0 {
					errs[fmt.Sprintf("item-%d-quantity", i)] = "Quantity must be greater than 0"
				}
				if item.UnitCost.IsNegative() {
					errs[fmt.Sprintf("item-%d-unitCost", i)] = "Unit cost cannot be negative"
				}
			}
		}),
		WithPrepare(func(o *catalog.PurchaseOrder) { o.Recalculate() }),
	)
	f.Value.Recalculate()
	return &PurchaseOrderForm{Form: f}
}

func orderItemsField() Field[catalog.PurchaseOrder] {
	return Field[catalog.PurchaseOrder]{
		Key:   "items",
		Label: "Items (product x qty @ cost; ...)",
		Get: func(o *catalog.PurchaseOrder) string {
			lines := make([]Line, len(o.Items))
			for i, item := range o.Items {
				lines[i] = Line{Ref: item.ProductID, Quantity: item.Quantity, Price: item.UnitCost}
			}
			return FormatLines(lines)
		},
		Set: func(o *catalog.PurchaseOrder, raw string) error {
			lines, err := ParseLines(raw)
			if err != nil {
				return err
			}
			items := make([]catalog.PurchaseOrderItem, 0, len(lines))
			used := make([]bool, len(o.Items))
			for _, l := range lines {
				item := catalog.PurchaseOrderItem{ProductID: l.Ref}
				if i := matchItem(o.Items, used, l.Ref); i >= 0 {
					used[i] = true
					item = o.Items[i]
				}
				item.Quantity = l.Quantity
				item.UnitCost = l.Price
				items = append(items, item)
			}
			o.Items = items
			o.Recalculate()
			return nil
		},
	}
}

// matchItem returns the first unused line for productID, or -1
func matchItem(items []catalog.PurchaseOrderItem, used []bool, productID string) int {
	for i, item := range items {
		if !used[i] && item.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem appends a line and refreshes the totals
func (f *PurchaseOrderForm) AddItem(item catalog.PurchaseOrderItem) error {
	if strings.TrimSpace(item.ProductID) == "" {
		return fmt.Errorf("product is required")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	f.Update("items", func(o *catalog.PurchaseOrder) {
		o.Items = append(o.Items, item)
		o.Recalculate()
	})
	return nil
}

// RemoveItem drops the line at index i and refreshes the totals
func (f *PurchaseOrderForm) RemoveItem(i int) {
	f.Update("items", func(o *catalog.PurchaseOrder) {
		o.Items = RemoveAt(o.Items, i)
		o.Recalculate()
	})
}
