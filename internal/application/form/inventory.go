package form

import (
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// NewWarehouseForm creates the warehouse dialog state
func NewWarehouseForm(record *catalog.Warehouse) *Form[catalog.Warehouse] {
	return New("warehouse", record,
		func() catalog.Warehouse {
			return catalog.Warehouse{
				Address:  catalog.Address{Country: DefaultCountry},
				IsActive: true,
			}
		},
		WithFields(
			Text("name", "Name", func(w *catalog.Warehouse) *string { return &w.Name }),
			Text("code", "Code", func(w *catalog.Warehouse) *string { return &w.Code }),
			Text("description", "Description", func(w *catalog.Warehouse) *string { return &w.Description }),
			Text("street", "Street", func(w *catalog.Warehouse) *string { return &w.Address.Street }),
			Text("city", "City", func(w *catalog.Warehouse) *string { return &w.Address.City }),
			Text("state", "State", func(w *catalog.Warehouse) *string { return &w.Address.State }),
			Text("postalCode", "Postal code", func(w *catalog.Warehouse) *string { return &w.Address.PostalCode }),
			Text("country", "Country", func(w *catalog.Warehouse) *string { return &w.Address.Country }),
			Text("phone", "Phone", func(w *catalog.Warehouse) *string { return &w.Contact.Phone }),
			Text("email", "Email", func(w *catalog.Warehouse) *string { return &w.Contact.Email }),
			Text("manager", "Manager", func(w *catalog.Warehouse) *string { return &w.Contact.Manager }),
			Int("capacity", "Capacity", func(w *catalog.Warehouse) *int { return &w.Capacity }),
			Bool("isPrimary", "Primary", func(w *catalog.Warehouse) *bool { return &w.IsPrimary }),
			Bool("isActive", "Active", func(w *catalog.Warehouse) *bool { return &w.IsActive }),
		),
		WithRules(
			Required("name", "Name is required", func(w *catalog.Warehouse) string { return w.Name }),
			Required("code", "Code is required", func(w *catalog.Warehouse) string { return w.Code }),
			Required("street", "Street address is required", func(w *catalog.Warehouse) string { return w.Address.Street }),
			Required("city", "City is required", func(w *catalog.Warehouse) string { return w.Address.City }),
			Email("email", "Invalid email format", func(w *catalog.Warehouse) string { return w.Contact.Email }),
			MinInt("capacity", "Capacity cannot be negative", func(w *catalog.Warehouse) int { return w.Capacity }, 0),
		),
	)
}

// NewStockAdjustmentForm creates the stock adjustment dialog state. It always
// starts in create mode since adjustments are never edited.
func NewStockAdjustmentForm() *Form[catalog.StockAdjustment] {
	return New[catalog.StockAdjustment]("stock adjustment", nil,
		func() catalog.StockAdjustment {
			return catalog.StockAdjustment{Operation: catalog.StockAdd, Quantity: 1}
		},
		WithFields(
			Choice("operation", "Operation", func(a *catalog.StockAdjustment) *catalog.StockOperation { return &a.Operation },
				catalog.StockAdd, catalog.StockSubtract),
			Int("quantity", "Quantity", func(a *catalog.StockAdjustment) *int { return &a.Quantity }),
			Text("referenceType", "Reference type", func(a *catalog.StockAdjustment) *string { return &a.ReferenceType }),
			Text("referenceId", "Reference ID", func(a *catalog.StockAdjustment) *string { return &a.ReferenceID }),
			Text("notes", "Notes", func(a *catalog.StockAdjustment) *string { return &a.Notes }),
		),
		WithRules(
			OneOf("operation", "Operation must be add or subtract",
				func(a *catalog.StockAdjustment) string { return string(a.Operation) },
				string(catalog.StockAdd), string(catalog.StockSubtract)),
			MinInt("quantity", "Quantity must be greater than 0", func(a *catalog.StockAdjustment) int { return a.Quantity }, 1),
		),
	)
}
