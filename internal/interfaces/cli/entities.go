package cli

import (
	"context"
	"maps"
	"strconv"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/listview"
	domain "github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/interfaces/console"
)

const idWidth = 24

// registry lists every collection in help order
func registry() []entity {
	return []entity{
		authors(),
		publishers(),
		bookSeries(),
		bookSpecifications(),
		suppliers(),
		purchaseOrders(),
		warehouses(),
		inventory(),
		schoolSets(),
		uniforms(),
		giftServices(),
		giftCards(),
		pricingRules(),
		productKinds(),
	}
}

type listFunc[T any] func(ctx context.Context, q listview.Query) (*domain.Page[T], error)

// pagedList adapts a service list call to a screen source. Search terms go
// to the collection's search endpoint when it has one and to the list
// endpoint as q otherwise.
func pagedList[T any](
	list func(context.Context, catalog.ListOptions) (*domain.Page[T], error),
	search func(context.Context, string) ([]T, error),
) listFunc[T] {
	return func(ctx context.Context, q listview.Query) (*domain.Page[T], error) {
		if q.Search != "" && search != nil {
			items, err := search(ctx, q.Search)
			if err != nil {
				return nil, err
			}
			return &domain.Page[T]{Data: items, Page: 1, Limit: len(items), Total: len(items), TotalPages: 1}, nil
		}
		return list(ctx, listOptions(q))
	}
}

// pagedSearch is pagedList for collections whose search endpoint pages
func pagedSearch[T any](
	list func(context.Context, catalog.ListOptions) (*domain.Page[T], error),
	search func(context.Context, string, catalog.ListOptions) (*domain.Page[T], error),
) listFunc[T] {
	return func(ctx context.Context, q listview.Query) (*domain.Page[T], error) {
		if q.Search != "" {
			return search(ctx, q.Search, catalog.ListOptions{Page: q.Page, Limit: q.Limit, Filters: q.Filters})
		}
		return list(ctx, listOptions(q))
	}
}

func listOptions(q listview.Query) catalog.ListOptions {
	filters := maps.Clone(q.Filters)
	if q.Search != "" {
		if filters == nil {
			filters = map[string]string{}
		}
		filters["q"] = q.Search
	}
	return catalog.ListOptions{Page: q.Page, Limit: q.Limit, Filters: filters}
}

func authors() entity {
	type T = domain.Author
	return &resource[T]{
		use:      "authors",
		aliases:  []string{"author"},
		singular: "author",
		plural:   "authors",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Books.ListAuthors, s.Books.SearchAuthors),
				Stats:  s.Books.AuthorStats,
				Create: s.Books.CreateAuthor,
				Update: s.Books.UpdateAuthor,
				Delete: s.Books.DeleteAuthor,
			}
		},
		newForm: form.NewAuthorForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(a T) string { return a.ID }},
			{Title: "Name", Width: 28, Value: func(a T) string { return a.Name }},
			{Title: "Nationality", Width: 14, Value: func(a T) string { return a.Nationality }},
			{Title: "Books", Width: 6, Value: func(a T) string { return strconv.Itoa(a.BooksCount) }},
			{Title: "Active", Width: 6, Value: func(a T) string { return yesNo(a.IsActive) }},
		},
	}
}

func publishers() entity {
	type T = domain.Publisher
	return &resource[T]{
		use:      "publishers",
		aliases:  []string{"publisher"},
		singular: "publisher",
		plural:   "publishers",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Books.ListPublishers, s.Books.SearchPublishers),
				Stats:  s.Books.PublisherStats,
				Create: s.Books.CreatePublisher,
				Update: s.Books.UpdatePublisher,
				Delete: s.Books.DeletePublisher,
			}
		},
		newForm: form.NewPublisherForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(p T) string { return p.ID }},
			{Title: "Name", Width: 28, Value: func(p T) string { return p.Name }},
			{Title: "Email", Width: 24, Value: func(p T) string { return p.Email }},
			{Title: "Books", Width: 6, Value: func(p T) string { return strconv.Itoa(p.BooksCount) }},
			{Title: "Active", Width: 6, Value: func(p T) string { return yesNo(p.IsActive) }},
		},
	}
}

func bookSeries() entity {
	type T = domain.BookSeries
	return &resource[T]{
		use:      "book-series",
		aliases:  []string{"series"},
		singular: "book series",
		plural:   "book series",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Books.ListSeries, s.Books.SearchSeries),
				Stats:  s.Books.SeriesStats,
				Create: s.Books.CreateSeries,
				Update: s.Books.UpdateSeries,
				Delete: s.Books.DeleteSeries,
			}
		},
		newForm: form.NewBookSeriesForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(b T) string { return b.ID }},
			{Title: "Name", Width: 28, Value: func(b T) string { return b.Name }},
			{Title: "Genre", Width: 14, Value: func(b T) string { return b.Genre }},
			{Title: "Books", Width: 6, Value: func(b T) string { return strconv.Itoa(b.TotalBooks) }},
			{Title: "Ongoing", Width: 7, Value: func(b T) string { return yesNo(b.IsOngoing) }},
			{Title: "Active", Width: 6, Value: func(b T) string { return yesNo(b.IsActive) }},
		},
		actions: seriesActions,
	}
}

func bookSpecifications() entity {
	type T = domain.BookSpecification
	return &resource[T]{
		use:      "book-specifications",
		aliases:  []string{"specifications", "specs"},
		singular: "book specification",
		plural:   "book specifications",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedSearch(s.Specifications.List, s.Specifications.Search),
				Get:    s.Specifications.Get,
				Create: s.Specifications.Create,
				Update: s.Specifications.Update,
				Delete: s.Specifications.Delete,
			}
		},
		newForm: form.NewBookSpecificationForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(b T) string { return b.ID }},
			{Title: "ISBN", Width: 17, Value: func(b T) string { return b.DisplayName() }},
			{Title: "Product", Width: idWidth, Value: func(b T) string { return b.ProductID }},
			{Title: "Format", Width: 10, Value: func(b T) string { return string(b.Format) }},
			{Title: "Language", Width: 10, Value: func(b T) string { return b.Language }},
			{Title: "Subject", Width: 16, Value: func(b T) string { return b.Subject }},
		},
	}
}

func suppliers() entity {
	type T = domain.Supplier
	return &resource[T]{
		use:      "suppliers",
		aliases:  []string{"supplier"},
		singular: "supplier",
		plural:   "suppliers",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Suppliers.ListSuppliers, s.Suppliers.SearchSuppliers),
				Stats:  s.Suppliers.SupplierStats,
				Create: s.Suppliers.CreateSupplier,
				Update: s.Suppliers.UpdateSupplier,
				Delete: s.Suppliers.DeleteSupplier,
			}
		},
		newForm: form.NewSupplierForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(s T) string { return s.ID }},
			{Title: "Code", Width: 10, Value: func(s T) string { return s.Code }},
			{Title: "Name", Width: 28, Value: func(s T) string { return s.Name }},
			{Title: "Contact", Width: 18, Value: func(s T) string { return s.ContactPerson }},
			{Title: "Rating", Width: 6, Value: func(s T) string { return strconv.FormatFloat(s.Rating, 'f', 1, 64) }},
			{Title: "Active", Width: 6, Value: func(s T) string { return yesNo(s.IsActive) }},
		},
	}
}

func purchaseOrders() entity {
	type T = domain.PurchaseOrder
	return &resource[T]{
		use:      "purchase-orders",
		aliases:  []string{"po", "orders"},
		singular: "purchase order",
		plural:   "purchase orders",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Suppliers.ListPurchaseOrders, nil),
				Stats:  s.Suppliers.PurchaseOrderSummary,
				Create: s.Suppliers.CreatePurchaseOrder,
				Update: s.Suppliers.UpdatePurchaseOrder,
				Delete: s.Suppliers.DeletePurchaseOrder,
			}
		},
		newForm: func(record *T) *form.Form[T] { return form.NewPurchaseOrderForm(record).Form },
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(o T) string { return o.ID }},
			{Title: "Number", Width: 14, Value: func(o T) string { return o.OrderNumber }},
			{Title: "Supplier", Width: idWidth, Value: func(o T) string { return o.SupplierID }},
			{Title: "Status", Width: 18, Value: func(o T) string { return string(o.Status) }},
			{Title: "Total", Width: 14, Value: func(o T) string { return money(o.TotalAmount) + " " + o.Currency }},
			{Title: "Expected", Width: 10, Value: func(o T) string { return o.ExpectedDeliveryDate }},
		},
		actions: purchaseOrderActions,
	}
}

func warehouses() entity {
	type T = domain.Warehouse
	return &resource[T]{
		use:      "warehouses",
		aliases:  []string{"warehouse"},
		singular: "warehouse",
		plural:   "warehouses",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Inventory.ListWarehouses, nil),
				Create: s.Inventory.CreateWarehouse,
				Update: s.Inventory.UpdateWarehouse,
				Delete: s.Inventory.DeleteWarehouse,
			}
		},
		newForm: form.NewWarehouseForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(w T) string { return w.ID }},
			{Title: "Code", Width: 8, Value: func(w T) string { return w.Code }},
			{Title: "Name", Width: 24, Value: func(w T) string { return w.Name }},
			{Title: "City", Width: 14, Value: func(w T) string { return w.Address.City }},
			{Title: "Primary", Width: 7, Value: func(w T) string { return yesNo(w.IsPrimary) }},
			{Title: "Active", Width: 6, Value: func(w T) string { return yesNo(w.IsActive) }},
		},
		actions: warehouseActions,
	}
}

func inventory() entity {
	type T = domain.InventoryItem
	return &resource[T]{
		use:      "inventory",
		aliases:  []string{"stock"},
		singular: "inventory item",
		plural:   "inventory items",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:  pagedList(s.Inventory.ListInventory, nil),
				Stats: s.Inventory.InventorySummary,
			}
		},
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(i T) string { return i.ID }},
			{Title: "Product", Width: idWidth, Value: func(i T) string { return i.DisplayName() }},
			{Title: "Warehouse", Width: idWidth, Value: func(i T) string { return i.WarehouseID }},
			{Title: "Stock", Width: 6, Value: func(i T) string { return strconv.Itoa(i.CurrentStock) }},
			{Title: "Reserved", Width: 8, Value: func(i T) string { return strconv.Itoa(i.ReservedStock) }},
			{Title: "Available", Width: 9, Value: func(i T) string { return strconv.Itoa(i.AvailableStock) }},
			{Title: "Status", Width: 12, Value: func(i T) string { return string(i.Status) }},
		},
		actions: inventoryActions,
	}
}

func schoolSets() entity {
	type T = domain.SchoolSet
	return &resource[T]{
		use:      "school-sets",
		aliases:  []string{"sets"},
		singular: "school set",
		plural:   "school sets",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedSearch(s.SchoolSets.List, s.SchoolSets.Search),
				Get:    s.SchoolSets.Get,
				Create: s.SchoolSets.Create,
				Update: s.SchoolSets.Update,
				Delete: s.SchoolSets.Delete,
			}
		},
		newForm: func(record *T) *form.Form[T] { return form.NewSchoolSetForm(record).Form },
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(s T) string { return s.ID }},
			{Title: "Name", Width: 28, Value: func(s T) string { return s.Name }},
			{Title: "School", Width: 20, Value: func(s T) string { return s.SchoolName }},
			{Title: "Grade", Width: 8, Value: func(s T) string { return s.GradeLevel }},
			{Title: "Items", Width: 5, Value: func(s T) string { return strconv.Itoa(len(s.Items)) }},
			{Title: "Price", Width: 10, Value: func(s T) string { return money(s.Price) }},
			{Title: "Active", Width: 6, Value: func(s T) string { return yesNo(s.IsActive) }},
		},
	}
}

func uniforms() entity {
	type T = domain.Uniform
	return &resource[T]{
		use:      "uniforms",
		aliases:  []string{"uniform"},
		singular: "uniform",
		plural:   "uniforms",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedSearch(s.Uniforms.List, s.Uniforms.Search),
				Get:    s.Uniforms.Get,
				Create: s.Uniforms.Create,
				Update: s.Uniforms.Update,
				Delete: s.Uniforms.Delete,
			}
		},
		newForm: form.NewUniformForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(u T) string { return u.ID }},
			{Title: "Name", Width: 24, Value: func(u T) string { return u.Name }},
			{Title: "School", Width: 20, Value: func(u T) string { return u.SchoolName }},
			{Title: "Type", Width: 10, Value: func(u T) string { return u.Type }},
			{Title: "Gender", Width: 8, Value: func(u T) string { return u.Gender }},
			{Title: "Price", Width: 10, Value: func(u T) string { return money(u.Price) }},
			{Title: "Active", Width: 6, Value: func(u T) string { return yesNo(u.IsActive) }},
		},
	}
}

func giftServices() entity {
	type T = domain.GiftService
	return &resource[T]{
		use:      "gift-services",
		aliases:  []string{"gift-service"},
		singular: "gift service",
		plural:   "gift services",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Gifts.ListServices, nil),
				Create: s.Gifts.CreateService,
				Update: s.Gifts.UpdateService,
				Delete: s.Gifts.DeleteService,
			}
		},
		newForm: form.NewGiftServiceForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(g T) string { return g.ID }},
			{Title: "Name", Width: 24, Value: func(g T) string { return g.Name }},
			{Title: "Type", Width: 14, Value: func(g T) string { return string(g.Type) }},
			{Title: "Price", Width: 12, Value: func(g T) string { return money(g.Price) + " " + g.Currency }},
			{Title: "Free", Width: 5, Value: func(g T) string { return yesNo(g.IsFree) }},
			{Title: "Active", Width: 6, Value: func(g T) string { return yesNo(g.IsActive) }},
		},
		actions: giftServiceActions,
	}
}

func giftCards() entity {
	type T = domain.GiftCard
	return &resource[T]{
		use:      "gift-cards",
		aliases:  []string{"gift-card", "cards"},
		singular: "gift card",
		plural:   "gift cards",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Gifts.ListCards, nil),
				Stats:  s.Gifts.CardStats,
				Create: s.Gifts.CreateCard,
				Update: s.Gifts.UpdateCard,
				Delete: s.Gifts.DeleteCard,
			}
		},
		newForm: form.NewGiftCardForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(g T) string { return g.ID }},
			{Title: "Code", Width: 16, Value: func(g T) string { return g.Code }},
			{Title: "Balance", Width: 14, Value: func(g T) string { return money(g.CurrentBalance) + " " + g.Currency }},
			{Title: "Status", Width: 10, Value: func(g T) string { return string(g.Status) }},
			{Title: "Recipient", Width: 20, Value: func(g T) string { return g.RecipientName }},
			{Title: "Expires", Width: 10, Value: func(g T) string { return g.ExpiryDate }},
		},
		actions: giftCardActions,
	}
}

func pricingRules() entity {
	type T = domain.PricingRule
	return &resource[T]{
		use:      "pricing-rules",
		aliases:  []string{"pricing", "rules"},
		singular: "pricing rule",
		plural:   "pricing rules",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.Pricing.List, nil),
				Stats:  s.Pricing.Stats,
				Create: s.Pricing.Create,
				Update: s.Pricing.Update,
				Delete: s.Pricing.Delete,
			}
		},
		newForm: form.NewPricingRuleForm,
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(p T) string { return p.ID }},
			{Title: "Name", Width: 24, Value: func(p T) string { return p.Name }},
			{Title: "Type", Width: 14, Value: func(p T) string { return string(p.Type) }},
			{Title: "Discount", Width: 18, Value: func(p T) string {
				return p.DiscountValue.String() + " " + string(p.DiscountType)
			}},
			{Title: "Priority", Width: 8, Value: func(p T) string { return strconv.Itoa(p.Priority) }},
			{Title: "Active", Width: 6, Value: func(p T) string { return yesNo(p.IsActive) }},
		},
		actions: pricingActions,
	}
}

func productKinds() entity {
	type T = domain.ProductKind
	return &resource[T]{
		use:      "product-kinds",
		aliases:  []string{"kinds"},
		singular: "product kind",
		plural:   "product kinds",
		source: func(s *catalog.Services) listview.Source[T] {
			return listview.Source[T]{
				List:   pagedList(s.ProductKinds.List, nil),
				Create: s.ProductKinds.Create,
				Update: s.ProductKinds.Update,
				Delete: s.ProductKinds.Delete,
			}
		},
		newForm: func(record *T) *form.Form[T] { return form.NewProductKindForm(record).Form },
		columns: []console.Column[T]{
			{Title: "ID", Width: idWidth, Value: func(k T) string { return k.ID }},
			{Title: "Key", Width: 16, Value: func(k T) string { return k.Key }},
			{Title: "Name", Width: 24, Value: func(k T) string { return k.Name }},
			{Title: "Fields", Width: 6, Value: func(k T) string { return strconv.Itoa(len(k.Fields)) }},
			{Title: "Active", Width: 6, Value: func(k T) string { return yesNo(k.IsActive) }},
		},
	}
}
