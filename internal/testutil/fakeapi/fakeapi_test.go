package fakeapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/catalog"
	domain "github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
)

func newServices(t *testing.T, api *API) *catalog.Services {
	t.Helper()
	client, err := httpclient.New(httpclient.Options{BaseURL: api.Start(t)})
	require.NoError(t, err)
	return catalog.NewServices(client)
}

func TestAPI_CRUD(t *testing.T) {
	api := New()
	svc := newServices(t, api)
	ctx := context.Background()

	created, err := svc.Books.CreateAuthor(ctx, domain.Author{Name: "Jane Austen", Slug: "jane-austen"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	page, err := svc.Books.ListAuthors(ctx, catalog.ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.TotalPages)

	updated, err := svc.Books.UpdateAuthor(ctx, created.ID, domain.Author{Name: "J. Austen"})
	require.NoError(t, err)
	assert.Equal(t, "J. Austen", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, svc.Books.DeleteAuthor(ctx, created.ID))
	assert.Empty(t, api.Docs("authors"))

	err = svc.Books.DeleteAuthor(ctx, created.ID)
	assert.True(t, httpclient.IsNotFound(err))
}

func TestAPI_Pagination(t *testing.T) {
	api := New()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		api.Seed("warehouses", Doc{"name": name})
	}
	svc := newServices(t, api)

	page, err := svc.Inventory.ListWarehouses(context.Background(), catalog.ListOptions{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "e", page.Data[0].Name)
}

func TestAPI_FiltersAndSearch(t *testing.T) {
	api := New()
	api.Seed("suppliers",
		Doc{"name": "Acme Books", "code": "ACME", "isActive": true},
		Doc{"name": "Paper Co", "code": "PAP", "isActive": false},
	)
	svc := newServices(t, api)
	ctx := context.Background()

	found, err := svc.Suppliers.SearchSuppliers(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ACME", found[0].Code)

	active, err := svc.Suppliers.ActiveSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	page, err := svc.Suppliers.ListSuppliers(ctx, catalog.ListOptions{Filters: map[string]string{"code": "PAP"}})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Paper Co", page.Data[0].Name)

	stats, err := svc.Suppliers.SupplierStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats["total"])
}

func TestAPI_FailOnce(t *testing.T) {
	api := New()
	svc := newServices(t, api)
	ctx := context.Background()

	api.Fail(http.MethodGet, "authors", http.StatusInternalServerError, "database offline")

	_, err := svc.Books.ListAuthors(ctx, catalog.ListOptions{})
	require.Error(t, err)
	assert.Equal(t, "database offline", httpclient.MessageOf(err))

	_, err = svc.Books.ListAuthors(ctx, catalog.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, api.Calls(http.MethodGet, "authors"))
}

func TestAPI_DuplicateCode(t *testing.T) {
	api := New()
	api.Seed("warehouses", Doc{"name": "Main", "code": "WH1"})
	svc := newServices(t, api)

	_, err := svc.Inventory.CreateWarehouse(context.Background(), domain.Warehouse{Name: "Other", Code: "WH1"})
	require.Error(t, err)
	assert.Equal(t, "Code WH1 already exists", httpclient.MessageOf(err))
}

func TestAPI_ProductKindsShape(t *testing.T) {
	api := New()
	svc := newServices(t, api)
	ctx := context.Background()

	kind, err := svc.ProductKinds.Create(ctx, domain.ProductKind{Key: "toy", Name: "Toy"})
	require.NoError(t, err)
	assert.Equal(t, "toy", kind.Key)

	page, err := svc.ProductKinds.List(ctx, catalog.ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAPI_Actions(t *testing.T) {
	api := New()
	api.Seed("purchase-orders", Doc{"_id": "po1", "orderNumber": "PO-1", "status": "pending"})
	api.Seed("gift-cards", Doc{"_id": "gc1", "code": "GC-1", "status": "active", "currentBalance": 25})
	svc := newServices(t, api)
	ctx := context.Background()

	po, err := svc.Suppliers.ApproveOrder(ctx, "po1", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseOrderStatus("approved"), po.Status)

	v, err := svc.Gifts.ValidateCard(ctx, "GC-1")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "25", v.Balance.String())

	card, err := svc.Gifts.ExpireCard(ctx, "GC-1")
	require.NoError(t, err)
	assert.Equal(t, domain.GiftCardStatus("expired"), card.Status)

	byCode, err := svc.Gifts.CardByCode(ctx, "GC-1")
	require.NoError(t, err)
	assert.Equal(t, "gc1", byCode.ID)
}
