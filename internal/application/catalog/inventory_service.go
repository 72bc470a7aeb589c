package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const (
	inventoryPath  = "inventory"
	warehousesPath = "warehouses"
)

// InventoryService covers inventory records and warehouses
type InventoryService struct {
	r Requester
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(r Requester) *InventoryService {
	return &InventoryService{r: r}
}

// ListInventory returns a page of inventory records
func (s *InventoryService) ListInventory(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.InventoryItem], error) {
	return list[catalog.InventoryItem](ctx, s.r, inventoryPath, opts)
}

// InventorySummary returns stock totals across warehouses
func (s *InventoryService) InventorySummary(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(inventoryPath, "summary"), nil)
}

// LowStockItems returns records at or below threshold. threshold <= 0 uses 10.
func (s *InventoryService) LowStockItems(ctx context.Context, threshold int) ([]catalog.InventoryItem, error) {
	if threshold <= 0 {
		threshold = 10
	}
	q := url.Values{"threshold": {strconv.Itoa(threshold)}}
	return get[[]catalog.InventoryItem](ctx, s.r, path(inventoryPath, "low-stock"), q)
}

// InventoryByProduct returns the stock records of a product
func (s *InventoryService) InventoryByProduct(ctx context.Context, productID string) ([]catalog.InventoryItem, error) {
	return get[[]catalog.InventoryItem](ctx, s.r, path(inventoryPath, "product", productID), nil)
}

// InventoryByWarehouse returns the stock records held in a warehouse
func (s *InventoryService) InventoryByWarehouse(ctx context.Context, warehouseID string) ([]catalog.InventoryItem, error) {
	return get[[]catalog.InventoryItem](ctx, s.r, path(inventoryPath, "warehouse", warehouseID), nil)
}

// UpdateStock adds to or subtracts from a record's current stock
func (s *InventoryService) UpdateStock(ctx context.Context, id string, adj catalog.StockAdjustment) (*catalog.InventoryItem, error) {
	return send[*catalog.InventoryItem](ctx, s.r, http.MethodPost, path(inventoryPath, id, "stock"), adj)
}

// ReserveStock moves quantity from available to reserved
func (s *InventoryService) ReserveStock(ctx context.Context, id string, quantity int) (*catalog.InventoryItem, error) {
	body := map[string]int{"quantity": quantity}
	return send[*catalog.InventoryItem](ctx, s.r, http.MethodPost, path(inventoryPath, id, "reserve"), body)
}

// ReleaseReservedStock moves quantity from reserved back to available
func (s *InventoryService) ReleaseReservedStock(ctx context.Context, id string, quantity int) (*catalog.InventoryItem, error) {
	body := map[string]int{"quantity": quantity}
	return send[*catalog.InventoryItem](ctx, s.r, http.MethodPost, path(inventoryPath, id, "release"), body)
}

// ListWarehouses returns a page of warehouses
func (s *InventoryService) ListWarehouses(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.Warehouse], error) {
	return list[catalog.Warehouse](ctx, s.r, warehousesPath, opts)
}

// ActiveWarehouses returns all active warehouses
func (s *InventoryService) ActiveWarehouses(ctx context.Context) ([]catalog.Warehouse, error) {
	return get[[]catalog.Warehouse](ctx, s.r, path(warehousesPath, "active"), nil)
}

// PrimaryWarehouse returns the primary warehouse
func (s *InventoryService) PrimaryWarehouse(ctx context.Context) (*catalog.Warehouse, error) {
	return get[*catalog.Warehouse](ctx, s.r, path(warehousesPath, "primary"), nil)
}

// CreateWarehouse creates a new warehouse
func (s *InventoryService) CreateWarehouse(ctx context.Context, w catalog.Warehouse) (*catalog.Warehouse, error) {
	return send[*catalog.Warehouse](ctx, s.r, http.MethodPost, path(warehousesPath), w)
}

// UpdateWarehouse replaces a warehouse's editable fields
func (s *InventoryService) UpdateWarehouse(ctx context.Context, id string, w catalog.Warehouse) (*catalog.Warehouse, error) {
	return send[*catalog.Warehouse](ctx, s.r, http.MethodPut, path(warehousesPath, id), w)
}

// DeleteWarehouse deletes a warehouse
func (s *InventoryService) DeleteWarehouse(ctx context.Context, id string) error {
	return remove(ctx, s.r, warehousesPath, id)
}
