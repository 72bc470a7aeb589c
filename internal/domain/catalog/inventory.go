package catalog

import "github.com/shopspring/decimal"

// WarehouseContact is the on-site contact of a warehouse
type WarehouseContact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Manager string `json:"manager,omitempty"`
}

// WarehouseStatus is the operational state of a warehouse
type WarehouseStatus string

const (
	WarehouseActive      WarehouseStatus = "active"
	WarehouseInactive    WarehouseStatus = "inactive"
	WarehouseMaintenance WarehouseStatus = "maintenance"
)

// Warehouse holds stock
type Warehouse struct {
	ID             string           `json:"_id,omitempty"`
	Name           string           `json:"name"`
	Code           string           `json:"code"`
	Description    string           `json:"description,omitempty"`
	Address        Address          `json:"address"`
	Contact        WarehouseContact `json:"contact"`
	Capacity       int              `json:"capacity,omitempty"`
	IsActive       bool             `json:"isActive"`
	IsPrimary      bool             `json:"isPrimary"`
	Status         WarehouseStatus  `json:"status,omitempty"`
	Utilization    float64          `json:"utilization,omitempty"`
	OperatingHours map[string]any   `json:"operatingHours,omitempty"`
	Timestamps
}

func (w Warehouse) GetID() string       { return w.ID }
func (w Warehouse) DisplayName() string { return w.Name }

// StockStatus classifies an inventory record's stock level
type StockStatus string

const (
	StockInStock      StockStatus = "in_stock"
	StockLow          StockStatus = "low_stock"
	StockOut          StockStatus = "out_of_stock"
	StockDiscontinued StockStatus = "discontinued"
)

// InventoryItem is the stock of one product (variant) in one warehouse
type InventoryItem struct {
	ID              string           `json:"_id,omitempty"`
	ProductID       string           `json:"productId"`
	VariantID       string           `json:"variantId,omitempty"`
	WarehouseID     string           `json:"warehouseId"`
	CurrentStock    int              `json:"currentStock"`
	ReservedStock   int              `json:"reservedStock"`
	AvailableStock  int              `json:"availableStock"`
	ReorderPoint    int              `json:"reorderPoint"`
	ReorderQuantity int              `json:"reorderQuantity"`
	MaxStockLevel   int              `json:"maxStockLevel,omitempty"`
	CostPrice       *decimal.Decimal `json:"costPrice,omitempty"`
	Status          StockStatus      `json:"status"`
	LastRestockedAt string           `json:"lastRestockedAt,omitempty"`
	LastSoldAt      string           `json:"lastSoldAt,omitempty"`
	Location        string           `json:"location,omitempty"`
	Barcode         string           `json:"barcode,omitempty"`
	Timestamps
}

func (i InventoryItem) GetID() string { return i.ID }

func (i InventoryItem) DisplayName() string {
	if i.VariantID != "" {
		return i.ProductID + "/" + i.VariantID
	}
	return i.ProductID
}

// NeedsReorder reports whether available stock is at or below the reorder point
func (i InventoryItem) NeedsReorder() bool {
	return i.AvailableStock <= i.ReorderPoint
}

// StockOperation is the direction of a stock adjustment
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

// StockAdjustment changes an inventory record's current stock
type StockAdjustment struct {
	Quantity      int            `json:"quantity"`
	Operation     StockOperation `json:"operation"`
	ReferenceID   string         `json:"referenceId,omitempty"`
	ReferenceType string         `json:"referenceType,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	UserID        string         `json:"userId,omitempty"`
}
