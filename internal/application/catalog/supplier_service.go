package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const (
	suppliersPath      = "suppliers"
	purchaseOrdersPath = "purchase-orders"
)

// SupplierService covers suppliers and purchase orders
type SupplierService struct {
	r Requester
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(r Requester) *SupplierService {
	return &SupplierService{r: r}
}

// ListSuppliers returns a page of suppliers
func (s *SupplierService) ListSuppliers(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.Supplier], error) {
	return list[catalog.Supplier](ctx, s.r, suppliersPath, opts)
}

// ActiveSuppliers returns all active suppliers
func (s *SupplierService) ActiveSuppliers(ctx context.Context) ([]catalog.Supplier, error) {
	return get[[]catalog.Supplier](ctx, s.r, path(suppliersPath, "active"), nil)
}

// SupplierStats returns aggregate supplier statistics
func (s *SupplierService) SupplierStats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(suppliersPath, "stats"), nil)
}

// SearchSuppliers finds suppliers matching term
func (s *SupplierService) SearchSuppliers(ctx context.Context, term string) ([]catalog.Supplier, error) {
	return search[catalog.Supplier](ctx, s.r, suppliersPath, term)
}

// SuppliersByRating returns suppliers rated at least minRating
func (s *SupplierService) SuppliersByRating(ctx context.Context, minRating float64) ([]catalog.Supplier, error) {
	rating := strconv.FormatFloat(minRating, 'f', -1, 64)
	return get[[]catalog.Supplier](ctx, s.r, path(suppliersPath, "rating", rating), nil)
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, sup catalog.Supplier) (*catalog.Supplier, error) {
	return send[*catalog.Supplier](ctx, s.r, http.MethodPost, path(suppliersPath), sup)
}

// UpdateSupplier replaces a supplier's editable fields
func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, sup catalog.Supplier) (*catalog.Supplier, error) {
	return send[*catalog.Supplier](ctx, s.r, http.MethodPut, path(suppliersPath, id), sup)
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	return remove(ctx, s.r, suppliersPath, id)
}

// ListPurchaseOrders returns a page of purchase orders
func (s *SupplierService) ListPurchaseOrders(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.PurchaseOrder], error) {
	return list[catalog.PurchaseOrder](ctx, s.r, purchaseOrdersPath, opts)
}

// PurchaseOrderSummary returns order counts and totals
func (s *SupplierService) PurchaseOrderSummary(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(purchaseOrdersPath, "summary"), nil)
}

// PendingOrders returns orders awaiting approval
func (s *SupplierService) PendingOrders(ctx context.Context) ([]catalog.PurchaseOrder, error) {
	return get[[]catalog.PurchaseOrder](ctx, s.r, path(purchaseOrdersPath, "pending"), nil)
}

// OverdueOrders returns orders past their expected delivery date
func (s *SupplierService) OverdueOrders(ctx context.Context) ([]catalog.PurchaseOrder, error) {
	return get[[]catalog.PurchaseOrder](ctx, s.r, path(purchaseOrdersPath, "overdue"), nil)
}

// OrdersBySupplier returns every order placed with a supplier
func (s *SupplierService) OrdersBySupplier(ctx context.Context, supplierID string) ([]catalog.PurchaseOrder, error) {
	return get[[]catalog.PurchaseOrder](ctx, s.r, path(purchaseOrdersPath, "supplier", supplierID), nil)
}

// OrdersByStatus returns orders in a status
func (s *SupplierService) OrdersByStatus(ctx context.Context, status catalog.PurchaseOrderStatus) ([]catalog.PurchaseOrder, error) {
	return get[[]catalog.PurchaseOrder](ctx, s.r, path(purchaseOrdersPath, "status", string(status)), nil)
}

// CreatePurchaseOrder creates a new purchase order
func (s *SupplierService) CreatePurchaseOrder(ctx context.Context, o catalog.PurchaseOrder) (*catalog.PurchaseOrder, error) {
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPost, path(purchaseOrdersPath), o)
}

// UpdatePurchaseOrder replaces a purchase order's editable fields
func (s *SupplierService) UpdatePurchaseOrder(ctx context.Context, id string, o catalog.PurchaseOrder) (*catalog.PurchaseOrder, error) {
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPut, path(purchaseOrdersPath, id), o)
}

// ApproveOrder approves an order on behalf of approvedBy
func (s *SupplierService) ApproveOrder(ctx context.Context, id, approvedBy string) (*catalog.PurchaseOrder, error) {
	body := map[string]string{"approvedBy": approvedBy}
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPut, path(purchaseOrdersPath, id, "approve"), body)
}

// MarkAsOrdered records that the order was sent to the supplier
func (s *SupplierService) MarkAsOrdered(ctx context.Context, id string) (*catalog.PurchaseOrder, error) {
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPut, path(purchaseOrdersPath, id, "order"), nil)
}

// ReceiveOrder books received quantities against order lines
func (s *SupplierService) ReceiveOrder(ctx context.Context, id string, received []catalog.ReceivedItem) (*catalog.PurchaseOrder, error) {
	body := map[string][]catalog.ReceivedItem{"receivedItems": received}
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPut, path(purchaseOrdersPath, id, "receive"), body)
}

// CancelOrder cancels an order. reason may be empty.
func (s *SupplierService) CancelOrder(ctx context.Context, id, reason string) (*catalog.PurchaseOrder, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	return send[*catalog.PurchaseOrder](ctx, s.r, http.MethodPut, path(purchaseOrdersPath, id, "cancel"), body)
}

// DeletePurchaseOrder deletes a purchase order
func (s *SupplierService) DeletePurchaseOrder(ctx context.Context, id string) error {
	return remove(ctx, s.r, purchaseOrdersPath, id)
}
