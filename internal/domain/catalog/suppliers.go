package catalog

import "github.com/shopspring/decimal"

// Supplier of purchased stock
type Supplier struct {
	ID                 string          `json:"_id,omitempty"`
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	ContactPerson      string          `json:"contactPerson,omitempty"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Website            string          `json:"website,omitempty"`
	Address            *Address        `json:"address,omitempty"`
	PaymentTerms       string          `json:"paymentTerms,omitempty"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	Currency           string          `json:"currency"`
	TaxID              string          `json:"taxId,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	IsActive           bool            `json:"isActive"`
	Rating             float64         `json:"rating,omitempty"`
	LeadTime           int             `json:"leadTime,omitempty"`
	MinimumOrderAmount decimal.Decimal `json:"minimumOrderAmount"`
	Timestamps
}

func (s Supplier) GetID() string       { return s.ID }
func (s Supplier) DisplayName() string { return s.Name }

// PurchaseOrderStatus is the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft             PurchaseOrderStatus = "draft"
	PurchaseOrderPending           PurchaseOrderStatus = "pending"
	PurchaseOrderApproved          PurchaseOrderStatus = "approved"
	PurchaseOrderOrdered           PurchaseOrderStatus = "ordered"
	PurchaseOrderPartiallyReceived PurchaseOrderStatus = "partially_received"
	PurchaseOrderReceived          PurchaseOrderStatus = "received"
	PurchaseOrderCancelled         PurchaseOrderStatus = "cancelled"
)

// PurchaseOrderItem is one line of a purchase order
type PurchaseOrderItem struct {
	ProductID            string          `json:"productId"`
	VariantID            string          `json:"variantId,omitempty"`
	Quantity             int             `json:"quantity"`
	QuantityReceived     int             `json:"quantityReceived"`
	UnitCost             decimal.Decimal `json:"unitCost"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate,omitempty"`
	Notes                string          `json:"notes,omitempty"`
}

// PurchaseOrder placed with a supplier
type PurchaseOrder struct {
	ID                   string              `json:"_id,omitempty"`
	OrderNumber          string              `json:"orderNumber,omitempty"`
	SupplierID           string              `json:"supplierId"`
	Status               PurchaseOrderStatus `json:"status"`
	Items                []PurchaseOrderItem `json:"items"`
	Subtotal             decimal.Decimal     `json:"subtotal"`
	TaxAmount            decimal.Decimal     `json:"taxAmount"`
	ShippingCost         decimal.Decimal     `json:"shippingCost"`
	TotalAmount          decimal.Decimal     `json:"totalAmount"`
	Currency             string              `json:"currency"`
	ExpectedDeliveryDate string              `json:"expectedDeliveryDate,omitempty"`
	ActualDeliveryDate   string              `json:"actualDeliveryDate,omitempty"`
	Notes                string              `json:"notes,omitempty"`
	CreatedBy            string              `json:"createdBy,omitempty"`
	ApprovedBy           string              `json:"approvedBy,omitempty"`
	ApprovedAt           string              `json:"approvedAt,omitempty"`
	OrderedAt            string              `json:"orderedAt,omitempty"`
	Timestamps
}

func (o PurchaseOrder) GetID() string { return o.ID }

func (o PurchaseOrder) DisplayName() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return o.ID
}

// Recalculate refreshes every line total and the order totals:
// line = quantity x unit cost, subtotal = sum of lines,
// total = subtotal + tax + shipping.
func (o *PurchaseOrder) Recalculate() {
	subtotal := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		item.TotalCost = item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(item.TotalCost)
	}
	o.Subtotal = subtotal
	o.TotalAmount = subtotal.Add(o.TaxAmount).Add(o.ShippingCost)
}

// IsEditable reports whether line items may still change
func (o PurchaseOrder) IsEditable() bool {
	return o.Status == "" || o.Status == PurchaseOrderDraft || o.Status == PurchaseOrderPending
}

// ReceivedItem records a partial or full receipt against an order line
type ReceivedItem struct {
	ItemIndex int `json:"itemIndex"`
	Quantity  int `json:"quantity"`
}
