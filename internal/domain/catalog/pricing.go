package catalog

import "github.com/shopspring/decimal"

// PricingRuleType classifies what a pricing rule targets
type PricingRuleType string

const (
	RuleBulkDiscount    PricingRuleType = "bulk_discount"
	RuleCustomerGroup   PricingRuleType = "customer_group"
	RuleSeasonal        PricingRuleType = "seasonal"
	RuleProductCategory PricingRuleType = "product_category"
	RuleBrand           PricingRuleType = "brand"
	RuleQuantityBreak   PricingRuleType = "quantity_break"
)

// DiscountType is how a rule's discount value is applied
type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixedAmount  DiscountType = "fixed_amount"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// PricingRule grants a discount when its conditions match
type PricingRule struct {
	ID                    string          `json:"_id,omitempty"`
	Name                  string          `json:"name"`
	Description           string          `json:"description,omitempty"`
	Type                  PricingRuleType `json:"type"`
	DiscountType          DiscountType    `json:"discountType"`
	DiscountValue         decimal.Decimal `json:"discountValue"`
	MinQuantity           int             `json:"minQuantity,omitempty"`
	MaxQuantity           int             `json:"maxQuantity,omitempty"`
	MinOrderAmount        decimal.Decimal `json:"minOrderAmount,omitzero"`
	MaxOrderAmount        decimal.Decimal `json:"maxOrderAmount,omitzero"`
	ProductIDs            []string        `json:"productIds,omitempty"`
	CategoryIDs           []string        `json:"categoryIds,omitempty"`
	BrandIDs              []string        `json:"brandIds,omitempty"`
	CustomerGroupIDs      []string        `json:"customerGroupIds,omitempty"`
	ValidFrom             string          `json:"validFrom,omitempty"`
	ValidTo               string          `json:"validTo,omitempty"`
	Priority              int             `json:"priority"`
	IsActive              bool            `json:"isActive"`
	UsageLimitPerCustomer int             `json:"usageLimitPerCustomer,omitempty"`
	TotalUsageLimit       int             `json:"totalUsageLimit,omitempty"`
	UsageCount            int             `json:"usageCount,omitempty"`
	CreatedBy             string          `json:"createdBy,omitempty"`
	Timestamps
}

func (r PricingRule) GetID() string       { return r.ID }
func (r PricingRule) DisplayName() string { return r.Name }

// DiscountRequest describes a basket for discount calculation
type DiscountRequest struct {
	ProductIDs       []string        `json:"productIds"`
	CategoryIDs      []string        `json:"categoryIds"`
	BrandIDs         []string        `json:"brandIds"`
	CustomerGroupIDs []string        `json:"customerGroupIds"`
	Quantity         int             `json:"quantity"`
	OrderAmount      decimal.Decimal `json:"orderAmount"`
}

// DiscountResult is the best rule for a basket and the discount it yields
type DiscountResult struct {
	Rule     PricingRule     `json:"rule"`
	Discount decimal.Decimal `json:"discount"`
}
