package form

import (
	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

var hundred = decimal.NewFromInt(100)

// NewPricingRuleForm creates the pricing rule dialog state
func NewPricingRuleForm(record *catalog.PricingRule) *Form[catalog.PricingRule] {
	type rule = catalog.PricingRule

	return New("pricing rule", record,
		func() rule {
			return rule{Type: catalog.RuleBulkDiscount, DiscountType: catalog.DiscountPercentage, IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(r *rule) *string { return &r.Name }),
			Text("description", "Description", func(r *rule) *string { return &r.Description }),
			Choice("type", "Type", func(r *rule) *catalog.PricingRuleType { return &r.Type },
				catalog.RuleBulkDiscount, catalog.RuleCustomerGroup, catalog.RuleSeasonal,
				catalog.RuleProductCategory, catalog.RuleBrand, catalog.RuleQuantityBreak),
			Choice("discountType", "Discount type", func(r *rule) *catalog.DiscountType { return &r.DiscountType },
				catalog.DiscountPercentage, catalog.DiscountFixedAmount, catalog.DiscountFreeShipping),
			Money("discountValue", "Discount", func(r *rule) *decimal.Decimal { return &r.DiscountValue }),
			Int("minQuantity", "Min quantity", func(r *rule) *int { return &r.MinQuantity }),
			Int("maxQuantity", "Max quantity", func(r *rule) *int { return &r.MaxQuantity }),
			Money("minOrderAmount", "Min order", func(r *rule) *decimal.Decimal { return &r.MinOrderAmount }),
			Money("maxOrderAmount", "Max order", func(r *rule) *decimal.Decimal { return &r.MaxOrderAmount }),
			List("productIds", "Product IDs", func(r *rule) *[]string { return &r.ProductIDs }),
			List("categoryIds", "Category IDs", func(r *rule) *[]string { return &r.CategoryIDs }),
			List("brandIds", "Brand IDs", func(r *rule) *[]string { return &r.BrandIDs }),
			List("customerGroupIds", "Customer groups", func(r *rule) *[]string { return &r.CustomerGroupIDs }),
			Text("validFrom", "Valid from", func(r *rule) *string { return &r.ValidFrom }),
			Text("validTo", "Valid to", func(r *rule) *string { return &r.ValidTo }),
			Int("priority", "Priority", func(r *rule) *int { return &r.Priority }),
			Int("usageLimitPerCustomer", "Uses per customer", func(r *rule) *int { return &r.UsageLimitPerCustomer }),
			Int("totalUsageLimit", "Total uses", func(r *rule) *int { return &r.TotalUsageLimit }),
			Bool("isActive", "Active", func(r *rule) *bool { return &r.IsActive }),
		),
		WithRules(
			Required("name", "Name is required", func(r *rule) string { return r.Name }),
			Check("discountValue", "Discount value must be greater than 0", func(r *rule) bool {
				return r.DiscountType == catalog.DiscountFreeShipping || r.DiscountValue.IsPositive()
			}),
			Check("discountValue", "Percentage cannot exceed 100", func(r *rule) bool {
				return r.DiscountType != catalog.DiscountPercentage || r.DiscountValue.LessThanOrEqual(hundred)
			}),
			Check("maxQuantity", "Max quantity cannot be below min quantity", func(r *rule) bool {
				return r.MaxQuantity == 0 || r.MaxQuantity >= r.MinQuantity
			}),
			Check("maxOrderAmount", "Max order cannot be below min order", func(r *rule) bool {
				return r.MaxOrderAmount.IsZero() || r.MaxOrderAmount.GreaterThanOrEqual(r.MinOrderAmount)
			}),
		),
	)
}
