package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const pricingRulesPath = "pricing-rules"

// ApplicableQuery narrows the rules that apply to a basket. Zero values are
// left out of the request.
type ApplicableQuery struct {
	ProductIDs       []string
	CategoryIDs      []string
	BrandIDs         []string
	CustomerGroupIDs []string
	Quantity         int
	OrderAmount      decimal.Decimal
}

func (q ApplicableQuery) values() url.Values {
	v := url.Values{}
	setList := func(key string, ids []string) {
		if len(ids) > 0 {
			v.Set(key, strings.Join(ids, ","))
		}
	}
	setList("productIds", q.ProductIDs)
	setList("categoryIds", q.CategoryIDs)
	setList("brandIds", q.BrandIDs)
	setList("customerGroupIds", q.CustomerGroupIDs)
	if q.Quantity > 0 {
		v.Set("quantity", strconv.Itoa(q.Quantity))
	}
	if !q.OrderAmount.IsZero() {
		v.Set("orderAmount", q.OrderAmount.String())
	}
	return v
}

// PricingService covers pricing rules
type PricingService struct {
	r Requester
}

// NewPricingService creates a new PricingService
func NewPricingService(r Requester) *PricingService {
	return &PricingService{r: r}
}

// List returns a page of pricing rules
func (s *PricingService) List(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.PricingRule], error) {
	return list[catalog.PricingRule](ctx, s.r, pricingRulesPath, opts)
}

// Active returns all active rules
func (s *PricingService) Active(ctx context.Context) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "active"), nil)
}

// Stats returns aggregate rule statistics
func (s *PricingService) Stats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(pricingRulesPath, "stats"), nil)
}

// ByType returns rules of a type
func (s *PricingService) ByType(ctx context.Context, ruleType catalog.PricingRuleType) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "type", string(ruleType)), nil)
}

// ByProduct returns rules targeting a product
func (s *PricingService) ByProduct(ctx context.Context, productID string) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "product", productID), nil)
}

// ByCategory returns rules targeting a category
func (s *PricingService) ByCategory(ctx context.Context, categoryID string) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "category", categoryID), nil)
}

// ByBrand returns rules targeting a brand
func (s *PricingService) ByBrand(ctx context.Context, brandID string) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "brand", brandID), nil)
}

// ByCustomerGroup returns rules targeting a customer group
func (s *PricingService) ByCustomerGroup(ctx context.Context, groupID string) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "customer-group", groupID), nil)
}

// Applicable returns the rules that match a basket
func (s *PricingService) Applicable(ctx context.Context, q ApplicableQuery) ([]catalog.PricingRule, error) {
	return get[[]catalog.PricingRule](ctx, s.r, path(pricingRulesPath, "applicable"), q.values())
}

// CalculateDiscount returns the best discount for a basket, or nil when no rule applies
func (s *PricingService) CalculateDiscount(ctx context.Context, req catalog.DiscountRequest) (*catalog.DiscountResult, error) {
	return send[*catalog.DiscountResult](ctx, s.r, http.MethodPost, path(pricingRulesPath, "calculate-discount"), req)
}

// Create creates a new pricing rule
func (s *PricingService) Create(ctx context.Context, rule catalog.PricingRule) (*catalog.PricingRule, error) {
	return send[*catalog.PricingRule](ctx, s.r, http.MethodPost, path(pricingRulesPath), rule)
}

// Update replaces a rule's editable fields
func (s *PricingService) Update(ctx context.Context, id string, rule catalog.PricingRule) (*catalog.PricingRule, error) {
	return send[*catalog.PricingRule](ctx, s.r, http.MethodPut, path(pricingRulesPath, id), rule)
}

// Validate asks the backend whether a rule is currently valid
func (s *PricingService) Validate(ctx context.Context, id string) (bool, error) {
	return get[bool](ctx, s.r, path(pricingRulesPath, id, "validate"), nil)
}

// Delete deletes a pricing rule
func (s *PricingService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, pricingRulesPath, id)
}
