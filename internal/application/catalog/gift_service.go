package catalog

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

const (
	giftServicesPath = "gift-services"
	giftCardsPath    = "gift-cards"
)

// GiftService covers gift services and gift cards
type GiftService struct {
	r Requester
}

// NewGiftService creates a new GiftService
func NewGiftService(r Requester) *GiftService {
	return &GiftService{r: r}
}

func orderAmountQuery(amount decimal.Decimal) url.Values {
	return url.Values{"orderAmount": {amount.String()}}
}

// ListServices returns a page of gift services
func (s *GiftService) ListServices(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.GiftService], error) {
	return list[catalog.GiftService](ctx, s.r, giftServicesPath, opts)
}

// ActiveServices returns all active gift services
func (s *GiftService) ActiveServices(ctx context.Context) ([]catalog.GiftService, error) {
	return get[[]catalog.GiftService](ctx, s.r, path(giftServicesPath, "active"), nil)
}

// AvailableServices returns the services offered for an order amount
func (s *GiftService) AvailableServices(ctx context.Context, orderAmount decimal.Decimal) ([]catalog.GiftService, error) {
	return get[[]catalog.GiftService](ctx, s.r, path(giftServicesPath, "available"), orderAmountQuery(orderAmount))
}

// FreeServices returns services that cost nothing
func (s *GiftService) FreeServices(ctx context.Context) ([]catalog.GiftService, error) {
	return get[[]catalog.GiftService](ctx, s.r, path(giftServicesPath, "free"), nil)
}

// ServicesByType returns services of a type
func (s *GiftService) ServicesByType(ctx context.Context, serviceType catalog.GiftServiceType) ([]catalog.GiftService, error) {
	return get[[]catalog.GiftService](ctx, s.r, path(giftServicesPath, "type", string(serviceType)), nil)
}

// CalculateServicePrice returns what a service costs for an order amount
func (s *GiftService) CalculateServicePrice(ctx context.Context, id string, orderAmount decimal.Decimal) (decimal.Decimal, error) {
	return get[decimal.Decimal](ctx, s.r, path(giftServicesPath, id, "price"), orderAmountQuery(orderAmount))
}

// CreateService creates a new gift service
func (s *GiftService) CreateService(ctx context.Context, g catalog.GiftService) (*catalog.GiftService, error) {
	return send[*catalog.GiftService](ctx, s.r, http.MethodPost, path(giftServicesPath), g)
}

// UpdateService replaces a gift service's editable fields
func (s *GiftService) UpdateService(ctx context.Context, id string, g catalog.GiftService) (*catalog.GiftService, error) {
	return send[*catalog.GiftService](ctx, s.r, http.MethodPut, path(giftServicesPath, id), g)
}

// DeleteService deletes a gift service
func (s *GiftService) DeleteService(ctx context.Context, id string) error {
	return remove(ctx, s.r, giftServicesPath, id)
}

// ListCards returns a page of gift cards
func (s *GiftService) ListCards(ctx context.Context, opts ListOptions) (*catalog.Page[catalog.GiftCard], error) {
	return list[catalog.GiftCard](ctx, s.r, giftCardsPath, opts)
}

// CardStats returns aggregate gift card statistics
func (s *GiftService) CardStats(ctx context.Context) (catalog.Stats, error) {
	return get[catalog.Stats](ctx, s.r, path(giftCardsPath, "stats"), nil)
}

// ActiveCards returns cards with a spendable balance
func (s *GiftService) ActiveCards(ctx context.Context) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "active"), nil)
}

// ExpiredCards returns expired cards
func (s *GiftService) ExpiredCards(ctx context.Context) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "expired"), nil)
}

// UsedCards returns fully used cards
func (s *GiftService) UsedCards(ctx context.Context) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "used"), nil)
}

// CardsByStatus returns cards in a status
func (s *GiftService) CardsByStatus(ctx context.Context, status catalog.GiftCardStatus) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "status", string(status)), nil)
}

// CardsByPurchaser returns cards bought by a customer
func (s *GiftService) CardsByPurchaser(ctx context.Context, customerID string) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "purchased-by", customerID), nil)
}

// CardsByRecipient returns cards sent to an email address
func (s *GiftService) CardsByRecipient(ctx context.Context, email string) ([]catalog.GiftCard, error) {
	return get[[]catalog.GiftCard](ctx, s.r, path(giftCardsPath, "recipient", email), nil)
}

// CardByCode fetches a card by its code
func (s *GiftService) CardByCode(ctx context.Context, code string) (*catalog.GiftCard, error) {
	return get[*catalog.GiftCard](ctx, s.r, path(giftCardsPath, "code", code), nil)
}

// ValidateCard checks whether a code can be spent
func (s *GiftService) ValidateCard(ctx context.Context, code string) (*catalog.GiftCardValidation, error) {
	return get[*catalog.GiftCardValidation](ctx, s.r, path(giftCardsPath, "code", code, "validate"), nil)
}

// GenerateCode asks the backend for a fresh unused card code
func (s *GiftService) GenerateCode(ctx context.Context) (string, error) {
	return send[string](ctx, s.r, http.MethodPost, path(giftCardsPath, "generate-code"), nil)
}

// CreateCard creates a new gift card
func (s *GiftService) CreateCard(ctx context.Context, g catalog.GiftCard) (*catalog.GiftCard, error) {
	return send[*catalog.GiftCard](ctx, s.r, http.MethodPost, path(giftCardsPath), g)
}

// UpdateCard replaces a gift card's editable fields
func (s *GiftService) UpdateCard(ctx context.Context, id string, g catalog.GiftCard) (*catalog.GiftCard, error) {
	return send[*catalog.GiftCard](ctx, s.r, http.MethodPut, path(giftCardsPath, id), g)
}

// UseCard spends part of a card's balance on an order
func (s *GiftService) UseCard(ctx context.Context, code string, use catalog.GiftCardRedemption) (*catalog.GiftCard, error) {
	return send[*catalog.GiftCard](ctx, s.r, http.MethodPut, path(giftCardsPath, "code", code, "use"), use)
}

// RefundCard returns amount to a card's balance
func (s *GiftService) RefundCard(ctx context.Context, code string, amount decimal.Decimal) (*catalog.GiftCard, error) {
	body := map[string]decimal.Decimal{"amount": amount}
	return send[*catalog.GiftCard](ctx, s.r, http.MethodPut, path(giftCardsPath, "code", code, "refund"), body)
}

// ExpireCard expires a card immediately
func (s *GiftService) ExpireCard(ctx context.Context, code string) (*catalog.GiftCard, error) {
	return send[*catalog.GiftCard](ctx, s.r, http.MethodPut, path(giftCardsPath, "code", code, "expire"), nil)
}

// DeleteCard deletes a gift card
func (s *GiftService) DeleteCard(ctx context.Context, id string) error {
	return remove(ctx, s.r, giftCardsPath, id)
}
