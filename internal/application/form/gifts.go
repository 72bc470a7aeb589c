package form

import (
	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// NewGiftServiceForm creates the gift service dialog state
func NewGiftServiceForm(record *catalog.GiftService) *Form[catalog.GiftService] {
	type service = catalog.GiftService

	return New("gift service", record,
		func() service {
			return service{Type: catalog.GiftWrap, Currency: DefaultCurrency, IsActive: true}
		},
		WithFields(
			Text("name", "Name", func(g *service) *string { return &g.Name }),
			Text("description", "Description", func(g *service) *string { return &g.Description }),
			Choice("type", "Type", func(g *service) *catalog.GiftServiceType { return &g.Type },
				catalog.GiftWrap, catalog.GiftMessage, catalog.GiftBox, catalog.GiftCardService, catalog.Personalization),
			Money("price", "Price", func(g *service) *decimal.Decimal { return &g.Price }),
			Text("currency", "Currency", func(g *service) *string { return &g.Currency }),
			Bool("isFree", "Free", func(g *service) *bool { return &g.IsFree }),
			Money("freeThreshold", "Free above", func(g *service) *decimal.Decimal { return &g.FreeThreshold }),
			List("options", "Options", func(g *service) *[]string { return &g.Options }),
			Int("maxCharacters", "Max characters", func(g *service) *int { return &g.MaxCharacters }),
			Int("sortOrder", "Sort order", func(g *service) *int { return &g.SortOrder }),
			Text("imageUrl", "Image URL", func(g *service) *string { return &g.ImageURL }),
			Bool("isActive", "Active", func(g *service) *bool { return &g.IsActive }),
		),
		WithRules(
			Required("name", "Name is required", func(g *service) string { return g.Name }),
			Required("type", "Type is required", func(g *service) string { return string(g.Type) }),
			NonNegative("price", "Price cannot be negative", func(g *service) decimal.Decimal { return g.Price }),
		),
		WithPrepare(func(g *service) {
			if g.IsFree {
				g.Price = decimal.Zero
			}
		}),
	)
}

// NewGiftCardForm creates the gift card dialog state
func NewGiftCardForm(record *catalog.GiftCard) *Form[catalog.GiftCard] {
	type card = catalog.GiftCard
	creating := record == nil

	return New("gift card", record,
		func() card {
			return card{Status: catalog.GiftCardActive, Currency: DefaultCurrency, IsDigital: true}
		},
		WithFields(
			Text("code", "Code", func(g *card) *string { return &g.Code }),
			Money("originalAmount", "Amount", func(g *card) *decimal.Decimal { return &g.OriginalAmount }),
			Money("currentBalance", "Balance", func(g *card) *decimal.Decimal { return &g.CurrentBalance }),
			Text("currency", "Currency", func(g *card) *string { return &g.Currency }),
			Choice("status", "Status", func(g *card) *catalog.GiftCardStatus { return &g.Status },
				catalog.GiftCardActive, catalog.GiftCardUsed, catalog.GiftCardExpired, catalog.GiftCardCancelled),
			Text("purchasedBy", "Purchased by", func(g *card) *string { return &g.PurchasedBy }),
			Text("recipientName", "Recipient", func(g *card) *string { return &g.RecipientName }),
			Text("recipientEmail", "Recipient email", func(g *card) *string { return &g.RecipientEmail }),
			Text("giftMessage", "Message", func(g *card) *string { return &g.GiftMessage }),
			Text("expiryDate", "Expires", func(g *card) *string { return &g.ExpiryDate }),
			Bool("isDigital", "Digital", func(g *card) *bool { return &g.IsDigital }),
			Text("deliveryMethod", "Delivery", func(g *card) *string { return &g.DeliveryMethod }),
			Text("notes", "Notes", func(g *card) *string { return &g.Notes }),
		),
		WithRules(
			Required("code", "Code is required", func(g *card) string { return g.Code }),
			Positive("originalAmount", "Amount must be greater than 0", func(g *card) decimal.Decimal { return g.OriginalAmount }),
			Email("recipientEmail", "Invalid email format", func(g *card) string { return g.RecipientEmail }),
			Check("currentBalance", "Balance cannot exceed the original amount", func(g *card) bool {
				return !g.CurrentBalance.GreaterThan(g.OriginalAmount)
			}),
		),
		WithPrepare(func(g *card) {
			if creating && g.CurrentBalance.IsZero() {
				g.CurrentBalance = g.OriginalAmount
			}
		}),
	)
}
