package catalog

import "github.com/shopspring/decimal"

// GiftServiceType classifies an add-on gift service
type GiftServiceType string

const (
	GiftWrap        GiftServiceType = "gift_wrap"
	GiftMessage     GiftServiceType = "gift_message"
	GiftBox         GiftServiceType = "gift_box"
	GiftCardService GiftServiceType = "gift_card"
	Personalization GiftServiceType = "personalization"
)

// GiftService is an add-on offered at checkout
type GiftService struct {
	ID            string          `json:"_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Type          GiftServiceType `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	IsFree        bool            `json:"isFree"`
	FreeThreshold decimal.Decimal `json:"freeThreshold,omitzero"`
	Options       []string        `json:"options,omitempty"`
	MaxCharacters int             `json:"maxCharacters,omitempty"`
	IsActive      bool            `json:"isActive"`
	SortOrder     int             `json:"sortOrder"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Timestamps
}

func (g GiftService) GetID() string       { return g.ID }
func (g GiftService) DisplayName() string { return g.Name }

// GiftCardStatus is the lifecycle state of a gift card
type GiftCardStatus string

const (
	GiftCardActive    GiftCardStatus = "active"
	GiftCardUsed      GiftCardStatus = "used"
	GiftCardExpired   GiftCardStatus = "expired"
	GiftCardCancelled GiftCardStatus = "cancelled"
)

// GiftCard is a stored-value card identified by its code
type GiftCard struct {
	ID              string          `json:"_id,omitempty"`
	Code            string          `json:"code"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	Currency        string          `json:"currency"`
	Status          GiftCardStatus  `json:"status"`
	PurchasedBy     string          `json:"purchasedBy,omitempty"`
	RecipientEmail  string          `json:"recipientEmail,omitempty"`
	RecipientName   string          `json:"recipientName,omitempty"`
	GiftMessage     string          `json:"giftMessage,omitempty"`
	ExpiryDate      string          `json:"expiryDate,omitempty"`
	UsedBy          string          `json:"usedBy,omitempty"`
	UsedAt          string          `json:"usedAt,omitempty"`
	UsedInOrder     string          `json:"usedInOrder,omitempty"`
	PurchaseOrderID string          `json:"purchaseOrderId,omitempty"`
	IsDigital       bool            `json:"isDigital"`
	DeliveryMethod  string          `json:"deliveryMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Timestamps
}

func (g GiftCard) GetID() string       { return g.ID }
func (g GiftCard) DisplayName() string { return g.Code }

// GiftCardValidation is the result of checking a code
type GiftCardValidation struct {
	Valid   bool            `json:"valid"`
	Balance decimal.Decimal `json:"balance"`
	Message string          `json:"message,omitempty"`
}

// GiftCardRedemption spends part of a card's balance on an order
type GiftCardRedemption struct {
	UsedBy  string          `json:"usedBy"`
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
}
