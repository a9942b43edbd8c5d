package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestView is the full read model of a request. Public projections must go through Redacted.
type RequestView struct {
	ID                     uuid.UUID        `json:"id"`
	BuyerID                *uuid.UUID       `json:"buyer_id,omitempty"`
	BuyerEmail             string           `json:"buyer_email"`
	ProductLink            string           `json:"product_link"`
	ProductName            *string          `json:"product_name"`
	CheckoutPrice          *decimal.Decimal `json:"checkout_price"`
	Notes                  *string          `json:"notes"`
	DeliveryAddressText    *string          `json:"delivery_address_text"`
	DeliveryMobile         *string          `json:"delivery_mobile"`
	Status                 string           `json:"status"`
	MatchedCardholderEmail *string          `json:"matched_cardholder_email"`
	MatchedAt              *time.Time       `json:"matched_at"`
	CreatedAt              time.Time        `json:"created_at"`
}

// Redacted returns a copy without delivery details.
func (v *RequestView) Redacted() *RequestView {
	c := *v
	c.DeliveryAddressText = nil
	c.DeliveryMobile = nil
	return &c
}

// CardView is the public-safe subset of a saved card.
type CardView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Issuer    string    `json:"issuer"`
	Brand     string    `json:"brand"`
	Network   string    `json:"network"`
	Country   string    `json:"country"`
	Last4     string    `json:"last4"`
	CreatedAt time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
