package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminDevices struct {
	ID         uuid.UUID          `json:"id"`
	AdminEmail string             `json:"admin_email"`
	DeviceID   string             `json:"device_id"`
	Label      pgtype.Text        `json:"label"`
	IsRevoked  bool               `json:"is_revoked"`
	LastSeenAt pgtype.Timestamptz `json:"last_seen_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Requests struct {
	ID                     uuid.UUID          `json:"id"`
	BuyerID                pgtype.UUID        `json:"buyer_id"`
	BuyerEmail             string             `json:"buyer_email"`
	ProductLink            string             `json:"product_link"`
	ProductName            pgtype.Text        `json:"product_name"`
	CheckoutPrice          pgtype.Numeric     `json:"checkout_price"`
	Notes                  pgtype.Text        `json:"notes"`
	DeliveryAddressText    pgtype.Text        `json:"delivery_address_text"`
	DeliveryMobile         pgtype.Text        `json:"delivery_mobile"`
	Status                 string             `json:"status"`
	MatchedCardholderEmail pgtype.Text        `json:"matched_cardholder_email"`
	MatchedAt              pgtype.Timestamptz `json:"matched_at"`
	CreatedAt              pgtype.Timestamptz `json:"created_at"`
}

type SavedCards struct {
	ID        uuid.UUID          `json:"id"`
	UserID    pgtype.UUID        `json:"user_id"`
	Label     string             `json:"label"`
	Issuer    string             `json:"issuer"`
	Brand     string             `json:"brand"`
	Network   string             `json:"network"`
	Country   string             `json:"country"`
	Last4     string             `json:"last4"`
	IsActive  bool               `json:"is_active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
