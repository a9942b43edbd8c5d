package request

import (
	"runesse/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRequestRequest accepts checkoutPrice as a JSON number or a numeric string.
type CreateRequestRequest struct {
	BuyerEmail          string           `json:"buyerEmail" binding:"required"`
	ProductLink         string           `json:"productLink" binding:"required"`
	ProductName         *string          `json:"productName"`
	CheckoutPrice       *decimal.Decimal `json:"checkoutPrice" swaggertype:"string" example:"129.99"`
	Notes               *string          `json:"notes"`
	DeliveryAddressText *string          `json:"deliveryAddressText"`
	DeliveryMobile      *string          `json:"deliveryMobile"`
}

func (r *CreateRequestRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		BuyerEmail:          r.BuyerEmail,
		ProductLink:         r.ProductLink,
		ProductName:         r.ProductName,
		CheckoutPrice:       r.CheckoutPrice,
		Notes:               r.Notes,
		DeliveryAddressText: r.DeliveryAddressText,
		DeliveryMobile:      r.DeliveryMobile,
	}
}

type RequestIDRequest struct {
	RequestID uuid.UUID `json:"requestId" binding:"required" swaggertype:"string" format:"uuid"`
}

type SetStatusRequest struct {
	RequestID uuid.UUID `json:"requestId" binding:"required" swaggertype:"string" format:"uuid"`
	NewStatus string    `json:"newStatus" binding:"required" example:"COMPLETED"`
}
