//go:build unit || e2e

package builder

import (
	"time"

	"runesse/internal/domain/request"
	"runesse/internal/domain/user"
	reqdto "runesse/internal/handler/dto/request"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"
	"runesse/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCardholderEmail = "holder@example.com"

type RequestBuilder struct {
	ID                     uuid.UUID
	BuyerID                *uuid.UUID
	BuyerEmail             string
	ProductLink            string
	ProductName            *string
	CheckoutPrice          *decimal.Decimal
	Notes                  *string
	DeliveryAddressText    *string
	DeliveryMobile         *string
	Status                 request.Status
	MatchedCardholderEmail *string
	MatchedAt              *time.Time
	CreatedAt              time.Time
}

func NewRequestBuilder() *RequestBuilder {
	name := "Noise cancelling headphones"
	return &RequestBuilder{
		ID:          uuid.New(),
		BuyerEmail:  "b@x.com",
		ProductLink: "http://x",
		ProductName: &name,
		Status:      request.StatusPending,
		CreatedAt:   time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*request.Request, error) {
	return request.NewRequest(request.NewRequestInput{
		BuyerEmail:          b.BuyerEmail,
		ProductLink:         b.ProductLink,
		ProductName:         b.ProductName,
		CheckoutPrice:       b.CheckoutPrice,
		Notes:               b.Notes,
		DeliveryAddressText: b.DeliveryAddressText,
		DeliveryMobile:      b.DeliveryMobile,
	}, b.CreatedAt)
}

// BuildReconstructed skips creation validation; the builder values must already be valid.
func (b *RequestBuilder) BuildReconstructed() *request.Request {
	email, err := user.NewEmail(b.BuyerEmail)
	if err != nil {
		panic(err)
	}
	link, err := request.NewProductLink(b.ProductLink)
	if err != nil {
		panic(err)
	}
	price, err := request.NewPrice(b.CheckoutPrice)
	if err != nil {
		panic(err)
	}
	return request.ReconstructRequest(
		b.ID, b.BuyerID, email, link, b.ProductName, price,
		b.Notes, b.DeliveryAddressText, b.DeliveryMobile,
		b.Status, b.MatchedCardholderEmail, b.MatchedAt, b.CreatedAt,
	)
}

func (b *RequestBuilder) BuildInfra() sqlc.Requests {
	return sqlc.Requests{
		ID:                     b.ID,
		BuyerID:                pgconv.UUIDPtrToPgtype(b.BuyerID),
		BuyerEmail:             b.BuyerEmail,
		ProductLink:            b.ProductLink,
		ProductName:            pgconv.StringPtrToPgtype(b.ProductName),
		CheckoutPrice:          pgconv.DecimalPtrToNumeric(b.CheckoutPrice),
		Notes:                  pgconv.StringPtrToPgtype(b.Notes),
		DeliveryAddressText:    pgconv.StringPtrToPgtype(b.DeliveryAddressText),
		DeliveryMobile:         pgconv.StringPtrToPgtype(b.DeliveryMobile),
		Status:                 b.Status.String(),
		MatchedCardholderEmail: pgconv.StringPtrToPgtype(b.MatchedCardholderEmail),
		MatchedAt:              pgconv.TimePtrToPgtype(b.MatchedAt),
		CreatedAt:              pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:                     b.ID,
		BuyerID:                b.BuyerID,
		BuyerEmail:             b.BuyerEmail,
		ProductLink:            b.ProductLink,
		ProductName:            b.ProductName,
		CheckoutPrice:          b.CheckoutPrice,
		Notes:                  b.Notes,
		DeliveryAddressText:    b.DeliveryAddressText,
		DeliveryMobile:         b.DeliveryMobile,
		Status:                 b.Status.String(),
		MatchedCardholderEmail: b.MatchedCardholderEmail,
		MatchedAt:              b.MatchedAt,
		CreatedAt:              b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateRequestRequest {
	return reqdto.CreateRequestRequest{
		BuyerEmail:          b.BuyerEmail,
		ProductLink:         b.ProductLink,
		ProductName:         b.ProductName,
		CheckoutPrice:       b.CheckoutPrice,
		Notes:               b.Notes,
		DeliveryAddressText: b.DeliveryAddressText,
		DeliveryMobile:      b.DeliveryMobile,
	}
}

// Fluent builder methods
func (b *RequestBuilder) WithCheckoutPrice(s string) *RequestBuilder {
	d := decimal.RequireFromString(s)
	b.CheckoutPrice = &d
	return b
}

func (b *RequestBuilder) WithDelivery(address, mobile string) *RequestBuilder {
	b.DeliveryAddressText = &address
	b.DeliveryMobile = &mobile
	return b
}

func (b *RequestBuilder) WithBuyerID(id uuid.UUID) *RequestBuilder {
	b.BuyerID = &id
	return b
}

// WithStatus keeps the matched fields consistent with st.
func (b *RequestBuilder) WithStatus(st request.Status) *RequestBuilder {
	b.Status = st
	if st.HasMatch() {
		email := DefaultCardholderEmail
		at := b.CreatedAt.Add(time.Hour)
		b.MatchedCardholderEmail = &email
		b.MatchedAt = &at
	} else {
		b.MatchedCardholderEmail = nil
		b.MatchedAt = nil
	}
	return b
}
