package request

import (
	"time"

	"runesse/internal/domain/user"
	"runesse/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnassignedCardholder fills the matched cardholder when no identity is known at claim time.
const UnassignedCardholder = "unassigned@runesse.app"

// Request is a buyer's purchase ask moving through PENDING -> MATCHED -> COMPLETED/CANCELLED.
type Request struct {
	id                     uuid.UUID
	buyerID                *uuid.UUID
	buyerEmail             user.Email
	productLink            ProductLink
	productName            *string
	checkoutPrice          Price
	notes                  *string
	deliveryAddressText    *string
	deliveryMobile         *string
	status                 Status
	matchedCardholderEmail *string
	matchedAt              *time.Time
	createdAt              time.Time
}

type NewRequestInput struct {
	BuyerEmail          string
	ProductLink         string
	ProductName         *string
	CheckoutPrice       *decimal.Decimal
	Notes               *string
	DeliveryAddressText *string
	DeliveryMobile      *string
}

func NewRequest(in NewRequestInput, now time.Time) (*Request, error) {
	email, err := user.NewEmail(in.BuyerEmail)
	if err != nil {
		return nil, err
	}
	link, err := NewProductLink(in.ProductLink)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(in.CheckoutPrice)
	if err != nil {
		return nil, err
	}

	texts := []*string{in.ProductName, in.Notes, in.DeliveryAddressText, in.DeliveryMobile}
	for i, t := range texts {
		if texts[i], err = optionalText(t); err != nil {
			return nil, err
		}
	}

	return &Request{
		id:                  uuid.New(),
		buyerEmail:          email,
		productLink:         link,
		productName:         texts[0],
		checkoutPrice:       price,
		notes:               texts[1],
		deliveryAddressText: texts[2],
		deliveryMobile:      texts[3],
		status:              StatusPending,
		createdAt:           now,
	}, nil
}

// ReconstructRequest rebuilds a persisted request without re-running creation validation.
func ReconstructRequest(
	id uuid.UUID,
	buyerID *uuid.UUID,
	buyerEmail user.Email,
	productLink ProductLink,
	productName *string,
	checkoutPrice Price,
	notes, deliveryAddressText, deliveryMobile *string,
	status Status,
	matchedCardholderEmail *string,
	matchedAt *time.Time,
	createdAt time.Time,
) *Request {
	return &Request{
		id:                     id,
		buyerID:                buyerID,
		buyerEmail:             buyerEmail,
		productLink:            productLink,
		productName:            productName,
		checkoutPrice:          checkoutPrice,
		notes:                  notes,
		deliveryAddressText:    deliveryAddressText,
		deliveryMobile:         deliveryMobile,
		status:                 status,
		matchedCardholderEmail: matchedCardholderEmail,
		matchedAt:              matchedAt,
		createdAt:              createdAt,
	}
}

// Claim moves a PENDING request to MATCHED. Take and Match both land here.
func (r *Request) Claim(actor Actor, cardholderEmail *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotAvailable
	}

	var fromSession *string
	if actor == ActorCardholder {
		fromSession = cardholderEmail
	}

	r.markMatched(patch.FirstSet(UnassignedCardholder, fromSession, r.matchedCardholderEmail), now)
	return nil
}

// ApplyStatus sets a closing status without guarding the current one.
// It reports false when the request already has the target status.
func (r *Request) ApplyStatus(target Status, now time.Time) (bool, error) {
	if target != StatusCompleted && target != StatusCancelled {
		return false, ErrInvalidTargetStatus
	}
	if r.status == target {
		return false, nil
	}

	switch target {
	case StatusCompleted:
		if r.matchedAt == nil || r.matchedCardholderEmail == nil {
			r.markMatched(patch.Coalesce(r.matchedCardholderEmail, UnassignedCardholder), now)
		}
	case StatusCancelled:
		r.matchedAt = nil
		r.matchedCardholderEmail = nil
	}
	r.status = target
	return true, nil
}

func (r *Request) markMatched(email string, now time.Time) {
	if now.Before(r.createdAt) {
		now = r.createdAt
	}
	r.status = StatusMatched
	r.matchedCardholderEmail = &email
	r.matchedAt = &now
}

func (r *Request) ID() uuid.UUID                   { return r.id }
func (r *Request) BuyerID() *uuid.UUID             { return r.buyerID }
func (r *Request) BuyerEmail() user.Email          { return r.buyerEmail }
func (r *Request) ProductLink() ProductLink        { return r.productLink }
func (r *Request) ProductName() *string            { return r.productName }
func (r *Request) CheckoutPrice() Price            { return r.checkoutPrice }
func (r *Request) Notes() *string                  { return r.notes }
func (r *Request) DeliveryAddressText() *string    { return r.deliveryAddressText }
func (r *Request) DeliveryMobile() *string         { return r.deliveryMobile }
func (r *Request) Status() Status                  { return r.status }
func (r *Request) MatchedCardholderEmail() *string { return r.matchedCardholderEmail }
func (r *Request) MatchedAt() *time.Time           { return r.matchedAt }
func (r *Request) CreatedAt() time.Time            { return r.createdAt }
