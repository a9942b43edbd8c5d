package response

import (
	"time"

	domrequest "runesse/internal/domain/request"
	"runesse/internal/pkg/errs"
	"runesse/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const AdminTimeLayout = "2006-01-02 15:04:05"

type RequestResponse struct {
	ID                     uuid.UUID        `json:"id"`
	BuyerEmail             string           `json:"buyerEmail"`
	ProductLink            string           `json:"productLink"`
	ProductName            *string          `json:"productName"`
	CheckoutPrice          *decimal.Decimal `json:"checkoutPrice" swaggertype:"string" copier:"-"`
	Notes                  *string          `json:"notes"`
	DeliveryAddressText    *string          `json:"deliveryAddressText"`
	DeliveryMobile         *string          `json:"deliveryMobile"`
	Status                 string           `json:"status"`
	MatchedCardholderEmail *string          `json:"matchedCardholderEmail"`
	MatchedAt              *time.Time       `json:"matchedAt"`
	CreatedAt              time.Time        `json:"createdAt"`
}

// AdminRequestResponse carries every field with timestamps rendered in the admin timezone.
type AdminRequestResponse struct {
	ID                     uuid.UUID        `json:"id"`
	BuyerID                *uuid.UUID       `json:"buyerId" copier:"-"`
	BuyerEmail             string           `json:"buyerEmail"`
	ProductLink            string           `json:"productLink"`
	ProductName            *string          `json:"productName"`
	CheckoutPrice          *decimal.Decimal `json:"checkoutPrice" swaggertype:"string" copier:"-"`
	Notes                  *string          `json:"notes"`
	DeliveryAddressText    *string          `json:"deliveryAddressText"`
	DeliveryMobile         *string          `json:"deliveryMobile"`
	Status                 string           `json:"status"`
	MatchedCardholderEmail *string          `json:"matchedCardholderEmail"`
	MatchedAt              *string          `json:"matchedAt" copier:"-"`
	CreatedAt              string           `json:"createdAt"`
}

type CreateRequestResponse struct {
	OK        bool      `json:"ok"`
	RequestID uuid.UUID `json:"requestId"`
}

type RequestEnvelope struct {
	OK      bool             `json:"ok"`
	Request *RequestResponse `json:"request"`
}

type AdminRequestEnvelope struct {
	OK      bool                  `json:"ok"`
	Request *AdminRequestResponse `json:"request"`
}

type RequestListResponse struct {
	OK       bool               `json:"ok"`
	Requests []*RequestResponse `json:"requests"`
}

type AdminRequestListResponse struct {
	OK       bool                    `json:"ok"`
	Requests []*AdminRequestResponse `json:"requests"`
}

func FromRequestView(v *queries.RequestView) (*RequestResponse, error) {
	var res RequestResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "copy request view")
	}
	// sql.Scanner types are assigned directly
	res.CheckoutPrice = v.CheckoutPrice
	return &res, nil
}

func FromRequestViews(vs []*queries.RequestView) ([]*RequestResponse, error) {
	res := make([]*RequestResponse, len(vs))
	for i, v := range vs {
		r, err := FromRequestView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromAdminRequestView(v *queries.RequestView, loc *time.Location) (*AdminRequestResponse, error) {
	var res AdminRequestResponse
	err := copier.CopyWithOption(&res, v, copier.Option{
		Converters: []copier.TypeConverter{adminTimeConverter(loc)},
	})
	if err != nil {
		return nil, errs.Wrap(err, "copy admin request view")
	}
	res.BuyerID = v.BuyerID
	res.CheckoutPrice = v.CheckoutPrice
	if v.MatchedAt != nil {
		s := FormatAdminTime(*v.MatchedAt, loc)
		res.MatchedAt = &s
	}
	return &res, nil
}

func FromAdminRequestViews(vs []*queries.RequestView, loc *time.Location) ([]*AdminRequestResponse, error) {
	res := make([]*AdminRequestResponse, len(vs))
	for i, v := range vs {
		r, err := FromAdminRequestView(v, loc)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

// ViewFromDomain projects a freshly written request onto the read model shape.
func ViewFromDomain(r *domrequest.Request) *queries.RequestView {
	return &queries.RequestView{
		ID:                     r.ID(),
		BuyerID:                r.BuyerID(),
		BuyerEmail:             r.BuyerEmail().Value(),
		ProductLink:            r.ProductLink().String(),
		ProductName:            r.ProductName(),
		CheckoutPrice:          r.CheckoutPrice().Decimal(),
		Notes:                  r.Notes(),
		DeliveryAddressText:    r.DeliveryAddressText(),
		DeliveryMobile:         r.DeliveryMobile(),
		Status:                 r.Status().String(),
		MatchedCardholderEmail: r.MatchedCardholderEmail(),
		MatchedAt:              r.MatchedAt(),
		CreatedAt:              r.CreatedAt(),
	}
}

func FormatAdminTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(AdminTimeLayout)
}

func adminTimeConverter(loc *time.Location) copier.TypeConverter {
	return copier.TypeConverter{
		SrcType: time.Time{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return FormatAdminTime(src.(time.Time), loc), nil
		},
	}
}
