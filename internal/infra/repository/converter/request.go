package converter

import (
	"runesse/internal/domain/request"
	"runesse/internal/domain/user"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/errs"
	"runesse/internal/pkg/pgconv"
)

func RequestToCreateParams(r *request.Request) sqlc.CreateRequestParams {
	return sqlc.CreateRequestParams{
		ID:                  r.ID(),
		BuyerEmail:          r.BuyerEmail().Value(),
		ProductLink:         r.ProductLink().String(),
		ProductName:         pgconv.StringPtrToPgtype(r.ProductName()),
		CheckoutPrice:       pgconv.DecimalPtrToNumeric(r.CheckoutPrice().Decimal()),
		Notes:               pgconv.StringPtrToPgtype(r.Notes()),
		DeliveryAddressText: pgconv.StringPtrToPgtype(r.DeliveryAddressText()),
		DeliveryMobile:      pgconv.StringPtrToPgtype(r.DeliveryMobile()),
		Status:              r.Status().String(),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RequestToTransitionParams(r *request.Request, from request.Status) sqlc.TransitionRequestParams {
	return sqlc.TransitionRequestParams{
		ToStatus:               r.Status().String(),
		MatchedCardholderEmail: pgconv.StringPtrToPgtype(r.MatchedCardholderEmail()),
		MatchedAt:              pgconv.TimePtrToPgtype(r.MatchedAt()),
		ID:                     r.ID(),
		FromStatus:             from.String(),
	}
}

// RequestFromRow rebuilds the aggregate from a stored row. Status, checkout price, buyer
// email and product link go back through their domain constructors, so a corrupted row
// fails loudly. The remaining columns are taken as stored.
func RequestFromRow(row sqlc.Requests) (*request.Request, error) {
	status, err := request.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored request has unknown status "+row.Status)
	}
	price, err := pgconv.DecimalPtrFromNumeric(row.CheckoutPrice)
	if err != nil {
		return nil, errs.Wrap(err, "stored request has invalid checkout price")
	}
	email, err := user.NewEmail(row.BuyerEmail)
	if err != nil {
		return nil, errs.Wrap(err, "stored request has invalid buyer email")
	}
	link, err := request.NewProductLink(row.ProductLink)
	if err != nil {
		return nil, errs.Wrap(err, "stored request has invalid product link")
	}
	checkoutPrice, err := request.NewPrice(price)
	if err != nil {
		return nil, errs.Wrap(err, "stored request has invalid checkout price")
	}

	return request.ReconstructRequest(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.BuyerID),
		email,
		link,
		pgconv.StringPtrFromPgtype(row.ProductName),
		checkoutPrice,
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.StringPtrFromPgtype(row.DeliveryAddressText),
		pgconv.StringPtrFromPgtype(row.DeliveryMobile),
		status,
		pgconv.StringPtrFromPgtype(row.MatchedCardholderEmail),
		pgconv.TimePtrFromPgtype(row.MatchedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
