package readstore

import (
	"context"

	"runesse/internal/infra"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"
	"runesse/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestViewQueries interface {
	ListRequests(ctx context.Context, db sqlc.DBTX) ([]sqlc.Requests, error)
	ListRequestsByBuyer(ctx context.Context, db sqlc.DBTX, buyerID pgtype.UUID) ([]sqlc.Requests, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) ListAll(ctx context.Context) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequests(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	return mapRequestRows(rows)
}

func (r *RequestReadStore) ListByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsByBuyer(ctx, r.db, pgconv.UUIDToPgtype(buyerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by buyer", err)
	}
	return mapRequestRows(rows)
}

func mapRequestRows(rows []sqlc.Requests) ([]*queries.RequestView, error) {
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		price, err := pgconv.DecimalPtrFromNumeric(row.CheckoutPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode checkout price", err, infra.KindDBFailure)
		}
		result[i] = &queries.RequestView{
			ID:                     row.ID,
			BuyerID:                pgconv.UUIDPtrFromPgtype(row.BuyerID),
			BuyerEmail:             row.BuyerEmail,
			ProductLink:            row.ProductLink,
			ProductName:            pgconv.StringPtrFromPgtype(row.ProductName),
			CheckoutPrice:          price,
			Notes:                  pgconv.StringPtrFromPgtype(row.Notes),
			DeliveryAddressText:    pgconv.StringPtrFromPgtype(row.DeliveryAddressText),
			DeliveryMobile:         pgconv.StringPtrFromPgtype(row.DeliveryMobile),
			Status:                 row.Status,
			MatchedCardholderEmail: pgconv.StringPtrFromPgtype(row.MatchedCardholderEmail),
			MatchedAt:              pgconv.TimePtrFromPgtype(row.MatchedAt),
			CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
