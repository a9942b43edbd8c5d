package readstore

import (
	"context"

	"runesse/internal/infra"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"
	"runesse/internal/usecase/queries"
)

type CardViewQueries interface {
	ListActiveSavedCards(ctx context.Context, db sqlc.DBTX) ([]sqlc.SavedCards, error)
}

type CardReadStore struct {
	queries CardViewQueries
	db      sqlc.DBTX
}

func NewCardReadStore(queries CardViewQueries, db sqlc.DBTX) *CardReadStore {
	return &CardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CardReadStore) ListActive(ctx context.Context) ([]*queries.CardView, error) {
	rows, err := r.queries.ListActiveSavedCards(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active cards", err)
	}

	result := make([]*queries.CardView, 0, len(rows))
	for _, row := range rows {
		// inactive cards never leave the read path
		if !row.IsActive {
			continue
		}
		result = append(result, &queries.CardView{
			ID:        row.ID,
			Label:     row.Label,
			Issuer:    row.Issuer,
			Brand:     row.Brand,
			Network:   row.Network,
			Country:   row.Country,
			Last4:     row.Last4,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return result, nil
}
