package queries

import "context"

type CardReadStore interface {
	ListActive(ctx context.Context) ([]*CardView, error)
}

type CardQueries interface {
	ListActive(ctx context.Context) ([]*CardView, error)
}

type cardQueriesImpl struct {
	cards CardReadStore
}

func NewCardQueries(cards CardReadStore) CardQueries {
	return &cardQueriesImpl{cards: cards}
}

func (q *cardQueriesImpl) ListActive(ctx context.Context) ([]*CardView, error) {
	rows, err := q.cards.ListActive(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if rows == nil {
		rows = []*CardView{}
	}
	return rows, nil
}
