package queries

import (
	"context"

	"runesse/internal/domain/user"
	"runesse/internal/infra"
	"runesse/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	ListAll(ctx context.Context) ([]*RequestView, error)
	ListByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*RequestView, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*UserView, error)
}

type RequestQueries interface {
	// ListPublic returns every request newest first with delivery details removed.
	ListPublic(ctx context.Context) ([]*RequestView, error)
	// ListAdmin returns every request newest first with all fields.
	ListAdmin(ctx context.Context) ([]*RequestView, error)
	// ListByBuyerEmail returns the buyer's requests, redacted like ListPublic.
	// An unknown buyer yields an empty list.
	ListByBuyerEmail(ctx context.Context, email string) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, users: users}
}

func (q *requestQueriesImpl) ListPublic(ctx context.Context) ([]*RequestView, error) {
	rows, err := q.requests.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return redactAll(rows), nil
}

func (q *requestQueriesImpl) ListAdmin(ctx context.Context) ([]*RequestView, error) {
	rows, err := q.requests.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if rows == nil {
		rows = []*RequestView{}
	}
	return rows, nil
}

func (q *requestQueriesImpl) ListByBuyerEmail(ctx context.Context, email string) ([]*RequestView, error) {
	parsed, err := user.NewEmail(email)
	if err != nil {
		return []*RequestView{}, nil
	}

	u, err := q.users.FindByEmail(ctx, parsed.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*RequestView{}, nil
		}
		return nil, storeErr(err)
	}

	rows, err := q.requests.ListByBuyerID(ctx, u.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return redactAll(rows), nil
}

func redactAll(rows []*RequestView) []*RequestView {
	out := make([]*RequestView, len(rows))
	for i, r := range rows {
		out[i] = r.Redacted()
	}
	return out
}

func storeErr(err error) error {
	return errs.Mark(err, errs.ErrStore)
}
