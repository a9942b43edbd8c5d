package repository

import (
	"context"

	"runesse/internal/domain/request"
	"runesse/internal/infra"
	"runesse/internal/infra/repository/converter"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestWriteQueries interface {
	CreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRequestParams) (sqlc.Requests, error)
	GetRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Requests, error)
	TransitionRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionRequestParams) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	if _, err := r.queries.CreateRequest(ctx, r.db, converter.RequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	row, err := r.queries.GetRequestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get request by id", err)
	}
	req, err := converter.RequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode request", err, infra.KindDBFailure)
	}
	return req, nil
}

// Transition persists req's status and match fields only if the stored status still equals from.
// A lost race surfaces as KindConflict.
func (r *RequestRepository) Transition(ctx context.Context, req *request.Request, from request.Status) error {
	n, err := r.queries.TransitionRequest(ctx, r.db, converter.RequestToTransitionParams(req, from))
	if err != nil {
		return infra.WrapRepoErr("failed to transition request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("request status changed concurrently", errs.New("expected status "+from.String()), infra.KindConflict)
	}
	return nil
}
