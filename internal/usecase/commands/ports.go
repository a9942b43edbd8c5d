package commands

import (
	"context"

	"runesse/internal/domain/request"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	// Transition writes req only while the stored status still equals from.
	Transition(ctx context.Context, req *request.Request, from request.Status) error
}
