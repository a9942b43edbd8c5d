package commands

import (
	"context"
	"log/slog"

	"runesse/internal/domain/request"
	"runesse/internal/infra"
	"runesse/internal/pkg/clock"
	"runesse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound = errs.Mark(errs.New("request not found"), errs.ErrNotFound)
	ErrRequestConflict = errs.Mark(errs.New("request was modified concurrently"), errs.ErrConflict)
)

type CreateRequestInput struct {
	BuyerEmail          string
	ProductLink         string
	ProductName         *string
	CheckoutPrice       *decimal.Decimal
	Notes               *string
	DeliveryAddressText *string
	DeliveryMobile      *string
}

type RequestCommands interface {
	Create(ctx context.Context, in CreateRequestInput) (uuid.UUID, error)
	// Take claims a pending request for a cardholder. cardholderEmail comes from the session and may be nil.
	Take(ctx context.Context, id uuid.UUID, cardholderEmail *string) (*request.Request, error)
	// Match claims a pending request on behalf of an admin.
	Match(ctx context.Context, id uuid.UUID) (*request.Request, error)
	SetStatus(ctx context.Context, id uuid.UUID, newStatus string) (*request.Request, error)
}

type requestCommandsImpl struct {
	repo   RequestRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewRequestCommands(repo RequestRepository, clock clock.Clock, logger *slog.Logger) RequestCommands {
	return &requestCommandsImpl{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (c *requestCommandsImpl) Create(ctx context.Context, in CreateRequestInput) (uuid.UUID, error) {
	req, err := request.NewRequest(request.NewRequestInput{
		BuyerEmail:          in.BuyerEmail,
		ProductLink:         in.ProductLink,
		ProductName:         in.ProductName,
		CheckoutPrice:       in.CheckoutPrice,
		Notes:               in.Notes,
		DeliveryAddressText: in.DeliveryAddressText,
		DeliveryMobile:      in.DeliveryMobile,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.repo.Create(ctx, req); err != nil {
		return uuid.Nil, c.translate(ctx, "create request", err)
	}
	return req.ID(), nil
}

func (c *requestCommandsImpl) Take(ctx context.Context, id uuid.UUID, cardholderEmail *string) (*request.Request, error) {
	return c.claim(ctx, id, request.ActorCardholder, cardholderEmail)
}

func (c *requestCommandsImpl) Match(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return c.claim(ctx, id, request.ActorAdmin, nil)
}

func (c *requestCommandsImpl) claim(ctx context.Context, id uuid.UUID, actor request.Actor, cardholderEmail *string) (*request.Request, error) {
	req, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, c.translate(ctx, "find request", err)
	}

	from := req.Status()
	if err := req.Claim(actor, cardholderEmail, c.clock.Now()); err != nil {
		return nil, err
	}

	if err := c.repo.Transition(ctx, req, from); err != nil {
		return nil, c.translate(ctx, "claim request", err)
	}
	return req, nil
}

func (c *requestCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, newStatus string) (*request.Request, error) {
	target, err := request.ParseTargetStatus(newStatus)
	if err != nil {
		return nil, err
	}

	req, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, c.translate(ctx, "find request", err)
	}

	from := req.Status()
	changed, err := req.ApplyStatus(target, c.clock.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return req, nil
	}

	if err := c.repo.Transition(ctx, req, from); err != nil {
		return nil, c.translate(ctx, "set request status", err)
	}
	return req, nil
}

func (c *requestCommandsImpl) translate(ctx context.Context, op string, err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRequestNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrRequestConflict
	}
	c.logger.ErrorContext(ctx, "request store failure", "op", op, "error", err)
	return errs.Mark(errs.Wrap(err, op), errs.ErrStore)
}
