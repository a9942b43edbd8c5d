//go:build unit || e2e

package builder

import (
	"time"

	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"
	"runesse/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardBuilder struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Label     string
	Issuer    string
	Brand     string
	Network   string
	Country   string
	Last4     string
	IsActive  bool
	CreatedAt time.Time
}

func NewCardBuilder() *CardBuilder {
	return &CardBuilder{
		ID:        uuid.New(),
		Label:     "Travel rewards",
		Issuer:    "Example Bank",
		Brand:     "Sapphire",
		Network:   "VISA",
		Country:   "US",
		Last4:     "4242",
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (b *CardBuilder) With(mutate func(*CardBuilder)) *CardBuilder {
	mutate(b)
	return b
}

func (b *CardBuilder) AsInactive() *CardBuilder {
	b.IsActive = false
	return b
}

func (b *CardBuilder) BuildInfra() sqlc.SavedCards {
	return sqlc.SavedCards{
		ID:        b.ID,
		UserID:    pgconv.UUIDPtrToPgtype(b.UserID),
		Label:     b.Label,
		Issuer:    b.Issuer,
		Brand:     b.Brand,
		Network:   b.Network,
		Country:   b.Country,
		Last4:     b.Last4,
		IsActive:  b.IsActive,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *CardBuilder) BuildView() *queries.CardView {
	return &queries.CardView{
		ID:        b.ID,
		Label:     b.Label,
		Issuer:    b.Issuer,
		Brand:     b.Brand,
		Network:   b.Network,
		Country:   b.Country,
		Last4:     b.Last4,
		CreatedAt: b.CreatedAt,
	}
}
