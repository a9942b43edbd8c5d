//go:build unit

package readstore

import (
	"context"
	"testing"

	"runesse/internal/infra"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockViewQueries struct {
	mock.Mock
}

func (m *MockViewQueries) ListRequests(ctx context.Context, db sqlc.DBTX) ([]sqlc.Requests, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]sqlc.Requests)
	return rows, args.Error(1)
}

func (m *MockViewQueries) ListRequestsByBuyer(ctx context.Context, db sqlc.DBTX, buyerID pgtype.UUID) ([]sqlc.Requests, error) {
	args := m.Called(ctx, db, buyerID)
	rows, _ := args.Get(0).([]sqlc.Requests)
	return rows, args.Error(1)
}

func (m *MockViewQueries) ListActiveSavedCards(ctx context.Context, db sqlc.DBTX) ([]sqlc.SavedCards, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]sqlc.SavedCards)
	return rows, args.Error(1)
}

func (m *MockViewQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestRequestReadStore_ListAll(t *testing.T) {
	t.Run("maps every column", func(t *testing.T) {
		q := new(MockViewQueries)
		b := builder.NewRequestBuilder().WithCheckoutPrice("42.00").WithDelivery("addr", "mobile").WithBuyerID(uuid.New())
		q.On("ListRequests", mock.Anything, mock.Anything).Return([]sqlc.Requests{b.BuildInfra()}, nil)

		got, err := NewRequestReadStore(q, nil).ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)

		want := b.BuildView()
		assert.Equal(t, want.ID, got[0].ID)
		assert.Equal(t, want.BuyerID, got[0].BuyerID)
		assert.Equal(t, want.DeliveryAddressText, got[0].DeliveryAddressText)
		assert.Equal(t, "PENDING", got[0].Status)
		assert.True(t, want.CheckoutPrice.Equal(*got[0].CheckoutPrice))
		assert.Nil(t, got[0].MatchedAt)
		q.AssertExpectations(t)
	})

	t.Run("corrupted price is a db failure", func(t *testing.T) {
		q := new(MockViewQueries)
		row := builder.NewRequestBuilder().BuildInfra()
		row.CheckoutPrice = pgtype.Numeric{NaN: true, Valid: true}
		q.On("ListRequests", mock.Anything, mock.Anything).Return([]sqlc.Requests{row}, nil)

		_, err := NewRequestReadStore(q, nil).ListAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("query error", func(t *testing.T) {
		q := new(MockViewQueries)
		q.On("ListRequests", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := NewRequestReadStore(q, nil).ListAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRequestReadStore_ListByBuyerID(t *testing.T) {
	q := new(MockViewQueries)
	buyerID := uuid.New()
	q.On("ListRequestsByBuyer", mock.Anything, mock.Anything, pgtype.UUID{Bytes: buyerID, Valid: true}).
		Return([]sqlc.Requests{builder.NewRequestBuilder().WithBuyerID(buyerID).BuildInfra()}, nil)

	got, err := NewRequestReadStore(q, nil).ListByBuyerID(context.Background(), buyerID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, buyerID, *got[0].BuyerID)
	q.AssertExpectations(t)
}

func TestCardReadStore_ListActive(t *testing.T) {
	q := new(MockViewQueries)
	active := builder.NewCardBuilder()
	q.On("ListActiveSavedCards", mock.Anything, mock.Anything).
		Return([]sqlc.SavedCards{active.BuildInfra(), builder.NewCardBuilder().AsInactive().BuildInfra()}, nil)

	got, err := NewCardReadStore(q, nil).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.BuildView(), got[0])
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "found"},
		{name: "missing", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockViewQueries)
			u := builder.NewUserBuilder()
			q.On("FindUserByEmail", mock.Anything, mock.Anything, "b@x.com").Return(u.BuildInfra(), tt.mockErr)

			got, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), "b@x.com")
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.BuildView(), got)
		})
	}
}
