//go:build unit

package pgconv

import (
	"database/sql"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "129.99", "1499.5", "0.01", "1000000"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got, err := DecimalPtrFromNumeric(DecimalPtrToNumeric(&d))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, d.Equal(*got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalPtrFromNumeric(t *testing.T) {
	t.Run("null maps to nil", func(t *testing.T) {
		got, err := DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.False(t, DecimalPtrToNumeric(nil).Valid)
	})

	t.Run("non-finite values are rejected", func(t *testing.T) {
		cases := []pgtype.Numeric{
			{NaN: true, Valid: true},
			{Int: big.NewInt(1), InfinityModifier: pgtype.Infinity, Valid: true},
			{Valid: true},
		}
		for _, n := range cases {
			_, err := DecimalPtrFromNumeric(n)
			assert.ErrorIs(t, err, ErrInvalidNumeric)
		}
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(errors.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, IsNoRows(assert.AnError))
	assert.False(t, IsNoRows(nil))
}
