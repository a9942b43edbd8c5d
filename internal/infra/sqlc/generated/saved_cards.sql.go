// Query methods for ../../queries/saved_cards.sql, written in sqlc output form.

package sqlc

import (
	"context"
)

const listActiveSavedCards = `-- name: ListActiveSavedCards :many
SELECT id, user_id, label, issuer, brand, network, country, last4, is_active, created_at
FROM saved_cards
WHERE is_active = true
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListActiveSavedCards(ctx context.Context, db DBTX) ([]SavedCards, error) {
	rows, err := db.Query(ctx, listActiveSavedCards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SavedCards
	for rows.Next() {
		var i SavedCards
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Label,
			&i.Issuer,
			&i.Brand,
			&i.Network,
			&i.Country,
			&i.Last4,
			&i.IsActive,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
