// Query methods for ../../queries/requests.sql, written in sqlc output form.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateRequestParams struct {
	ID                  uuid.UUID          `json:"id"`
	BuyerEmail          string             `json:"buyer_email"`
	ProductLink         string             `json:"product_link"`
	ProductName         pgtype.Text        `json:"product_name"`
	CheckoutPrice       pgtype.Numeric     `json:"checkout_price"`
	Notes               pgtype.Text        `json:"notes"`
	DeliveryAddressText pgtype.Text        `json:"delivery_address_text"`
	DeliveryMobile      pgtype.Text        `json:"delivery_mobile"`
	Status              string             `json:"status"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
}

const createRequest = `-- name: CreateRequest :one
INSERT INTO requests (
    id, buyer_id, buyer_email, product_link, product_name, checkout_price,
    notes, delivery_address_text, delivery_mobile, status, created_at
) VALUES (
    $1, (SELECT u.id FROM users u WHERE lower(u.email) = lower($2)), $2, $3, $4, $5,
    $6, $7, $8, $9, $10
)
RETURNING id, buyer_id, buyer_email, product_link, product_name, checkout_price, notes,
    delivery_address_text, delivery_mobile, status, matched_cardholder_email, matched_at, created_at
`

func (q *Queries) CreateRequest(ctx context.Context, db DBTX, arg CreateRequestParams) (Requests, error) {
	row := db.QueryRow(ctx, createRequest,
		arg.ID,
		arg.BuyerEmail,
		arg.ProductLink,
		arg.ProductName,
		arg.CheckoutPrice,
		arg.Notes,
		arg.DeliveryAddressText,
		arg.DeliveryMobile,
		arg.Status,
		arg.CreatedAt,
	)
	var i Requests
	err := row.Scan(
		&i.ID,
		&i.BuyerID,
		&i.BuyerEmail,
		&i.ProductLink,
		&i.ProductName,
		&i.CheckoutPrice,
		&i.Notes,
		&i.DeliveryAddressText,
		&i.DeliveryMobile,
		&i.Status,
		&i.MatchedCardholderEmail,
		&i.MatchedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getRequestByID = `-- name: GetRequestByID :one
SELECT id, buyer_id, buyer_email, product_link, product_name, checkout_price, notes,
    delivery_address_text, delivery_mobile, status, matched_cardholder_email, matched_at, created_at
FROM requests
WHERE id = $1
`

func (q *Queries) GetRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (Requests, error) {
	row := db.QueryRow(ctx, getRequestByID, id)
	var i Requests
	err := row.Scan(
		&i.ID,
		&i.BuyerID,
		&i.BuyerEmail,
		&i.ProductLink,
		&i.ProductName,
		&i.CheckoutPrice,
		&i.Notes,
		&i.DeliveryAddressText,
		&i.DeliveryMobile,
		&i.Status,
		&i.MatchedCardholderEmail,
		&i.MatchedAt,
		&i.CreatedAt,
	)
	return i, err
}

const listRequests = `-- name: ListRequests :many
SELECT id, buyer_id, buyer_email, product_link, product_name, checkout_price, notes,
    delivery_address_text, delivery_mobile, status, matched_cardholder_email, matched_at, created_at
FROM requests
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListRequests(ctx context.Context, db DBTX) ([]Requests, error) {
	rows, err := db.Query(ctx, listRequests)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Requests
	for rows.Next() {
		var i Requests
		if err := rows.Scan(
			&i.ID,
			&i.BuyerID,
			&i.BuyerEmail,
			&i.ProductLink,
			&i.ProductName,
			&i.CheckoutPrice,
			&i.Notes,
			&i.DeliveryAddressText,
			&i.DeliveryMobile,
			&i.Status,
			&i.MatchedCardholderEmail,
			&i.MatchedAt,
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

const listRequestsByBuyer = `-- name: ListRequestsByBuyer :many
SELECT id, buyer_id, buyer_email, product_link, product_name, checkout_price, notes,
    delivery_address_text, delivery_mobile, status, matched_cardholder_email, matched_at, created_at
FROM requests
WHERE buyer_id = $1
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListRequestsByBuyer(ctx context.Context, db DBTX, buyerID pgtype.UUID) ([]Requests, error) {
	rows, err := db.Query(ctx, listRequestsByBuyer, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Requests
	for rows.Next() {
		var i Requests
		if err := rows.Scan(
			&i.ID,
			&i.BuyerID,
			&i.BuyerEmail,
			&i.ProductLink,
			&i.ProductName,
			&i.CheckoutPrice,
			&i.Notes,
			&i.DeliveryAddressText,
			&i.DeliveryMobile,
			&i.Status,
			&i.MatchedCardholderEmail,
			&i.MatchedAt,
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

const transitionRequest = `-- name: TransitionRequest :execrows
UPDATE requests
SET status = $1,
    matched_cardholder_email = $2,
    matched_at = $3
WHERE id = $4
  AND status = $5
`

type TransitionRequestParams struct {
	ToStatus               string             `json:"to_status"`
	MatchedCardholderEmail pgtype.Text        `json:"matched_cardholder_email"`
	MatchedAt              pgtype.Timestamptz `json:"matched_at"`
	ID                     uuid.UUID          `json:"id"`
	FromStatus             string             `json:"from_status"`
}

func (q *Queries) TransitionRequest(ctx context.Context, db DBTX, arg TransitionRequestParams) (int64, error) {
	result, err := db.Exec(ctx, transitionRequest,
		arg.ToStatus,
		arg.MatchedCardholderEmail,
		arg.MatchedAt,
		arg.ID,
		arg.FromStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
