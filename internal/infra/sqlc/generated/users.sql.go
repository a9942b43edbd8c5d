// Query methods for ../../queries/users.sql, written in sqlc output form.

package sqlc

import (
	"context"
)

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, email, role, created_at
FROM users
WHERE lower(email) = lower($1)
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, lower string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, lower)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}
