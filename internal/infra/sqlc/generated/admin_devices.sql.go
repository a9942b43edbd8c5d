// Query methods for ../../queries/admin_devices.sql, written in sqlc output form.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findTrustedAdminDevice = `-- name: FindTrustedAdminDevice :one
SELECT id, admin_email, device_id, label, is_revoked, last_seen_at, created_at
FROM admin_devices
WHERE device_id = $1
  AND lower(admin_email) = ANY($2::text[])
  AND is_revoked = false
LIMIT 1
`

type FindTrustedAdminDeviceParams struct {
	DeviceID    string   `json:"device_id"`
	AdminEmails []string `json:"admin_emails"`
}

func (q *Queries) FindTrustedAdminDevice(ctx context.Context, db DBTX, arg FindTrustedAdminDeviceParams) (AdminDevices, error) {
	row := db.QueryRow(ctx, findTrustedAdminDevice, arg.DeviceID, arg.AdminEmails)
	var i AdminDevices
	err := row.Scan(
		&i.ID,
		&i.AdminEmail,
		&i.DeviceID,
		&i.Label,
		&i.IsRevoked,
		&i.LastSeenAt,
		&i.CreatedAt,
	)
	return i, err
}

const touchAdminDeviceLastSeen = `-- name: TouchAdminDeviceLastSeen :exec
UPDATE admin_devices
SET last_seen_at = GREATEST(COALESCE(last_seen_at, $1), $1)
WHERE id = $2
`

type TouchAdminDeviceLastSeenParams struct {
	LastSeenAt pgtype.Timestamptz `json:"last_seen_at"`
	ID         uuid.UUID          `json:"id"`
}

func (q *Queries) TouchAdminDeviceLastSeen(ctx context.Context, db DBTX, arg TouchAdminDeviceLastSeenParams) error {
	_, err := db.Exec(ctx, touchAdminDeviceLastSeen, arg.LastSeenAt, arg.ID)
	return err
}
