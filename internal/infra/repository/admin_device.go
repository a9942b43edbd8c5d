package repository

import (
	"context"
	"time"

	"runesse/internal/domain/admindevice"
	"runesse/internal/infra"
	"runesse/internal/infra/repository/converter"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdminDeviceQueries interface {
	FindTrustedAdminDevice(ctx context.Context, db sqlc.DBTX, arg sqlc.FindTrustedAdminDeviceParams) (sqlc.AdminDevices, error)
	TouchAdminDeviceLastSeen(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchAdminDeviceLastSeenParams) error
}

type AdminDeviceRepository struct {
	queries AdminDeviceQueries
	db      sqlc.DBTX
}

func NewAdminDeviceRepository(queries AdminDeviceQueries, db sqlc.DBTX) *AdminDeviceRepository {
	return &AdminDeviceRepository{
		queries: queries,
		db:      db,
	}
}

// FindTrusted looks up a non-revoked device owned by one of adminEmails (lowercased).
func (r *AdminDeviceRepository) FindTrusted(ctx context.Context, deviceID string, adminEmails []string) (*admindevice.AdminDevice, error) {
	row, err := r.queries.FindTrustedAdminDevice(ctx, r.db, sqlc.FindTrustedAdminDeviceParams{
		DeviceID:    deviceID,
		AdminEmails: adminEmails,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find trusted admin device", err)
	}
	return converter.AdminDeviceFromRow(row), nil
}

func (r *AdminDeviceRepository) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.TouchAdminDeviceLastSeen(ctx, r.db, sqlc.TouchAdminDeviceLastSeenParams{
		LastSeenAt: pgconv.TimeToPgtype(at),
		ID:         id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update admin device last seen", err)
	}
	return nil
}
