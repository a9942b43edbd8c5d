//go:build unit || e2e

package builder

import (
	"time"

	"runesse/internal/domain/admindevice"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdminDeviceBuilder struct {
	ID         uuid.UUID
	AdminEmail string
	DeviceID   string
	Label      *string
	IsRevoked  bool
	LastSeenAt *time.Time
	CreatedAt  time.Time
}

func NewAdminDeviceBuilder() *AdminDeviceBuilder {
	label := "office laptop"
	return &AdminDeviceBuilder{
		ID:         uuid.New(),
		AdminEmail: "admin@runesse.app",
		DeviceID:   "device-" + uuid.NewString(),
		Label:      &label,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *AdminDeviceBuilder) With(mutate func(*AdminDeviceBuilder)) *AdminDeviceBuilder {
	mutate(b)
	return b
}

func (b *AdminDeviceBuilder) AsRevoked() *AdminDeviceBuilder {
	b.IsRevoked = true
	return b
}

func (b *AdminDeviceBuilder) BuildDomain() *admindevice.AdminDevice {
	return admindevice.ReconstructAdminDevice(b.ID, b.AdminEmail, b.DeviceID, b.Label, b.IsRevoked, b.LastSeenAt, b.CreatedAt)
}

func (b *AdminDeviceBuilder) BuildInfra() sqlc.AdminDevices {
	return sqlc.AdminDevices{
		ID:         b.ID,
		AdminEmail: b.AdminEmail,
		DeviceID:   b.DeviceID,
		Label:      pgconv.StringPtrToPgtype(b.Label),
		IsRevoked:  b.IsRevoked,
		LastSeenAt: pgconv.TimePtrToPgtype(b.LastSeenAt),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
	}
}
