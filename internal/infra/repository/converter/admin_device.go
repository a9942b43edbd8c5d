package converter

import (
	"runesse/internal/domain/admindevice"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/pkg/pgconv"
)

func AdminDeviceFromRow(row sqlc.AdminDevices) *admindevice.AdminDevice {
	return admindevice.ReconstructAdminDevice(
		row.ID,
		row.AdminEmail,
		row.DeviceID,
		pgconv.StringPtrFromPgtype(row.Label),
		row.IsRevoked,
		pgconv.TimePtrFromPgtype(row.LastSeenAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
