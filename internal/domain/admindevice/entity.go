package admindevice

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdminDevice is a browser an admin has registered; its cookie token is DeviceID.
type AdminDevice struct {
	id         uuid.UUID
	adminEmail string
	deviceID   string
	label      *string
	isRevoked  bool
	lastSeenAt *time.Time
	createdAt  time.Time
}

func ReconstructAdminDevice(id uuid.UUID, adminEmail, deviceID string, label *string, isRevoked bool, lastSeenAt *time.Time, createdAt time.Time) *AdminDevice {
	return &AdminDevice{
		id:         id,
		adminEmail: adminEmail,
		deviceID:   deviceID,
		label:      label,
		isRevoked:  isRevoked,
		lastSeenAt: lastSeenAt,
		createdAt:  createdAt,
	}
}

// IsTrustedFor reports whether the device belongs to an allowed admin, is not revoked
// and carries exactly the presented token. allowed must already be lowercased.
func (d *AdminDevice) IsTrustedFor(allowed []string, presented string) bool {
	if d == nil || d.isRevoked || presented == "" || d.deviceID != presented {
		return false
	}
	return slices.Contains(allowed, strings.ToLower(d.adminEmail))
}

// Seen records a successful trust check. Older timestamps are ignored.
func (d *AdminDevice) Seen(at time.Time) {
	if d.lastSeenAt != nil && at.Before(*d.lastSeenAt) {
		return
	}
	d.lastSeenAt = &at
}

func (d *AdminDevice) ID() uuid.UUID          { return d.id }
func (d *AdminDevice) AdminEmail() string     { return d.adminEmail }
func (d *AdminDevice) DeviceID() string       { return d.deviceID }
func (d *AdminDevice) Label() *string         { return d.label }
func (d *AdminDevice) IsRevoked() bool        { return d.isRevoked }
func (d *AdminDevice) LastSeenAt() *time.Time { return d.lastSeenAt }
func (d *AdminDevice) CreatedAt() time.Time   { return d.createdAt }
