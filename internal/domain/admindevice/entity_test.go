//go:build unit

package admindevice_test

import (
	"testing"
	"time"

	"runesse/internal/domain/admindevice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(email, token string, revoked bool) *admindevice.AdminDevice {
	return admindevice.ReconstructAdminDevice(uuid.New(), email, token, nil, revoked, nil, time.Now())
}

func TestAdminDevice_IsTrustedFor(t *testing.T) {
	allowed := []string{"admin@runesse.app"}

	tests := []struct {
		name      string
		device    *admindevice.AdminDevice
		presented string
		want      bool
	}{
		{name: "matching admin and token", device: newDevice("admin@runesse.app", "tok-1", false), presented: "tok-1", want: true},
		{name: "admin email compared case-insensitively", device: newDevice("Admin@Runesse.app", "tok-1", false), presented: "tok-1", want: true},
		{name: "no cookie", device: newDevice("admin@runesse.app", "tok-1", false), presented: "", want: false},
		{name: "revoked device", device: newDevice("admin@runesse.app", "tok-1", true), presented: "tok-1", want: false},
		{name: "mismatched device id", device: newDevice("admin@runesse.app", "tok-1", false), presented: "tok-2", want: false},
		{name: "surrounding whitespace is not ignored", device: newDevice("admin@runesse.app", "tok-1", false), presented: " tok-1 ", want: false},
		{name: "mismatched admin email", device: newDevice("someone@runesse.app", "tok-1", false), presented: "tok-1", want: false},
		{name: "nil device", device: nil, presented: "tok-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.device.IsTrustedFor(allowed, tt.presented))
		})
	}
}

func TestAdminDevice_Seen(t *testing.T) {
	d := newDevice("admin@runesse.app", "tok-1", false)
	require.Nil(t, d.LastSeenAt())

	t1 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d.Seen(t1)
	require.NotNil(t, d.LastSeenAt())
	assert.Equal(t, t1, *d.LastSeenAt())

	d.Seen(t1.Add(-time.Minute))
	assert.Equal(t, t1, *d.LastSeenAt(), "older timestamp must not move lastSeenAt backwards")

	d.Seen(t1.Add(time.Minute))
	assert.Equal(t, t1.Add(time.Minute), *d.LastSeenAt())
	assert.False(t, d.IsRevoked())
}
