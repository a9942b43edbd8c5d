package usecase

import (
	"context"
	"log/slog"
	"time"

	"runesse/internal/domain/admindevice"
	"runesse/internal/infra"
	"runesse/internal/pkg/clock"
	"runesse/internal/pkg/config"
	"runesse/internal/pkg/errs"

	"github.com/google/uuid"
)

type AdminDeviceStore interface {
	FindTrusted(ctx context.Context, deviceID string, adminEmails []string) (*admindevice.AdminDevice, error)
	TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error
}

type TrustResult struct {
	Trusted bool
	Device  *admindevice.AdminDevice
}

type AdminDeviceTrust interface {
	// Check never fails for a missing or unknown cookie; only store failures return an error.
	Check(ctx context.Context, cookieValue string) (*TrustResult, error)
}

type adminDeviceTrustImpl struct {
	store  AdminDeviceStore
	admins []string
	clock  clock.Clock
	logger *slog.Logger
}

func NewAdminDeviceTrust(store AdminDeviceStore, cfg config.AdminConfig, clock clock.Clock, logger *slog.Logger) AdminDeviceTrust {
	return &adminDeviceTrustImpl{
		store:  store,
		admins: cfg.NormalizedEmails(),
		clock:  clock,
		logger: logger,
	}
}

func (a *adminDeviceTrustImpl) Check(ctx context.Context, cookieValue string) (*TrustResult, error) {
	if cookieValue == "" || len(a.admins) == 0 {
		return &TrustResult{}, nil
	}

	device, err := a.store.FindTrusted(ctx, cookieValue, a.admins)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &TrustResult{}, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "check admin device"), errs.ErrStore)
	}
	if !device.IsTrustedFor(a.admins, cookieValue) {
		return &TrustResult{}, nil
	}

	now := a.clock.Now()
	if err := a.store.TouchLastSeen(ctx, device.ID(), now); err != nil {
		a.logger.WarnContext(ctx, "failed to update admin device last seen",
			"device_id", device.ID().String(), "error", err)
	} else {
		device.Seen(now)
	}

	return &TrustResult{Trusted: true, Device: device}, nil
}
