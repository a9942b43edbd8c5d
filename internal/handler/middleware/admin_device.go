package middleware

import (
	"net/http"

	"runesse/internal/handler/httperr"
	"runesse/internal/pkg/config"
	"runesse/internal/pkg/cookie"
	"runesse/internal/pkg/errs"
	"runesse/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminDeviceKey = "admin_device"

var errUntrustedDevice = errs.New("admin device not trusted")

type AdminDeviceMiddleware struct {
	trust      usecase.AdminDeviceTrust
	cookieName string
}

func NewAdminDeviceMiddleware(trust usecase.AdminDeviceTrust, cfg config.AdminConfig) *AdminDeviceMiddleware {
	return &AdminDeviceMiddleware{
		trust:      trust,
		cookieName: cfg.CookieName,
	}
}

func (m *AdminDeviceMiddleware) RequireTrustedDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := m.trust.Check(c.Request.Context(), cookie.GetAdminDevice(c, m.cookieName))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if !result.Trusted {
			httperr.AbortWithError(c, http.StatusForbidden, errUntrustedDevice, "device not trusted")
			return
		}

		c.Set(ctxAdminDeviceKey, result.Device.AdminEmail())
		c.Next()
	}
}

// GetAdminEmail returns the admin owning the trusted device, set by RequireTrustedDevice.
func GetAdminEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminDeviceKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
