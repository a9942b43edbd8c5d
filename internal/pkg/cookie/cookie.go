package cookie

import (
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "runesse_session"

// GetAdminDevice returns the admin device token as sent, or "" when the cookie is absent.
func GetAdminDevice(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}
