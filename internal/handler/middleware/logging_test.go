//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"runesse/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	l := &Logger{
		logger:   slog.New(slog.NewJSONHandler(buf, nil)),
		cfg:      config.LogConfig{Level: "info"},
		timezone: time.UTC,
	}

	var requestID string
	r := gin.New()
	r.Use(l.LoggingMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		requestID = GetRequestID(c)
		c.Set(ctxSessionEmailKey, "b@x.com")
		c.Status(http.StatusOK)
	})
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), requestID)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	assert.Contains(t, buf.String(), `"session_email":"b@x.com"`)
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
