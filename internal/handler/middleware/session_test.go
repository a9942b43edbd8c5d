//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"runesse/internal/domain/user"
	"runesse/internal/pkg/cookie"
	"runesse/internal/pkg/jwt"
	"runesse/internal/usecase"
	usecasemock "runesse/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOptionalSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	email, err := user.NewEmail("b@x.com")
	require.NoError(t, err)
	identity := &usecase.Identity{Email: email, Role: user.RoleBuyer}

	type seen struct {
		email  string
		hasSes bool
		role   user.Role
	}

	run := func(t *testing.T, resolver usecase.SessionResolver, prepare func(*http.Request)) seen {
		t.Helper()
		var got seen
		r := gin.New()
		r.Use(NewSessionMiddleware(resolver).OptionalSession())
		r.GET("/", func(c *gin.Context) {
			got.email, got.hasSes = GetSessionEmail(c)
			got.role, _ = GetSessionRole(c)
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		prepare(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		return got
	}

	t.Run("bearer header", func(t *testing.T) {
		resolver := usecasemock.NewMockSessionResolver(gomock.NewController(t))
		resolver.EXPECT().Resolve("tok").Return(identity, nil)

		got := run(t, resolver, func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") })
		assert.True(t, got.hasSes)
		assert.Equal(t, "b@x.com", got.email)
		assert.Equal(t, user.RoleBuyer, got.role)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		resolver := usecasemock.NewMockSessionResolver(gomock.NewController(t))
		resolver.EXPECT().Resolve("from-cookie").Return(identity, nil)

		got := run(t, resolver, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "from-cookie"})
			r.Header.Set("Authorization", "Bearer from-header")
		})
		assert.True(t, got.hasSes)
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		resolver := usecasemock.NewMockSessionResolver(gomock.NewController(t))
		resolver.EXPECT().Resolve("bad").Return(nil, jwt.ErrInvalidToken)

		got := run(t, resolver, func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") })
		assert.False(t, got.hasSes)
	})

	t.Run("no token skips resolution", func(t *testing.T) {
		resolver := usecasemock.NewMockSessionResolver(gomock.NewController(t))
		got := run(t, resolver, func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") })
		assert.False(t, got.hasSes)
	})
}
