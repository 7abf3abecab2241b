package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrm/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func sign(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/taxes", RequireRole(secret, "admin", "manager"), func(c *gin.Context) {
		c.String(http.StatusOK, requestctx.Actor(c.Request.Context()))
	})

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "missing", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Token abc", wantCode: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + sign(t, []byte("other"), jwt.MapClaims{"sub": "u1", "role": "admin"}), wantCode: http.StatusUnauthorized},
		{name: "no role", header: "Bearer " + sign(t, secret, jwt.MapClaims{"sub": "u1"}), wantCode: http.StatusForbidden},
		{name: "role not allowed", header: "Bearer " + sign(t, secret, jwt.MapClaims{"sub": "u1", "role": "staff"}), wantCode: http.StatusForbidden},
		{name: "bearer ok", header: "Bearer " + sign(t, secret, jwt.MapClaims{"sub": "u1", "role": "manager"}), wantCode: http.StatusOK, wantBody: "u1"},
		{name: "cookie ok", cookie: sign(t, secret, jwt.MapClaims{"sub": 42, "role": "admin"}), wantCode: http.StatusOK, wantBody: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/taxes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
