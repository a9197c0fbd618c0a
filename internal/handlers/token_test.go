package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pnrcheck/internal/metrics"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenHandlerServeHTTP(t *testing.T) {
	secret := "test-secret"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           `{"login":"svc-user","password":"correct-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           `{"login":"svc-user","password":"wrong-password"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown login",
			body:           `{"login":"intruder","password":"correct-password"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty credentials",
			body:           `{"login":"","password":""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTokenHandler("svc-user", passwordHash, secret, time.Hour, metrics.New())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				authHeader := w.Header().Get("Authorization")
				assert.True(t, strings.HasPrefix(authHeader, "Bearer "), "Authorization header must carry a bearer token")

				tokenString := strings.TrimPrefix(authHeader, "Bearer ")
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(secret), nil
				})
				assert.NoError(t, err)
				assert.True(t, token.Valid)

				claims, ok := token.Claims.(jwt.MapClaims)
				assert.True(t, ok)
				assert.Equal(t, "svc-user", claims["login"])
			}
		})
	}
}
