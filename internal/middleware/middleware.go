package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"pnrcheck/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type loginKey struct{}

func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Printf("Middleware: missing or invalid Authorization header")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})

			if err != nil || !token.Valid {
				log.Printf("Middleware: invalid token: %v", err)
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				log.Printf("Middleware: invalid claims")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			exp, ok := claims["exp"].(float64)
			if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
				log.Printf("Middleware: token expired or invalid exp claim")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Token expired or invalid")
				return
			}

			login, ok := claims["login"].(string)
			if !ok || login == "" {
				log.Printf("Middleware: login not found in claims")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), loginKey{}, login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetLogin(r *http.Request) (string, bool) {
	login, ok := r.Context().Value(loginKey{}).(string)
	return login, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %s -> %d in %s", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
