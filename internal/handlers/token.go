package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pnrcheck/internal/metrics"
	"pnrcheck/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type TokenHandler struct {
	login        string
	passwordHash []byte
	jwtSecret    string
	tokenTTL     time.Duration
	metrics      *metrics.Metrics
}

func NewTokenHandler(login string, passwordHash []byte, jwtSecret string, tokenTTL time.Duration, m *metrics.Metrics) *TokenHandler {
	return &TokenHandler{
		login:        login,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		metrics:      m,
	}
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode token request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Login == "" || req.Password == "" {
		log.Printf("Empty login or password")
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	if req.Login != h.login {
		log.Printf("Unknown login: %s", req.Login)
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		log.Printf("Invalid password for login %s", req.Login)
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": req.Login,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.IncrementTokensIssued()
	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
	log.Printf("Token issued for login %s", req.Login)
}
