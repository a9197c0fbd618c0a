package router

import (
	"time"

	"pnrcheck/internal/config"
	"pnrcheck/internal/handlers"
	"pnrcheck/internal/metrics"
	"pnrcheck/internal/middleware"
	"pnrcheck/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
)

const (
	PNRPrefix    = "/api/pnr"
	ValidatePath = "/validate"
	TokenPath    = "/api/auth/token"
	MetricsPath  = "/metrics"
	PingPath     = "/ping"
)

func SetupRoutes(cfg *config.Config) (*chi.Mux, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AuthPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	validator := validation.NewDefaultPNRValidator()
	validateHandler := handlers.NewValidateHandler(validator, m)
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)

	r.Post(TokenPath, handlers.NewTokenHandler(cfg.AuthLogin, passwordHash, cfg.JWTSecret, tokenTTL, m).ServeHTTP)
	r.Get(PingPath, handlers.Ping)
	r.Handle(MetricsPath, promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Post(PNRPrefix+ValidatePath, validateHandler.ServeHTTP)
		r.Get(PNRPrefix+ValidatePath+"/{number}", validateHandler.ServeHTTPParam)
	})

	return r, nil
}
