package config

import (
	"errors"
	"flag"
	"log"

	"pnrcheck/internal/constants"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddr       string `env:"RUN_ADDRESS"`
	JWTSecret     string `env:"JWT_SECRET"`
	AuthLogin     string `env:"AUTH_LOGIN"`
	AuthPassword  string `env:"AUTH_PASSWORD"`
	TokenTTLHours int    `env:"TOKEN_TTL"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{
		RunAddr:       ":8080",
		JWTSecret:     constants.DefaultJWTSecret,
		TokenTTLHours: constants.DefaultTokenTTL,
	}

	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	flag.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	flag.StringVar(&cfg.AuthLogin, "l", cfg.AuthLogin, "API login")
	flag.StringVar(&cfg.AuthPassword, "p", cfg.AuthPassword, "API password")
	flag.IntVar(&cfg.TokenTTLHours, "t", cfg.TokenTTLHours, "token TTL in hours")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.AuthLogin == "" || cfg.AuthPassword == "" {
		log.Printf("Error: AUTH_LOGIN and AUTH_PASSWORD are empty")
		return nil, errors.New("AUTH_LOGIN and AUTH_PASSWORD are required")
	}

	if cfg.TokenTTLHours <= 0 {
		log.Printf("Invalid token TTL, falling back to default %dh", constants.DefaultTokenTTL)
		cfg.TokenTTLHours = constants.DefaultTokenTTL
	}

	if cfg.JWTSecret == constants.DefaultJWTSecret {
		log.Println("JWT_SECRET not set, using default")
	}

	log.Printf("Config loaded: RunAddr=%s, TokenTTL=%dh", cfg.RunAddr, cfg.TokenTTLHours)
	return cfg, nil
}
