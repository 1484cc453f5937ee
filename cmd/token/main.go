package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"culture-match/internal/config"
	"culture-match/internal/logger"
	"culture-match/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Issues an access token for a respondent, signed with the configured auth.jwt_secret.
// Meant for local development when no hosting application issues tokens.
func main() {
	respondentID := pflag.StringP("respondent", "r", "", "respondent id to put in the token subject")
	ttl := pflag.DurationP("ttl", "t", 24*time.Hour, "token lifetime")
	pflag.Parse()

	if *respondentID == "" {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		l.Fatal("auth.jwt_secret is not set")
	}

	token, err := service.NewAuthService(cfg.Auth.JWTSecret).CreateJWT(*respondentID, *ttl)
	if err != nil {
		l.Fatal("Failed to sign token", zap.Error(err))
	}
	l.Info("Issued access token", zap.String("respondent_id", *respondentID), zap.Duration("ttl", *ttl))
	fmt.Println(token)
}
