package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	adapthttp "feedbackapp/internal/adapter/http"
	"feedbackapp/internal/adapter/memory"
	"feedbackapp/internal/adapter/postgres"
	"feedbackapp/internal/app"
	"feedbackapp/internal/config"
	"feedbackapp/internal/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	var (
		users    domain.UserRepository
		sessions domain.SessionRepository
		feedback domain.FeedbackRepository
	)
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory storage")
		mem := memory.New()
		users = mem
		sessions = mem.NewSessionRepo()
		feedback = mem.NewFeedbackRepo()
	} else {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("db open")
		}
		defer func() { _ = db.Close() }()
		users = db
		sessions = postgres.NewSessionRepo(db)
		feedback = postgres.NewFeedbackRepo(db)
	}

	authSvc := app.NewAuthService(users, sessions, cfg.SessionTTL)
	feedbackSvc := app.NewFeedbackService(feedback)

	oidcCfg, err := adapthttp.NewOIDCConfig(context.Background(), cfg.OIDC)
	if err != nil {
		log.Fatal().Err(err).Msg("oidc setup")
	}

	h := adapthttp.New(authSvc, feedbackSvc, oidcCfg, cfg.SessionTTL).Handler()
	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}
