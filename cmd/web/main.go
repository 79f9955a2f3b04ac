// Command web serves the read-only NewsPress front-end.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/ujsag/newspress/internal/client/rest"
	"github.com/ujsag/newspress/internal/web"
	"github.com/ujsag/newspress/pkg/logger"
)

type webConfig struct {
	Port     string `env:"PORT, default=8081"`
	APIURL   string `env:"NEWS_API_URL, default=http://localhost:8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

const shutdownTimeout = 10 * time.Second

func main() {
	var cfg webConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("port", cfg.Port).Str("api", cfg.APIURL).Msg("starting newspress web front-end")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := rest.New(cfg.APIURL, nil)
	e := web.NewRouter(api, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}
