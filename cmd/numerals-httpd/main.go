// numerals-httpd serves numeral conversions over HTTP.
//
// Endpoints:
//
//	GET /v1/roman/{number}    - Roman-numeral text for an integer in [1,3999]
//	GET /v1/ternary/{number}  - balanced-ternary text for any int64
//	GET /healthz              - liveness probe
//	GET /metrics              - prometheus metrics
//
// Configuration comes from the environment:
//
//	NUMERALS_ADDR          listen address (default ":8080")
//	NUMERALS_LOG_LEVEL     zerolog level (default "info")
//	NUMERALS_RATE_LIMIT    per-IP requests per window, 0 disables (default 60)
//	NUMERALS_RATE_WINDOW   rate-limit window (default "1m")
//	NUMERALS_READ_TIMEOUT  HTTP read timeout (default "10s")
//	NUMERALS_WRITE_TIMEOUT HTTP write timeout (default "10s")
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/numerals-go/numerals/internal/api"
	xlog "github.com/numerals-go/numerals/internal/log"
)

type config struct {
	Addr         string        `env:"NUMERALS_ADDR" envDefault:":8080"`
	LogLevel     string        `env:"NUMERALS_LOG_LEVEL" envDefault:"info"`
	RateLimit    int           `env:"NUMERALS_RATE_LIMIT" envDefault:"60"`
	RateWindow   time.Duration `env:"NUMERALS_RATE_WINDOW" envDefault:"1m"`
	ReadTimeout  time.Duration `env:"NUMERALS_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"NUMERALS_WRITE_TIMEOUT" envDefault:"10s"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		base := xlog.Base()
		base.Fatal().Err(err).Msg("parse environment")
	}
	xlog.Configure(xlog.Config{Level: cfg.LogLevel, Service: "numerals-httpd"})
	logger := xlog.WithComponent("main")

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.New(api.Config{RateLimit: cfg.RateLimit, RateWindow: cfg.RateWindow}).Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("serve")
		}
	}
}
