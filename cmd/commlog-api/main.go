// @title         Commlog API
// @version       0.1.0
// @description   Read only call and SMS log over Google Calendar

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"commlog/internal/adapters/calendar/google"
	"commlog/internal/platform/config"
	"commlog/internal/platform/logger"
	phttp "commlog/internal/platform/net/http"

	"commlog/internal/services/api"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env first so the logger and config see its values
	envPath, envErr := config.LoadDotEnv(".env")

	logger.Init(logger.FromEnv())
	l := logger.Get()
	if envErr != nil {
		l.Warn().Err(envErr).Msg("failed to load .env")
	} else if envPath != "" {
		l.Debug().Str("path", envPath).Msg("loaded .env")
	}

	// service-scoped config for HTTP etc (CORE_API_*), credentials live under GOOGLE_*
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := apiCfg.MayLocation("DISPLAY_TZ", defaultLocation())

	provider, err := google.New(ctx, google.OptionsFromConfig(root, apiCfg))
	if err != nil {
		l.Panic().Err(err).Msg("google calendar client failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opt := api.OptionsFromConfig(apiCfg)
	opt.Provider = provider
	opt.Location = loc
	opt.Logger = l
	api.Mount(srv.Router(), opt)

	l.Info().
		Str("tz", loc.String()).
		Bool("swagger", opt.EnableSwagger).
		Bool("metrics", opt.EnableMetrics).
		Bool("profiler", opt.EnableProfiler).
		Msg("commlog api starting")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}

// defaultLocation is Europe/Prague, UTC when tzdata is unavailable
func defaultLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		return time.UTC
	}
	return loc
}
