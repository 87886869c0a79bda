// @title         Dollar Words API
// @version       0.1.0
// @description   Converts amounts to check-writing words and keeps per session query logs
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"
	phttp "dollarwords/internal/platform/net/http"

	"dollarwords/internal/services/api"
	currencymod "dollarwords/internal/services/api/currency/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*), currency reads CORE_CURRENCY_*
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Currency:       currencymod.FromConfig(root),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT or SIGTERM, then drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
