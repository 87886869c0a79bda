// Package api provides the HTTP API for the application
package api

import (
	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"
	phttp "dollarwords/internal/platform/net/http"

	"dollarwords/internal/modkit"
	"dollarwords/internal/modkit/httpkit"
	"dollarwords/internal/modkit/module"
	"dollarwords/internal/modkit/swaggerkit"

	currencymod "dollarwords/internal/services/api/currency/module"
	metamod "dollarwords/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Currency       currencymod.Options
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	} else {
		deps.Log = *logger.Get()
	}

	// currency owns the converter, meta reads its policy through the port
	currency := currencymod.New(deps, opt.Currency)
	conv := module.MustPortsOf[currencymod.Ports](currency).Converter

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Converter: conv})),
		currency,
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.Config, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack, CORE_API_CORS_ORIGINS narrows cors
	cors := httpkit.CORSOptions{AllowedOrigins: opt.Config.Prefix("CORE_API_").MayCSV("CORS_ORIGINS", nil)}
	httpkit.MountAPIV1(r, httpkit.CommonStack(cors), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Log.Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}
