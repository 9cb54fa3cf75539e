package cmd

import (
	"context"
	"net/http"

	"luckycasino/config"
	"luckycasino/webserver"
)

// Serve runs the static file server used to preview the mini app locally
func Serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateWebServer(); err != nil {
		return err
	}

	var instrument func(http.Handler) http.Handler
	if m := startMetrics(ctx, cfg); m != nil {
		instrument = m.InstrumentHandler
	}

	server := webserver.New(webserver.Config{
		Port: cfg.WebServerPort,
		Dir:  cfg.WebServerDir,
	}, instrument)

	return server.Run(ctx)
}
