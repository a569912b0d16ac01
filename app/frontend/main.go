// The dashboard server. Configure with a YAML file named by $LAUNCHDB_CONFIG (optional), and
// the PORT / LAUNCHDB_DATA / GOOGLE_CLOUD_PROJECT environment variables.
package main

import(
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skypies/launchdb/config"
	"github.com/skypies/launchdb/logger"
	"github.com/skypies/launchdb/ui"
)

func main() {
	cfg,err := config.Load(os.Getenv("LAUNCHDB_CONFIG"))
	if err != nil {
		logger.Log().Fatal().Err(err).Msg("config")
	}
	if err := logger.Setup(cfg.LogFormat, cfg.LogLevel); err != nil {
		logger.Log().Fatal().Err(err).Msg("logger")
	}

	ctx,stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d,err := ui.LoadDashboard(ctx, cfg)
	if err != nil {
		logger.Log().Fatal().Err(err).Msg("startup")
	}

	logger.Log().Info().Str("title", cfg.Title).Msg("[launchdb/app/frontend]")
	if err := ui.Serve(ctx, cfg.Addr(), d.Routes()); err != nil {
		logger.Log().Fatal().Err(err).Msg("serve")
	}
}
