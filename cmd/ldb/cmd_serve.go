package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skypies/launchdb/config"
	"github.com/skypies/launchdb/ui"
)

func newServeCmd(gf *globalFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		Long: `Loads the launch records once, then serves the dashboard until interrupted.
The port comes from --port, else $PORT, else the config file, else 8050.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx,stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg,d,err := gf.loadDashboard(ctx, func(c *config.Config) {
				if cmd.Flags().Changed("port") { c.Port = port }
			})
			if err != nil { return err }

			return ui.Serve(ctx, cfg.Addr(), d.Routes())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port")

	return cmd
}
