package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/config"
	"github.com/skypies/launchdb/logger"
	"github.com/skypies/launchdb/ui"
)

// version is set at build time via -ldflags.
var version = "dev"

// Flags shared by every subcommand
type globalFlags struct {
	ConfigFile string
	Data       []string
	LogLevel   string
}

// Flags for the subcommands that work on a selection of launches
type selectionFlags struct {
	Site   string
	Lo, Hi float64
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "ldb",
		Short: "Launch records dashboard, and offline views of the same charts",
		Long:  "ldb serves the launch records dashboard, or prints/exports its charts and reports\nfor a given launch site and payload range.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&gf.ConfigFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringArrayVar(&gf.Data, "data", nil, "data source (repeatable): file.csv[.gz], gs://bucket/obj, bq://[proj.]dataset.table")
	rootCmd.PersistentFlags().StringVar(&gf.LogLevel, "log-level", "", "trace, debug, info, warn or error")

	rootCmd.AddCommand(newServeCmd(gf))
	rootCmd.AddCommand(newPieCmd(gf))
	rootCmd.AddCommand(newScatterCmd(gf))
	rootCmd.AddCommand(newReportCmd(gf))
	rootCmd.AddCommand(newPdfCmd(gf))
	rootCmd.AddCommand(newSitesCmd(gf))

	return rootCmd
}

// {{{ gf.loadConfig, gf.loadDashboard

// Precedence, lowest first: built-in defaults, the config file, the environment, then flags.
// Subcommands pass in setters for their own flags, so everything is validated together.
func (gf *globalFlags)loadConfig(flagSetters ...func(*config.Config)) (config.Config, error) {
	cfg,err := config.Load(gf.ConfigFile)
	if err != nil { return cfg, err }

	if len(gf.Data) > 0 { cfg.Data = gf.Data }
	if gf.LogLevel != "" { cfg.LogLevel = gf.LogLevel }
	for _,set := range flagSetters { set(&cfg) }

	if err := logger.Setup(cfg.LogFormat, cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (gf *globalFlags)loadDashboard(ctx context.Context, flagSetters ...func(*config.Config)) (config.Config, *ui.Dashboard, error) {
	cfg,err := gf.loadConfig(flagSetters...)
	if err != nil { return cfg, nil, err }

	d,err := ui.LoadDashboard(ctx, cfg)
	return cfg, d, err
}

// }}}
// {{{ selectionFlags

func addSelectionFlags(cmd *cobra.Command, sf *selectionFlags, withRange bool) {
	cmd.Flags().StringVar(&sf.Site, "site", ldb.AllSites, "launch site")
	if withRange {
		cmd.Flags().Float64Var(&sf.Lo, "lo", 0, "lowest payload, kg (default: table minimum)")
		cmd.Flags().Float64Var(&sf.Hi, "hi", 0, "highest payload, kg (default: table maximum)")
	}
}

// Range fills in whichever of lo/hi weren't given from the table's bounds.
func (sf selectionFlags)Range(cmd *cobra.Command, ls ldb.LaunchSet) ldb.PayloadRange {
	r := ls.PayloadBounds()
	if cmd.Flags().Changed("lo") { r.Lo = sf.Lo }
	if cmd.Flags().Changed("hi") { r.Hi = sf.Hi }
	return r
}

// }}}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
