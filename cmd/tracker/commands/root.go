package commands

import (
	"context"
	"fmt"
	"os"

	"tautracker/lib/serviceutil"
	"tautracker/lib/telemetry"
	"tautracker/tracker"
	"tautracker/tracker/api"
	"tautracker/tracker/notify"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tautracker",
	Short: "tautracker collects game-world data from Tau Station pages and submits it to the community tracker.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "The preference file to read.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() tracker.Config {
	cfg, err := tracker.LoadConfig(configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func newRouter(cfg tracker.Config) *tracker.Router {
	return tracker.NewRouter(cfg, api.NewClient(cfg.BaseUrl, cfg.Token), notify.Default())
}
