package commands

import (
	"errors"
	"log/slog"
	"time"

	"tautracker/lib/serviceutil"
	"tautracker/tracker/page"
	"tautracker/tracker/session"

	"github.com/spf13/cobra"
)

// pages worth visiting on every run; vendors and item pages vary per
// station and are passed explicitly
var errLoginRequired = errors.New("run `tautracker login` first")

var defaultScanPaths = []string{
	"/career",
	"/area/local-shuttles",
	"/area/docks",
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Fetches game pages with the stored session and submits whatever they contain.",
	Long: `Fetches game pages with the stored session and submits whatever they contain.

Without arguments it visits the career, shuttle and docks pages of the
current station. Pass paths (e.g. /area/vendors/the-wheelhouse) to
visit those instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		router := newRouter(cfg)

		fetcher, err := page.NewFetcher(cfg.GameUrl)
		if err != nil {
			serviceutil.Fatal("failed to initialize fetcher", err)
		}

		store, err := session.Open(cfg.SessionDb)
		if err != nil {
			serviceutil.Fatal("failed to open session db", err)
		}
		defer store.Close()

		cookies, err := store.Load(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load session", err)
		}
		if len(cookies) == 0 {
			serviceutil.Fatal("no stored session", errLoginRequired)
		}
		fetcher.SetCookies(cookies)

		paths := args
		if len(paths) == 0 {
			paths = defaultScanPaths
		}

		t1 := time.Now()
		for _, path := range paths {
			p, err := fetcher.Fetch(cmd.Context(), path)
			if err != nil {
				slog.Error("failed to fetch page", "path", path, "err", err)
				continue
			}
			router.Route(cmd.Context(), p)
		}
		router.Wait()
		slog.Info("scan time", "seconds", time.Since(t1).Seconds())

		// the game rotates session cookies, keep the freshest set
		err = store.Save(cmd.Context(), fetcher.Cookies())
		if err != nil {
			slog.Warn("failed to save session back", "err", err)
		}
	},
}
