package commands

import (
	"context"
	"log/slog"
	"time"

	"tautracker/lib/configuration"
	"tautracker/lib/serviceutil"
	"tautracker/tracker/page"
	"tautracker/tracker/session"

	"github.com/spf13/cobra"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var credentialsPath *string

func init() {
	credentialsPath = loginCmd.Flags().String(
		"credentials", "credentials.json5",
		"The json5 file holding the game username and password.",
	)
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login [--credentials <path/to/credentials.json5>]",
	Short: "Logs into the game and stores the session cookies for later scans.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		creds, err := configuration.Read[credentials](*credentialsPath)
		if err != nil {
			serviceutil.Fatal("failed to read credentials", err)
		}

		fetcher, err := page.NewFetcher(cfg.GameUrl)
		if err != nil {
			serviceutil.Fatal("failed to initialize fetcher", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Second*30)
		defer cancel()

		slog.Info("logging in", "username", creds.Username, "game", cfg.GameUrl)
		err = fetcher.Login(ctx, creds.Username, creds.Password)
		if err != nil {
			serviceutil.Fatal("failed to log in", err)
		}

		store, err := session.Open(cfg.SessionDb)
		if err != nil {
			serviceutil.Fatal("failed to open session db", err)
		}
		defer store.Close()

		err = store.Save(ctx, fetcher.Cookies())
		if err != nil {
			serviceutil.Fatal("failed to save session", err)
		}
		slog.Info("session saved", "db", cfg.SessionDb)
	},
}
