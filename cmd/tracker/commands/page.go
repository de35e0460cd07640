package commands

import (
	"os"

	"tautracker/lib/serviceutil"
	"tautracker/tracker/page"

	"github.com/spf13/cobra"
)

var pageUrl *string

func init() {
	pageUrl = pageCmd.Flags().String("url", "", "The game url the file was saved from, which decides the extractor.")
	_ = pageCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(pageCmd)
}

var pageCmd = &cobra.Command{
	Use:   "page --url <game url> <path/to/saved.html>",
	Short: "Submits a saved page file instead of fetching it, useful for replays and debugging.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			serviceutil.Fatal("failed to open page file", err)
		}
		defer f.Close()

		p, err := page.FromReader(*pageUrl, f)
		if err != nil {
			serviceutil.Fatal("failed to parse page", err)
		}

		cfg := loadConfig()
		router := newRouter(cfg)
		router.Route(cmd.Context(), p)
		router.Wait()
	},
}
