package commands

import (
	"log/slog"
	"strings"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/ingest"

	"github.com/spf13/cobra"
)

var (
	fighterDirectorySnapshot *string
	fighterDirectoryOut      *string
	fighterDirectoryChars    *string
	fighterDirectoryTimeout  *int
	fighterDirectoryRetries  *int
)

var fighterDirectoryCmd = &cobra.Command{
	Use:   "fighter-directory",
	Short: "Scrape the A-Z fighters directory into a raw snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newScrapeClient(cmd.Context(), *fighterDirectoryTimeout, *fighterDirectoryRetries)

		var chars []string
		if *fighterDirectoryChars != "" {
			for _, c := range strings.Split(*fighterDirectoryChars, ",") {
				c = strings.ToUpper(strings.TrimSpace(c))
				if c != "" {
					chars = append(chars, c)
				}
			}
		}

		outPath, rows, err := ingest.FighterDirectory(cmd.Context(), client, ingest.FighterDirectoryOptions{
			Snapshot: *fighterDirectorySnapshot,
			OutPath:  *fighterDirectoryOut,
			Chars:    chars,
		})
		if err != nil {
			serviceutil.Fatal("fighter directory ingest failed", err)
		}
		slog.Info("wrote fighter directory", "path", outPath, "rows", rows)
	},
}

func init() {
	fighterDirectorySnapshot = fighterDirectoryCmd.Flags().String("snapshot", "", "snapshot date (YYYY-MM-DD), defaults to today UTC")
	fighterDirectoryOut = fighterDirectoryCmd.Flags().String("out", "", "output csv path override")
	fighterDirectoryChars = fighterDirectoryCmd.Flags().String("chars", "", "comma-separated char partitions, defaults to A-Z")
	fighterDirectoryTimeout = fighterDirectoryCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	fighterDirectoryRetries = fighterDirectoryCmd.Flags().Int("retries", 3, "fetch retries per page")
	ingestCmd.AddCommand(fighterDirectoryCmd)
}
