package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/ingest"

	"github.com/spf13/cobra"
)

var (
	eventDirectorySnapshot *string
	eventDirectoryOut      *string
	eventDirectoryTimeout  *int
	eventDirectoryRetries  *int
)

var eventDirectoryCmd = &cobra.Command{
	Use:   "event-directory",
	Short: "Scrape the completed-events listing into a raw snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newScrapeClient(cmd.Context(), *eventDirectoryTimeout, *eventDirectoryRetries)

		outPath, rows, err := ingest.EventDirectory(cmd.Context(), client, ingest.EventDirectoryOptions{
			Snapshot: *eventDirectorySnapshot,
			OutPath:  *eventDirectoryOut,
		})
		if err != nil {
			serviceutil.Fatal("event directory ingest failed", err)
		}
		slog.Info("wrote event directory", "path", outPath, "rows", rows)
	},
}

func init() {
	eventDirectorySnapshot = eventDirectoryCmd.Flags().String("snapshot", "", "snapshot date (YYYY-MM-DD), defaults to today UTC")
	eventDirectoryOut = eventDirectoryCmd.Flags().String("out", "", "output csv path override")
	eventDirectoryTimeout = eventDirectoryCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	eventDirectoryRetries = eventDirectoryCmd.Flags().Int("retries", 3, "fetch retries per page")
	ingestCmd.AddCommand(eventDirectoryCmd)
}
