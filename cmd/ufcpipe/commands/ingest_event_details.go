package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/ingest"

	"github.com/spf13/cobra"
)

var (
	eventDetailsInput    *string
	eventDetailsOutDir   *string
	eventDetailsSnapshot *string
	eventDetailsSleep    *float64
	eventDetailsLimit    *int
	eventDetailsTimeout  *int
	eventDetailsRetries  *int
)

var eventDetailsCmd = &cobra.Command{
	Use:   "event-details",
	Short: "Scrape each seed event's bout table into a raw snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newScrapeClient(cmd.Context(), *eventDetailsTimeout, *eventDetailsRetries)

		outPath, rows, err := ingest.EventDetails(cmd.Context(), client, ingest.EventDetailsOptions{
			InputPath: *eventDetailsInput,
			OutDir:    *eventDetailsOutDir,
			Snapshot:  *eventDetailsSnapshot,
			Sleep:     sleepDuration(*eventDetailsSleep),
			Limit:     *eventDetailsLimit,
		})
		if err != nil {
			serviceutil.Fatal("event details ingest failed", err)
		}
		slog.Info("wrote event details", "path", outPath, "bouts", rows)
	},
}

func init() {
	eventDetailsInput = eventDetailsCmd.Flags().String("input", "", "event_directory snapshot csv (required)")
	eventDetailsOutDir = eventDetailsCmd.Flags().String("out-dir", "", "output directory, defaults to data/raw")
	eventDetailsSnapshot = eventDetailsCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input file's date")
	eventDetailsSleep = eventDetailsCmd.Flags().Float64("sleep", 0.6, "seconds to sleep between page fetches")
	eventDetailsLimit = eventDetailsCmd.Flags().Int("limit", 0, "only process the first N events (0 = all)")
	eventDetailsTimeout = eventDetailsCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	eventDetailsRetries = eventDetailsCmd.Flags().Int("retries", 3, "fetch retries per page")
	eventDetailsCmd.MarkFlagRequired("input")
	ingestCmd.AddCommand(eventDetailsCmd)
}
