package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/ingest"

	"github.com/spf13/cobra"
)

var (
	fighterDetailsInput    *string
	fighterDetailsOutDir   *string
	fighterDetailsSnapshot *string
	fighterDetailsSleep    *float64
	fighterDetailsLimit    *int
	fighterDetailsTimeout  *int
	fighterDetailsRetries  *int
)

var fighterDetailsCmd = &cobra.Command{
	Use:   "fighter-details",
	Short: "Scrape each seed fighter's profile stats into a raw snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newScrapeClient(cmd.Context(), *fighterDetailsTimeout, *fighterDetailsRetries)

		outPath, rows, err := ingest.FighterDetails(cmd.Context(), client, ingest.FighterDetailsOptions{
			InputPath: *fighterDetailsInput,
			OutDir:    *fighterDetailsOutDir,
			Snapshot:  *fighterDetailsSnapshot,
			Sleep:     sleepDuration(*fighterDetailsSleep),
			Limit:     *fighterDetailsLimit,
		})
		if err != nil {
			serviceutil.Fatal("fighter details ingest failed", err)
		}
		slog.Info("wrote fighter details", "path", outPath, "rows", rows)
	},
}

func init() {
	fighterDetailsInput = fighterDetailsCmd.Flags().String("input", "", "fighter_directory snapshot csv (required)")
	fighterDetailsOutDir = fighterDetailsCmd.Flags().String("out-dir", "", "output directory, defaults to data/raw")
	fighterDetailsSnapshot = fighterDetailsCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input file's date")
	fighterDetailsSleep = fighterDetailsCmd.Flags().Float64("sleep", 0.6, "seconds to sleep between page fetches")
	fighterDetailsLimit = fighterDetailsCmd.Flags().Int("limit", 0, "only process the first N fighters (0 = all)")
	fighterDetailsTimeout = fighterDetailsCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	fighterDetailsRetries = fighterDetailsCmd.Flags().Int("retries", 3, "fetch retries per page")
	fighterDetailsCmd.MarkFlagRequired("input")
	ingestCmd.AddCommand(fighterDetailsCmd)
}
