package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/ingest"

	"github.com/spf13/cobra"
)

var (
	fightDetailsInput    *string
	fightDetailsOutDir   *string
	fightDetailsSnapshot *string
	fightDetailsSleep    *float64
	fightDetailsLimit    *int
	fightDetailsResume   *bool
	fightDetailsTimeout  *int
	fightDetailsRetries  *int
)

var fightDetailsCmd = &cobra.Command{
	Use:   "fight-details",
	Short: "Scrape per-fight detail pages into an append-only raw snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newScrapeClient(cmd.Context(), *fightDetailsTimeout, *fightDetailsRetries)

		outPath, rows, err := ingest.FightDetails(cmd.Context(), client, ingest.FightDetailsOptions{
			InputPath: *fightDetailsInput,
			OutDir:    *fightDetailsOutDir,
			Snapshot:  *fightDetailsSnapshot,
			Sleep:     sleepDuration(*fightDetailsSleep),
			Limit:     *fightDetailsLimit,
			Resume:    *fightDetailsResume,
		})
		if err != nil {
			serviceutil.Fatal("fight details ingest failed", err)
		}
		slog.Info("wrote fight details", "path", outPath, "processed", rows)
	},
}

func init() {
	fightDetailsInput = fightDetailsCmd.Flags().String("input", "", "event_details snapshot csv (required)")
	fightDetailsOutDir = fightDetailsCmd.Flags().String("out-dir", "", "output directory, defaults to data/raw")
	fightDetailsSnapshot = fightDetailsCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input file's date")
	fightDetailsSleep = fightDetailsCmd.Flags().Float64("sleep", 0.6, "seconds to sleep between page fetches")
	fightDetailsLimit = fightDetailsCmd.Flags().Int("limit", 0, "only process the first N fights (0 = all)")
	fightDetailsResume = fightDetailsCmd.Flags().Bool("resume", false, "skip fights already present in the output file")
	fightDetailsTimeout = fightDetailsCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	fightDetailsRetries = fightDetailsCmd.Flags().Int("retries", 3, "fetch retries per page")
	fightDetailsCmd.MarkFlagRequired("input")
	ingestCmd.AddCommand(fightDetailsCmd)
}
