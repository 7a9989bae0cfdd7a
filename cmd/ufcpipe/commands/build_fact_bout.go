package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/build"

	"github.com/spf13/cobra"
)

var (
	factBoutInput    *string
	factBoutDimEvent *string
	factBoutOutDir   *string
	factBoutSnapshot *string
)

var factBoutCmd = &cobra.Command{
	Use:   "fact-bout",
	Short: "Build the bout fact table from a raw event_details snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		outPath, err := build.FactBoutFile(build.FactBoutOptions{
			EventDetailsPath: *factBoutInput,
			DimEventPath:     *factBoutDimEvent,
			OutDir:           *factBoutOutDir,
			Snapshot:         *factBoutSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("fact_bout build failed", err)
		}
		slog.Info("wrote fact_bout", "path", outPath)
	},
}

func init() {
	factBoutInput = factBoutCmd.Flags().String("input", "", "raw event_details snapshot csv (required)")
	factBoutDimEvent = factBoutCmd.Flags().String("dim-event", "", "dim_event csv for the is_ufc join (optional)")
	factBoutOutDir = factBoutCmd.Flags().String("out-dir", "", "output directory, defaults to data/processed")
	factBoutSnapshot = factBoutCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input file's date")
	factBoutCmd.MarkFlagRequired("input")
	buildCmd.AddCommand(factBoutCmd)
}
