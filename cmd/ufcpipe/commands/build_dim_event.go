package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/build"

	"github.com/spf13/cobra"
)

var (
	dimEventInput    *string
	dimEventOutDir   *string
	dimEventSnapshot *string
)

var dimEventCmd = &cobra.Command{
	Use:   "dim-event",
	Short: "Build the event dimension from a raw event_directory snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		outPath, err := build.DimEventFile(build.DimEventOptions{
			EventDirectoryPath: *dimEventInput,
			OutDir:             *dimEventOutDir,
			Snapshot:           *dimEventSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("dim_event build failed", err)
		}
		slog.Info("wrote dim_event", "path", outPath)
	},
}

func init() {
	dimEventInput = dimEventCmd.Flags().String("input", "", "raw event_directory snapshot csv (required)")
	dimEventOutDir = dimEventCmd.Flags().String("out-dir", "", "output directory, defaults to data/processed")
	dimEventSnapshot = dimEventCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input file's date")
	dimEventCmd.MarkFlagRequired("input")
	buildCmd.AddCommand(dimEventCmd)
}
