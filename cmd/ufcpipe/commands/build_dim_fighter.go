package commands

import (
	"log/slog"

	"ufcpipe/lib/serviceutil"
	"ufcpipe/services/build"

	"github.com/spf13/cobra"
)

var (
	dimFighterDirectory *string
	dimFighterDetails   *string
	dimFighterFactBout  *string
	dimFighterOutDir    *string
	dimFighterSnapshot  *string
)

var dimFighterCmd = &cobra.Command{
	Use:   "dim-fighter",
	Short: "Build the fighter dimension from directory, details and fact_bout.",
	Run: func(cmd *cobra.Command, args []string) {
		outPath, err := build.DimFighterFile(build.DimFighterOptions{
			FighterDirectoryPath: *dimFighterDirectory,
			FighterDetailsPath:   *dimFighterDetails,
			FactBoutPath:         *dimFighterFactBout,
			OutDir:               *dimFighterOutDir,
			Snapshot:             *dimFighterSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("dim_fighter build failed", err)
		}
		slog.Info("wrote dim_fighter", "path", outPath)
	},
}

func init() {
	dimFighterDirectory = dimFighterCmd.Flags().String("directory", "", "raw fighter_directory snapshot csv (required)")
	dimFighterDetails = dimFighterCmd.Flags().String("details", "", "raw fighter_details snapshot csv (required)")
	dimFighterFactBout = dimFighterCmd.Flags().String("fact-bout", "", "fact_bout csv for participation flags (required)")
	dimFighterOutDir = dimFighterCmd.Flags().String("out-dir", "", "output directory, defaults to data/processed")
	dimFighterSnapshot = dimFighterCmd.Flags().String("snapshot", "", "snapshot date, defaults to the input files' date")
	dimFighterCmd.MarkFlagRequired("directory")
	dimFighterCmd.MarkFlagRequired("details")
	dimFighterCmd.MarkFlagRequired("fact-bout")
	buildCmd.AddCommand(dimFighterCmd)
}
