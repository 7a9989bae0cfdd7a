package commands

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"ufcpipe/lib/configutil"
	"ufcpipe/lib/serviceutil"
	"ufcpipe/lib/textutil"
	"ufcpipe/services/build"
	"ufcpipe/services/ingest"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type PipelineConfig struct {
	RawDir         string  `json:"raw_dir"`
	ProcessedDir   string  `json:"processed_dir"`
	SleepSeconds   float64 `json:"sleep_seconds"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	Retries        int     `json:"retries"`
	LimitFights    int     `json:"limit_fights"`
	Resume         bool    `json:"resume"`
}

var (
	pipelineConfigPath *string
	pipelineSnapshot   *string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full scrape-then-build pipeline for one snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// .env is optional, same as the config file.
		godotenv.Load()

		config, err := configutil.ReadConfig[PipelineConfig](*pipelineConfigPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			serviceutil.Fatal("failed to read pipeline config", err)
		}
		if config.SleepSeconds == 0 {
			config.SleepSeconds = 0.6
		}
		if config.TimeoutSeconds == 0 {
			config.TimeoutSeconds = 30
		}
		if config.Retries == 0 {
			config.Retries = 3
		}

		if v := os.Getenv("UFCPIPE_LIMIT_FIGHTS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				serviceutil.Fatal("invalid UFCPIPE_LIMIT_FIGHTS", err)
			}
			config.LimitFights = n
		}
		if v := os.Getenv("UFCPIPE_RESUME"); v != "" {
			config.Resume = textutil.ParseBool(v)
		}

		sleep := sleepDuration(config.SleepSeconds)
		client := newScrapeClient(ctx, config.TimeoutSeconds, config.Retries)

		eventDirPath, n, err := ingest.EventDirectory(ctx, client, ingest.EventDirectoryOptions{
			Snapshot: *pipelineSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("event directory ingest failed", err)
		}
		slog.Info("wrote event directory", "path", eventDirPath, "rows", n)

		fighterDirPath, n, err := ingest.FighterDirectory(ctx, client, ingest.FighterDirectoryOptions{
			Snapshot: *pipelineSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("fighter directory ingest failed", err)
		}
		slog.Info("wrote fighter directory", "path", fighterDirPath, "rows", n)

		eventDetailsPath, n, err := ingest.EventDetails(ctx, client, ingest.EventDetailsOptions{
			InputPath: eventDirPath,
			OutDir:    config.RawDir,
			Snapshot:  *pipelineSnapshot,
			Sleep:     sleep,
		})
		if err != nil {
			serviceutil.Fatal("event details ingest failed", err)
		}
		slog.Info("wrote event details", "path", eventDetailsPath, "bouts", n)

		fighterDetailsPath, n, err := ingest.FighterDetails(ctx, client, ingest.FighterDetailsOptions{
			InputPath: fighterDirPath,
			OutDir:    config.RawDir,
			Snapshot:  *pipelineSnapshot,
			Sleep:     sleep,
		})
		if err != nil {
			serviceutil.Fatal("fighter details ingest failed", err)
		}
		slog.Info("wrote fighter details", "path", fighterDetailsPath, "rows", n)

		fightDetailsPath, n, err := ingest.FightDetails(ctx, client, ingest.FightDetailsOptions{
			InputPath: eventDetailsPath,
			OutDir:    config.RawDir,
			Snapshot:  *pipelineSnapshot,
			Sleep:     sleep,
			Limit:     config.LimitFights,
			Resume:    config.Resume,
		})
		if err != nil {
			serviceutil.Fatal("fight details ingest failed", err)
		}
		slog.Info("wrote fight details", "path", fightDetailsPath, "processed", n)

		dimEventPath, err := build.DimEventFile(build.DimEventOptions{
			EventDirectoryPath: eventDirPath,
			OutDir:             config.ProcessedDir,
			Snapshot:           *pipelineSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("dim_event build failed", err)
		}
		slog.Info("wrote dim_event", "path", dimEventPath)

		factBoutPath, err := build.FactBoutFile(build.FactBoutOptions{
			EventDetailsPath: eventDetailsPath,
			DimEventPath:     dimEventPath,
			OutDir:           config.ProcessedDir,
			Snapshot:         *pipelineSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("fact_bout build failed", err)
		}
		slog.Info("wrote fact_bout", "path", factBoutPath)

		dimFighterPath, err := build.DimFighterFile(build.DimFighterOptions{
			FighterDirectoryPath: fighterDirPath,
			FighterDetailsPath:   fighterDetailsPath,
			FactBoutPath:         factBoutPath,
			OutDir:               config.ProcessedDir,
			Snapshot:             *pipelineSnapshot,
		})
		if err != nil {
			serviceutil.Fatal("dim_fighter build failed", err)
		}
		slog.Info("wrote dim_fighter", "path", dimFighterPath)

		slog.Info("pipeline complete")
	},
}

func init() {
	pipelineConfigPath = pipelineCmd.Flags().String("config", "pipeline.json5", "pipeline config file")
	pipelineSnapshot = pipelineCmd.Flags().String("snapshot", "", "snapshot date (YYYY-MM-DD), defaults to today UTC")
	rootCmd.AddCommand(pipelineCmd)
}
