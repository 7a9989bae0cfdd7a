package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ufcpipe/lib/scrapers/ufcstats"
	"ufcpipe/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ufcpipe",
	Short: "ufcpipe scrapes ufcstats.com into layered CSV snapshots.",
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Scrape raw page snapshots.",
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build dimension/fact tables from raw snapshots.",
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(buildCmd)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newScrapeClient builds the shared HTTP session for one driver run
// and pins it to a reachable base host.
func newScrapeClient(ctx context.Context, timeoutSeconds, retries int) *ufcstats.Client {
	client := ufcstats.NewClient(ufcstats.ClientOptions{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
		Retries: retries,
	})
	base, err := client.PickBaseURL(ctx)
	if err != nil {
		serviceutil.Fatal("failed to reach ufcstats", err)
	}
	slog.Info("picked base url", "base", base)
	return client
}

func sleepDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
