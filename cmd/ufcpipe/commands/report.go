package commands

import (
	"fmt"
	"os"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportInput *string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a snapshot csv: per-column fill rate and a sample value.",
	Run: func(cmd *cobra.Command, args []string) {
		t, err := csvtable.ReadFile(*reportInput)
		if err != nil {
			serviceutil.Fatal("failed to read snapshot", err)
		}

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"column", "filled", "fill %", "sample"})

		total := len(t.Rows)
		for _, c := range t.Columns {
			filled := 0
			sample := ""
			for _, r := range t.Rows {
				if r[c] != "" {
					filled++
					if sample == "" {
						sample = r[c]
					}
				}
			}
			if len(sample) > 40 {
				sample = sample[:37] + "..."
			}
			pct := 0.0
			if total > 0 {
				pct = float64(filled) / float64(total) * 100
			}
			w.AppendRow(table.Row{c, filled, fmt.Sprintf("%.1f", pct), sample})
		}

		w.SetStyle(table.StyleRounded)
		w.Render()
		fmt.Printf("%d rows, %d columns\n", total, len(t.Columns))
	},
}

func init() {
	reportInput = reportCmd.Flags().String("input", "", "snapshot csv to summarize (required)")
	reportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(reportCmd)
}
