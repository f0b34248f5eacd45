package commands

import (
	"fmt"
	"os"

	"github.com/ryvens/repdash/internal/application/board"
	"github.com/ryvens/repdash/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

var (
	exportFormat string

	exportCmd = &cobra.Command{
		Use:   "export [flags]",
		Short: "Write the aggregated board in a machine-readable format",
		Long: `export runs one aggregation pass and writes the filtered board to stdout
as flat rows, one per faction.

Formats:
  json      indented JSON array
  csv       one CSV record per faction
  summary   account-level totals only

Examples:
  repdash export                        # JSON
  repdash export --format csv > rep.csv
  repdash export -s iron --format summary`,
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json",
		"Output format (json, csv, summary)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	var f formatter.Formatter
	switch exportFormat {
	case "json":
		f = formatter.NewJSONFormatter(os.Stdout)
	case "csv":
		f = formatter.NewCSVFormatter(os.Stdout)
	case "summary":
		f = formatter.NewSummaryFormatter(os.Stdout)
	default:
		return fmt.Errorf("unknown format %q (want json, csv, or summary)", exportFormat)
	}

	controller := board.NewRefreshController(cfg.SnapshotPath, cfg.MinRefreshInterval(), engineOptions(cfg))
	result, err := controller.ForceRefresh(search)
	if err != nil {
		return err
	}

	return f.Format(formatter.Flatten(result.Filtered))
}
