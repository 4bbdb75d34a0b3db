package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/report"
)

const (
	exportCmdUse    = "export"
	exportCmdShort  = "Export the ranked record set as CSV"
	usageExportFile = "destination CSV file (default: export.csv_file from config)"
)

// NewExportCommand creates the export subcommand.
func NewExportCommand() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   exportCmdUse,
		Short: exportCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(configPath, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)
	cmd.Flags().StringVarP(&output, flagOutput, flagOutputShort, "", usageExportFile)

	return cmd
}

func runExport(configPath, output string) error {
	cfg, st, err := openStore(configPath)
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.Export.CSVFile
	}

	rows := st.ExportRanked()

	exportErr := report.ExportCSV(output, rows)
	if exportErr != nil {
		return fmt.Errorf("export csv: %w", exportErr)
	}

	size := uint64(0)

	info, statErr := os.Stat(output)
	if statErr == nil {
		size = uint64(info.Size())
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Exported %d rows to %s (%s)\n",
		len(rows), output, humanize.IBytes(size))

	return nil
}
