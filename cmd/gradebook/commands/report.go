package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/config"
	"github.com/yarthi-tools/gradebook/internal/report"
)

const (
	reportCmdUse    = "report"
	reportCmdShort  = "Render ranked results and charts as an HTML report"
	usageReportFile = "destination HTML file (default: report.file from config)"

	flagTheme  = "theme"
	usageTheme = "report theme: dark or light (default: report.theme from config)"
)

// NewReportCommand creates the report subcommand.
func NewReportCommand() *cobra.Command {
	var (
		configPath string
		output     string
		theme      string
	)

	cmd := &cobra.Command{
		Use:   reportCmdUse,
		Short: reportCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runReport(configPath, output, theme)
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)
	cmd.Flags().StringVarP(&output, flagOutput, flagOutputShort, "", usageReportFile)
	cmd.Flags().StringVar(&theme, flagTheme, "", usageTheme)

	return cmd
}

func runReport(configPath, output, theme string) error {
	cfg, st, err := openStore(configPath)
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.Report.File
	}

	if theme == "" {
		theme = cfg.Report.Theme
	}

	if theme != config.ThemeDark && theme != config.ThemeLight {
		return config.ErrInvalidTheme
	}

	// One ranked snapshot feeds both the terminal table and the chart page.
	rows := st.ExportRanked()

	report.RenderRanked(os.Stdout, rows)

	writeErr := report.WritePage(output, cfg.Report.Title, report.Theme(theme), rows, st.Statistics())
	if writeErr != nil {
		return fmt.Errorf("write report: %w", writeErr)
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Report written to %s\n", output)

	return nil
}
