package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/report"
)

const (
	statsCmdUse   = "stats"
	statsCmdShort = "Show aggregate class statistics"
)

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   statsCmdUse,
		Short: statsCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStats(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)

	return cmd
}

func runStats(configPath string) error {
	cfg, st, err := openStore(configPath)
	if err != nil {
		return err
	}

	stats := st.Statistics()

	fmt.Fprintf(os.Stdout, "%s (%s records)\n",
		cfg.DataFile, humanize.Comma(int64(stats.Count)))

	report.RenderStatistics(os.Stdout, stats)

	return nil
}
