package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/report"
	"github.com/yarthi-tools/gradebook/internal/store"
)

const (
	listCmdUse   = "list"
	listCmdShort = "Show student records as a table"

	flagSort       = "sort"
	flagSortShort  = "s"
	usageSort      = "sort order: roll, name, or marks"
	defaultSortKey = "roll"

	flagSearch  = "search"
	usageSearch = "filter records whose roll or name contains the query"
)

// ErrUnknownSortKey indicates an unsupported --sort value.
var ErrUnknownSortKey = errors.New("unknown sort key (expected roll, name, or marks)")

// NewListCommand creates the list subcommand.
func NewListCommand() *cobra.Command {
	var (
		configPath string
		sortBy     string
		search     string
	)

	cmd := &cobra.Command{
		Use:   listCmdUse,
		Short: listCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(configPath, sortBy, search)
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)
	cmd.Flags().StringVarP(&sortBy, flagSort, flagSortShort, defaultSortKey, usageSort)
	cmd.Flags().StringVar(&search, flagSearch, "", usageSearch)

	return cmd
}

// parseSortKey maps the --sort flag value onto a store sort key.
func parseSortKey(value string) (store.SortKey, error) {
	switch strings.ToLower(value) {
	case "roll":
		return store.ByRoll, nil
	case "name":
		return store.ByName, nil
	case "marks":
		return store.ByMarkDescending, nil
	default:
		return store.ByRoll, fmt.Errorf("%w: %q", ErrUnknownSortKey, value)
	}
}

func runList(configPath, sortBy, search string) error {
	key, err := parseSortKey(sortBy)
	if err != nil {
		return err
	}

	cfg, st, openErr := openStore(configPath)
	if openErr != nil {
		return openErr
	}

	// Search yields a membership set; ordering comes from the sorted view.
	hits := st.Search(search)

	view := st.SortedView(key)
	filtered := make([]store.Entry, 0, len(view))

	for _, entry := range view {
		if hits[entry.Roll] {
			filtered = append(filtered, entry)
		}
	}

	report.RenderEntries(os.Stdout, filtered, cfg.Table.MaxRows)

	return nil
}
