package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/store"
)

const (
	removeCmdUse   = "remove <roll>"
	removeCmdShort = "Delete a student record"
	removeArgCount = 1
)

// NewRemoveCommand creates the remove subcommand.
func NewRemoveCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   removeCmdUse,
		Short: removeCmdShort,
		Args:  cobra.ExactArgs(removeArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)

	return cmd
}

// runRemove deletes the roll if present. Removing an absent roll is a
// silent success, not an error.
func runRemove(configPath, roll string) error {
	_, st, err := openStore(configPath)
	if err != nil {
		return err
	}

	key := store.NormalizeRoll(roll)

	_, found := st.Get(key)

	st.Remove(key)

	if found {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Removed %s\n", key)
	} else {
		color.New(color.FgYellow).Fprintf(os.Stdout, "No record for %s\n", key)
	}

	return nil
}
