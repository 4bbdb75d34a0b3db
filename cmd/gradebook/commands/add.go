package commands

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yarthi-tools/gradebook/internal/grade"
	"github.com/yarthi-tools/gradebook/internal/store"
)

const (
	addCmdUse   = "add <roll> <name> <marks>"
	addCmdShort = "Add or update a student record"
	addArgCount = 3

	marksMin = 0
	marksMax = 100
)

// Sentinel errors for add input validation. Range and emptiness checks live
// here; the store itself only guards numeric convertibility.
var (
	// ErrEmptyRoll indicates a blank roll number argument.
	ErrEmptyRoll = errors.New("roll number must not be empty")
	// ErrEmptyName indicates a blank name argument.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrMarksOutOfRange indicates marks outside 0-100 or not a number.
	ErrMarksOutOfRange = errors.New("marks must be a number between 0 and 100")
)

// NewAddCommand creates the add subcommand.
func NewAddCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   addCmdUse,
		Short: addCmdShort,
		Args:  cobra.ExactArgs(addArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(configPath, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVarP(&configPath, flagConfig, flagConfigShort, "", usageConfig)

	return cmd
}

func runAdd(configPath, roll, name, marks string) error {
	roll = strings.TrimSpace(roll)
	name = strings.TrimSpace(name)

	if roll == "" {
		return ErrEmptyRoll
	}

	if name == "" {
		return ErrEmptyName
	}

	val, parseErr := strconv.ParseFloat(strings.TrimSpace(marks), 64)
	if parseErr != nil || val < marksMin || val > marksMax {
		return ErrMarksOutOfRange
	}

	_, st, err := openStore(configPath)
	if err != nil {
		return err
	}

	upsertErr := st.Upsert(roll, name, marks)
	if upsertErr != nil {
		return upsertErr
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Saved %s: %s (grade %s)\n",
		store.NormalizeRoll(roll), store.NormalizeName(name), grade.Letter(val))

	return nil
}
