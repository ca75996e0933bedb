package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/datetime"
)

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current Jalali date and time",
		Long: `Print the current Jalali date and time of day.

The date and the time come from a single clock reading, in the local time
zone unless --utc is given.

Examples:
  persiandt now
  persiandt now --clock 12 --locale en
  persiandt now --utc --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, cmd)
		},
	}

	return cmd
}

func runNow(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, format, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	now := datetime.Now(opts.clock(), format)
	slog.Debug("read clock", "jalali", now.String(), "utc", opts.UTC)

	return formatter.Success(newDateView(now, locale))
}
