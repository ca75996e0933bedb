package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Locale     string // BCP 47 tag, base language fa or en
	HourFormat string // "12" | "24"
	UTC        bool   // read civil time in UTC instead of the local zone

	// Clock supplies "now". Nil means the system clock in the selected zone.
	Clock datetime.Clock

	// IDs generates JSON trace ids. Nil means UUIDv7.
	IDs IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the persiandt CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(&RootOptions{})
}

// NewRootCommandWith creates the root command around opts, so tests can
// inject a clock and an id generator before flags are parsed.
func NewRootCommandWith(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persiandt",
		Short: "persiandt - Jalali calendar tools",
		Long: `Convert between the Jalali (Solar Hijri) and Gregorian calendars,
inspect months and leap years, and list the options a date picker offers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := opts.locale(); err != nil {
				return err
			}
			if _, err := opts.hourFormat(); err != nil {
				return err
			}
			setupLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "fa", "name locale (fa|en or any BCP 47 tag of either)")
	cmd.PersistentFlags().StringVar(&opts.HourFormat, "clock", "24", "hour format (12|24)")
	cmd.PersistentFlags().BoolVar(&opts.UTC, "utc", false, "use UTC instead of the local time zone")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewFromEpochCommand(opts))
	cmd.AddCommand(NewEpochCommand(opts))
	cmd.AddCommand(NewLeapCommand(opts))
	cmd.AddCommand(NewMonthCommand(opts))
	cmd.AddCommand(NewOptionsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// setupLogging installs the default slog handler on stderr.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// locale parses the --locale flag. Empty means Farsi.
func (o *RootOptions) locale() (calendar.Locale, error) {
	if o.Locale == "" {
		return calendar.Farsi, nil
	}
	return calendar.ParseLocale(o.Locale)
}

// hourFormat parses the --clock flag. Empty means 24-hour.
func (o *RootOptions) hourFormat() (datetime.HourFormat, error) {
	if o.HourFormat == "" {
		return datetime.Format24Hour, nil
	}
	return datetime.ParseHourFormat(o.HourFormat)
}

// location is the zone civil times are read in.
func (o *RootOptions) location() *time.Location {
	if o.UTC {
		return time.UTC
	}
	return time.Local
}

// clock returns the injected clock or the system clock in location().
func (o *RootOptions) clock() datetime.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return datetime.SystemClock{Location: o.location()}
}

// formatter builds the output formatter for a command run.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	ids := o.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
		TraceID:   ids.Generate(),
	}
}

// settings resolves --locale and --clock, reporting a bad value through
// formatter. Subcommands constructed without the root skip
// PersistentPreRunE, so they validate again here.
func (o *RootOptions) settings(formatter *OutputFormatter) (calendar.Locale, datetime.HourFormat, error) {
	locale, err := o.locale()
	if err != nil {
		return 0, 0, formatter.FailErr(ExitCommandError, ErrCodeInvalidArgument, err, map[string]string{"locale": o.Locale})
	}
	format, err := o.hourFormat()
	if err != nil {
		return 0, 0, formatter.FailErr(ExitCommandError, ErrCodeInvalidArgument, err, map[string]string{"clock": o.HourFormat})
	}
	return locale, format, nil
}

// dateError reports a date or time parse failure. Out-of-range values are
// E_INVALID_DATE; text that is not a date at all is E_INVALID_ARGUMENT.
func dateError(formatter *OutputFormatter, input string, err error) error {
	code := ErrCodeInvalidArgument
	if datetime.IsValidationError(err) {
		code = ErrCodeInvalidDate
	}
	return formatter.FailErr(ExitCommandError, code, err, map[string]string{"input": input})
}
