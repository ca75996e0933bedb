package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
)

// ConversionResult is the output of convert.
type ConversionResult struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name"`
	MonthName   string `json:"month_name"` // Jalali month
}

// String returns the converted date only, so the text output composes in
// shell pipelines.
func (r ConversionResult) String() string {
	return r.To
}

// NewConvertCommand creates the convert command and its two directions.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert dates between the Gregorian and Jalali calendars",
		Long: `Convert dates between the Gregorian and Jalali calendars.

Dates are written YYYY-MM-DD (or YYYY/MM/DD) and must be valid in the
source calendar.

Examples:
  persiandt convert to-jalali 2024-03-20
  persiandt convert to-gregorian 1403-12-30 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "to-jalali <YYYY-MM-DD>",
		Short:         "Convert a Gregorian date to Jalali",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToJalali(rootOpts, args[0], cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "to-gregorian <YYYY-MM-DD>",
		Short:         "Convert a Jalali date to Gregorian",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToGregorian(rootOpts, args[0], cmd)
		},
	})

	return cmd
}

func runToJalali(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, _, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	g, err := datetime.ParseGregorian(input)
	if err != nil {
		return dateError(formatter, input, err)
	}
	j := g.ToJalali()
	slog.Debug("converted", "gregorian", g.DateString(), "jalali", j.DateString())

	return formatter.Success(conversionResult(g.DateString(), j.DateString(), j, locale))
}

func runToGregorian(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, _, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	j, err := datetime.ParseJalali(input)
	if err != nil {
		return dateError(formatter, input, err)
	}
	g := j.ToGregorian()
	slog.Debug("converted", "jalali", j.DateString(), "gregorian", g.DateString())

	return formatter.Success(conversionResult(j.DateString(), g.DateString(), j, locale))
}

func conversionResult(from, to string, j datetime.JalaliDate, l calendar.Locale) ConversionResult {
	weekday := j.Weekday()
	return ConversionResult{
		From:        from,
		To:          to,
		Weekday:     weekday,
		WeekdayName: calendar.WeekdayName(weekday, l),
		MonthName:   calendar.MonthName(j.Month, l),
	}
}
