package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/datetime"
	"github.com/roach88/persiandt/internal/sequence"
)

// OptionKinds lists the option lists options can print.
var OptionKinds = []string{"years", "days", "hours", "minutes", "months", "weekdays", "periods"}

// OptionsOptions holds flags for the options command.
type OptionsOptions struct {
	*RootOptions
	Year  int // year of the day list; start of the year list
	Month int // month of the day list
}

// OptionsResult is the output of options.
type OptionsResult struct {
	Kind     string   `json:"kind"`
	Values   []string `json:"values"`
	Selected int      `json:"selected"` // index of the current value, -1 if absent
}

// String prints one value per line.
func (r OptionsResult) String() string {
	return strings.Join(r.Values, "\n")
}

// NewOptionsCommand creates the options command.
func NewOptionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "options <kind>",
		Short: "List the values a date picker offers",
		Long: fmt.Sprintf(`List the values a date or time picker offers.

Kinds: %s

years starts at --year and spans %d years. days lists the days of
--year/--month. Both default to the current Jalali date. The selected index
points at the current value when it is in the list.

Examples:
  persiandt options months --locale en
  persiandt options days --year 1403 --month 12
  persiandt options hours --clock 12`, strings.Join(OptionKinds, ", "), sequence.YearSpan),
		Args:          cobra.ExactArgs(1),
		ValidArgs:     OptionKinds,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "Jalali year (default current year)")
	cmd.Flags().IntVar(&opts.Month, "month", 0, "Jalali month (default current month)")

	return cmd
}

func runOptions(opts *OptionsOptions, kind string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, format, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	now := datetime.Now(opts.clock(), format)
	year, month := now.Year, now.Month
	if opts.Year != 0 {
		year = opts.Year
	}
	if opts.Month != 0 {
		month = opts.Month
	}

	result := OptionsResult{Kind: kind, Selected: -1}
	switch kind {
	case "years":
		result.setInts(sequence.YearRange(year), now.Year)
	case "days":
		today := -1
		if year == now.Year && month == now.Month {
			today = now.Day
		}
		result.setInts(sequence.DaysOf(year, month), today)
	case "hours":
		result.setInts(sequence.HourRange(format), now.Time.Hour)
	case "minutes":
		result.setInts(sequence.MinuteRange(), now.Time.Minute)
	case "months":
		result.Values = sequence.MonthOptions(locale)
		result.Selected = now.Month - 1
	case "weekdays":
		result.Values = sequence.WeekdayOptions(locale)
		if wd := now.Weekday(); wd != 0 {
			result.Selected = wd - 1
		}
	case "periods":
		am, pm := sequence.AmPmLabels(locale)
		result.Values = []string{am, pm}
		switch now.Time.Period {
		case datetime.AM:
			result.Selected = 0
		case datetime.PM:
			result.Selected = 1
		}
	default:
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
			fmt.Sprintf("invalid kind %q: must be one of %v", kind, OptionKinds), nil)
	}

	return formatter.Success(result)
}

func (r *OptionsResult) setInts(values []int, current int) {
	r.Values = make([]string, len(values))
	for i, v := range values {
		r.Values[i] = strconv.Itoa(v)
	}
	r.Selected = sequence.IndexOf(values, current)
}
