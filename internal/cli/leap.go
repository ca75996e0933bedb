package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/calendar"
)

// LeapYear describes one Jalali year.
type LeapYear struct {
	Year         int    `json:"year"`
	Leap         bool   `json:"leap"`
	EsfandLength int    `json:"esfand_length"`
	Days         int    `json:"days"`
	Nowruz       string `json:"nowruz"` // Gregorian date of 1 Farvardin
}

// LeapResult is the output of leap.
type LeapResult struct {
	Years []LeapYear `json:"years"`
}

// String formats one line per year, "1403 leap 366 days (Nowruz 2024-03-20)".
func (r LeapResult) String() string {
	lines := make([]string, len(r.Years))
	for i, y := range r.Years {
		kind := "common"
		if y.Leap {
			kind = "leap"
		}
		lines[i] = fmt.Sprintf("%d %s %d days (Nowruz %s)", y.Year, kind, y.Days, y.Nowruz)
	}
	return strings.Join(lines, "\n")
}

// NewLeapCommand creates the leap command.
func NewLeapCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leap <year>...",
		Short: "Report whether Jalali years are leap years",
		Long: `Report whether Jalali years are leap years.

Leap years follow the 33-year arithmetic cycle, the same rule the date
conversion uses, so 30 Esfand exists exactly in the years reported as leap.

Examples:
  persiandt leap 1403
  persiandt leap 1403 1404 1407 1408 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeap(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runLeap(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result := LeapResult{Years: make([]LeapYear, 0, len(args))}
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
				fmt.Sprintf("invalid year %q", arg), map[string]string{"input": arg})
		}
		result.Years = append(result.Years, describeYear(calendar.Default, year))
	}

	return formatter.Success(result)
}

func describeYear(c calendar.Calendar, year int) LeapYear {
	esfand := c.MonthLength(12, year)
	gy, gm, gd := calendar.JalaliToGregorian(year, 1, 1)
	return LeapYear{
		Year:         year,
		Leap:         c.IsLeap(year),
		EsfandLength: esfand,
		Days:         6*31 + 5*30 + esfand,
		Nowruz:       fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
	}
}
