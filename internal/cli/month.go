package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
	"github.com/roach88/persiandt/internal/picker"
)

// MonthResult is the output of month.
type MonthResult struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Name     string   `json:"name"`
	Length   int      `json:"length"`
	Headers  []string `json:"headers"`
	Weeks    [][]int  `json:"weeks"` // 0 is a blank cell
	Previous string   `json:"previous,omitempty"`
	Next     string   `json:"next"`
}

// String renders a Saturday-first calendar sheet.
func (r MonthResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", r.Name, r.Year)

	w := tabwriter.NewWriter(&b, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, strings.Join(r.Headers, "\t")+"\t")
	for _, week := range r.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			if day != 0 {
				cells[i] = strconv.Itoa(day)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
	}
	_ = w.Flush()

	return strings.TrimRight(b.String(), "\n")
}

// NewMonthCommand creates the month command.
func NewMonthCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [<year> <month>]",
		Short: "Print the calendar sheet of a Jalali month",
		Long: `Print the calendar sheet of a Jalali month.

Weeks start on Saturday. Without arguments the current month is shown.

Examples:
  persiandt month
  persiandt month 1403 1 --locale en
  persiandt month 1402 12 --format json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runMonth(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, format, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	var year, month int
	if len(args) == 2 {
		if year, err = strconv.Atoi(args[0]); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
				fmt.Sprintf("invalid year %q", args[0]), map[string]string{"input": args[0]})
		}
		if month, err = strconv.Atoi(args[1]); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
				fmt.Sprintf("invalid month %q", args[1]), map[string]string{"input": args[1]})
		}
	} else {
		now := datetime.Now(opts.clock(), format)
		year, month = now.Year, now.Month
	}

	grid := picker.NewMonthGrid(year, month)
	if !grid.Valid() {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidDate,
			fmt.Sprintf("month %d is out of range 1..12", month), map[string]int{"month": month})
	}
	formatter.VerboseLog("month %d-%02d: %d leading, %d days, %d trailing", year, month, grid.Leading, grid.Length, grid.Trailing)

	return formatter.Success(monthResult(grid, locale))
}

func monthResult(grid picker.MonthGrid, l calendar.Locale) MonthResult {
	first := datetime.NewJalali(grid.Year, grid.Month, 1)

	result := MonthResult{
		Year:    grid.Year,
		Month:   grid.Month,
		Name:    calendar.MonthName(grid.Month, l),
		Length:  grid.Length,
		Headers: calendar.WeekdayHeaders(l),
		Weeks:   grid.Weeks(),
		Next:    monthKey(picker.NextMonth(first)),
	}
	if prev, ok := picker.PrevMonth(first, datetime.NewJalali(1, 1, 1)); ok {
		result.Previous = monthKey(prev)
	}
	return result
}

func monthKey(d datetime.JalaliDate) string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}
