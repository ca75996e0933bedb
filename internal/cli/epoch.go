package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/persiandt/internal/datetime"
)

// EpochResult is the output of epoch.
type EpochResult struct {
	Jalali       string `json:"jalali"`
	Gregorian    string `json:"gregorian"`
	EpochSeconds int64  `json:"epoch_seconds"`
	EpochMillis  int64  `json:"epoch_millis"`
}

func (r EpochResult) String() string {
	return strconv.FormatInt(r.EpochSeconds, 10)
}

// NewFromEpochCommand creates the from-epoch command.
func NewFromEpochCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-epoch <millis>",
		Short: "Convert an epoch-millisecond timestamp to a Jalali date and time",
		Long: `Convert an epoch-millisecond timestamp to a Jalali date and time.

The civil date and time are read in the local time zone, or in UTC with
--utc.

Examples:
  persiandt from-epoch 1710892800000 --utc
  persiandt from-epoch 1742504400000 --clock 12 --locale en`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFromEpoch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runFromEpoch(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	locale, format, err := opts.settings(formatter)
	if err != nil {
		return err
	}

	ms, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
			fmt.Sprintf("invalid timestamp %q: want integer milliseconds", input), nil)
	}

	d := datetime.FromEpochMillis(ms, opts.location(), format)
	slog.Debug("converted timestamp", "millis", ms, "jalali", d.String())

	return formatter.Success(newDateView(d, locale))
}

// NewEpochCommand creates the epoch command.
func NewEpochCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epoch <YYYY-MM-DD> [HH:MM [AM|PM]]",
		Short: "Print the epoch seconds of a Jalali date and time",
		Long: `Print the seconds since 1970-01-01 00:00 of a Jalali date and time.

The date and time are taken as UTC civil time. The time defaults to
midnight.

Examples:
  persiandt epoch 1403-01-01
  persiandt epoch 1403-01-01 13:05
  persiandt epoch 1403-01-01 01:05 PM`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEpoch(rootOpts, args[0], strings.Join(args[1:], " "), cmd)
		},
	}

	return cmd
}

func runEpoch(opts *RootOptions, dateInput, timeInput string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	j, err := datetime.ParseJalali(dateInput)
	if err != nil {
		return dateError(formatter, dateInput, err)
	}
	if timeInput != "" {
		t, err := datetime.ParseTime(timeInput)
		if err != nil {
			return dateError(formatter, timeInput, err)
		}
		j = j.WithTime(t)
	}

	secs := j.EpochSeconds()
	slog.Debug("epoch seconds", "jalali", j.String(), "seconds", secs)

	return formatter.Success(EpochResult{
		Jalali:       j.String(),
		Gregorian:    j.ToGregorian().String(),
		EpochSeconds: secs,
		EpochMillis:  secs * 1000,
	})
}
