package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
	"github.com/roach88/persiandt/internal/picker"
)

// Harness executes scenario steps.
// Steps are numbered with a logical sequence, never wall-clock time, so
// traces are reproducible.
type Harness struct {
	logger   *slog.Logger
	location *time.Location
	calendar calendar.Calendar
	seq      int64
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithLocation sets the civil-time location used by from_epoch.
// The default is UTC so traces do not depend on the host.
func WithLocation(loc *time.Location) Option {
	return func(h *Harness) {
		if loc != nil {
			h.location = loc
		}
	}
}

// WithCalendar sets the calendar used for month lengths and leap years.
func WithCalendar(c calendar.Calendar) Option {
	return func(h *Harness) {
		h.calendar = c
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		location: time.UTC,
		calendar: calendar.Default,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a fresh Harness.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(opts...).Run(scenario)
}

// Run executes every step of scenario and returns the result.
//
// Mismatches and invalid step inputs are recorded in the result; an error
// is returned only when the scenario itself cannot be run.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	h.seq = 0
	h.logger.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	result := NewResult()
	for i, step := range scenario.Steps {
		h.seq++
		ev := TraceEvent{
			Seq:   h.seq,
			Op:    step.Op,
			Input: describeInput(step),
		}

		output, err := h.execute(step)
		if err != nil {
			ev.Error = err.Error()
			result.AddError(fmt.Sprintf("steps[%d] %s: %v", i, step.Op, err))
		} else {
			ev.Output = output
			if step.Expect != "" && step.Expect != output {
				result.AddError(fmt.Sprintf("steps[%d] %s(%s): expected %q, got %q", i, step.Op, ev.Input, step.Expect, output))
			}
		}

		h.logger.Debug("step executed",
			"seq", ev.Seq,
			"op", ev.Op,
			"input", ev.Input,
			"output", ev.Output,
			"error", ev.Error,
		)
		result.AddTrace(ev)
	}

	h.logger.Info("scenario finished", "name", scenario.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

func (h *Harness) execute(step Step) (string, error) {
	switch step.Op {
	case "to_jalali":
		g, err := datetime.ParseGregorian(step.Date)
		if err != nil {
			return "", err
		}
		return g.ToJalali().DateString(), nil

	case "to_gregorian":
		j, err := h.parseJalali(step.Date)
		if err != nil {
			return "", err
		}
		return j.ToGregorian().DateString(), nil

	case "weekday":
		j, err := h.parseJalali(step.Date)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(j.Weekday()), nil

	case "month_length":
		month, err := step.month()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(h.calendar.MonthLength(month, step.Year)), nil

	case "is_leap":
		return strconv.FormatBool(h.calendar.IsLeap(step.Year)), nil

	case "epoch_seconds":
		j, err := h.parseJalali(step.Date)
		if err != nil {
			return "", err
		}
		if step.Time != "" {
			tm, err := datetime.ParseTime(step.Time)
			if err != nil {
				return "", err
			}
			j = j.WithTime(tm)
		}
		return strconv.FormatInt(j.EpochSeconds(), 10), nil

	case "from_epoch":
		format := datetime.Format24Hour
		if step.Clock != "" {
			f, err := datetime.ParseHourFormat(step.Clock)
			if err != nil {
				return "", err
			}
			format = f
		}
		if step.Millis == nil {
			return "", fmt.Errorf("millis is required")
		}
		return datetime.FromEpochMillis(*step.Millis, h.location, format).String(), nil

	case "month_name":
		month, err := step.month()
		if err != nil {
			return "", err
		}
		locale := calendar.Farsi
		if step.Locale != "" {
			l, err := calendar.ParseLocale(step.Locale)
			if err != nil {
				return "", err
			}
			locale = l
		}
		return calendar.MonthName(month, locale), nil

	case "month_grid":
		month, err := step.month()
		if err != nil {
			return "", err
		}
		g := picker.NewMonthGridWith(h.calendar, step.Year, month)
		return fmt.Sprintf("leading=%d length=%d trailing=%d", g.Leading, g.Length, g.Trailing), nil

	default:
		return "", fmt.Errorf("unknown op %q", step.Op)
	}
}

// parseJalali parses and validates against the harness calendar, so a
// legacy-table scenario can address 30 Esfand of a table year.
func (h *Harness) parseJalali(s string) (datetime.JalaliDate, error) {
	y, m, d, err := splitDate(s)
	if err != nil {
		return datetime.JalaliDate{}, err
	}
	j := datetime.NewJalali(y, m, d)
	if err := j.ValidateWith(h.calendar); err != nil {
		return datetime.JalaliDate{}, fmt.Errorf("invalid jalali date %q: %w", s, err)
	}
	return j, nil
}

func splitDate(s string) (y, m, d int, err error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		if vals[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func (s Step) month() (int, error) {
	if s.Month == nil {
		return 0, fmt.Errorf("month is required")
	}
	return *s.Month, nil
}

// describeInput renders the inputs of a step as "key=value" pairs in a
// fixed order.
func describeInput(s Step) string {
	var parts []string
	if s.Date != "" {
		parts = append(parts, "date="+s.Date)
	}
	if s.Time != "" {
		parts = append(parts, "time="+s.Time)
	}
	if s.Year != 0 {
		parts = append(parts, "year="+strconv.Itoa(s.Year))
	}
	if s.Month != nil {
		parts = append(parts, "month="+strconv.Itoa(*s.Month))
	}
	if s.Millis != nil {
		parts = append(parts, "millis="+strconv.FormatInt(*s.Millis, 10))
	}
	if s.Locale != "" {
		parts = append(parts, "locale="+s.Locale)
	}
	if s.Clock != "" {
		parts = append(parts, "clock="+s.Clock)
	}
	return strings.Join(parts, " ")
}
