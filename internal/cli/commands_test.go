package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/persiandt/internal/datetime"
)

func TestNow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"english 24h", []string{"--locale", "en", "now"}, "1403-01-01 13:05 Wednesday\n"},
		{"english 12h", []string{"--locale", "en", "--clock", "12", "now"}, "1403-01-01 01:05 PM Wednesday\n"},
		{"farsi 12h", []string{"--clock", "12", "now"}, "1403-01-01 01:05 ب.ظ چهارشنبه\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testOptions(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNow_JSON(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "--format", "json", "now")
	require.NoError(t, err)

	var view DateView
	resp := decodeResponse(t, out, &view)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-1", resp.TraceID)
	assert.Equal(t, DateView{
		Jalali:       "1403-01-01",
		Gregorian:    "2024-03-20",
		Time:         "13:05",
		Weekday:      5,
		WeekdayName:  "Wednesday",
		MonthName:    "Farvardin",
		EpochSeconds: 1710939900,
	}, view)
}

func TestNow_RejectsArgs(t *testing.T) {
	_, err := execute(t, testOptions(), "now", "tomorrow")
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nowruz 1403", []string{"convert", "to-jalali", "2024-03-20"}, "1403-01-01\n"},
		{"slash separator", []string{"convert", "to-jalali", "1979/02/11"}, "1357-11-22\n"},
		{"gregorian leap day", []string{"convert", "to-jalali", "2016-02-29"}, "1394-12-10\n"},
		{"30 esfand 1403", []string{"convert", "to-gregorian", "1403-12-30"}, "2025-03-20\n"},
		{"30 esfand 1399", []string{"convert", "to-gregorian", "1399-12-30"}, "2021-03-20\n"},
		{"mehr 1403", []string{"convert", "to-gregorian", "1403-07-01"}, "2024-09-22\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testOptions(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvert_JSON(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "--format", "json", "convert", "to-jalali", "2024-03-20")
	require.NoError(t, err)

	var result ConversionResult
	decodeResponse(t, out, &result)
	assert.Equal(t, ConversionResult{
		From:        "2024-03-20",
		To:          "1403-01-01",
		Weekday:     5,
		WeekdayName: "Wednesday",
		MonthName:   "Farvardin",
	}, result)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"not a date", []string{"convert", "to-jalali", "yesterday"}, ErrCodeInvalidArgument},
		{"no feb 29 in 2023", []string{"convert", "to-jalali", "2023-02-29"}, ErrCodeInvalidDate},
		{"no 30 esfand in 1402", []string{"convert", "to-gregorian", "1402-12-30"}, ErrCodeInvalidDate},
		{"month 13", []string{"convert", "to-gregorian", "1403-13-01"}, ErrCodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json"}, tt.args...)
			out, err := execute(t, testOptions(), args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			resp := decodeResponse(t, out, nil)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestFromEpoch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"epoch", []string{"--utc", "--locale", "en", "from-epoch", "0"}, "1348-10-11 00:00 Thursday\n"},
		{"nowruz 1403", []string{"--utc", "--locale", "en", "from-epoch", "1710892800000"}, "1403-01-01 00:00 Wednesday\n"},
		{"evening 12h", []string{"--utc", "--locale", "en", "--clock", "12", "from-epoch", "1742504400000"}, "1403-12-30 09:00 PM Thursday\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testOptions(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFromEpoch_InvalidTimestamp(t *testing.T) {
	out, err := execute(t, testOptions(), "--format", "json", "from-epoch", "soon")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeResponse(t, out, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidArgument, resp.Error.Code)
}

func TestEpoch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"midnight", []string{"epoch", "1403-01-01"}, "1710892800\n"},
		{"24h time", []string{"epoch", "1403-01-01", "13:05"}, "1710939900\n"},
		{"12h time", []string{"epoch", "1403-01-01", "01:05", "PM"}, "1710939900\n"},
		{"12 am is midnight", []string{"epoch", "1403-01-01", "12:00", "AM"}, "1710892800\n"},
		{"12h time without space", []string{"epoch", "1403-01-01", "01:05PM"}, "1710939900\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testOptions(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEpoch_JSON(t *testing.T) {
	out, err := execute(t, testOptions(), "--format", "json", "epoch", "1403-01-01", "13:05")
	require.NoError(t, err)

	var result EpochResult
	decodeResponse(t, out, &result)
	assert.Equal(t, EpochResult{
		Jalali:       "1403-01-01 13:05",
		Gregorian:    "2024-03-20 13:05",
		EpochSeconds: 1710939900,
		EpochMillis:  1710939900000,
	}, result)
}

func TestEpoch_InvalidTime(t *testing.T) {
	out, err := execute(t, testOptions(), "--format", "json", "epoch", "1403-01-01", "25:00")
	require.Error(t, err)

	resp := decodeResponse(t, out, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidDate, resp.Error.Code)
	assert.True(t, datetime.HasCode(err, datetime.ErrCodeInvalidHour))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEpoch_TrailingGarbage(t *testing.T) {
	for _, in := range []string{"13:05x", "01:05 PM extra"} {
		t.Run(in, func(t *testing.T) {
			_, err := execute(t, testOptions(), "epoch", "1403-01-01", in)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestLeap(t *testing.T) {
	out, err := execute(t, testOptions(), "leap", "1403", "1404")
	require.NoError(t, err)
	assert.Equal(t, "1403 leap 366 days (Nowruz 2024-03-20)\n1404 common 365 days (Nowruz 2025-03-21)\n", out)
}

func TestLeap_JSON(t *testing.T) {
	out, err := execute(t, testOptions(), "--format", "json", "leap", "1403", "1407", "1408")
	require.NoError(t, err)

	var result LeapResult
	decodeResponse(t, out, &result)
	require.Len(t, result.Years, 3)

	assert.True(t, result.Years[0].Leap)
	assert.Equal(t, 30, result.Years[0].EsfandLength)

	// 1407 is common under the 33-year cycle
	assert.False(t, result.Years[1].Leap)
	assert.Equal(t, 29, result.Years[1].EsfandLength)
	assert.Equal(t, 365, result.Years[1].Days)

	assert.True(t, result.Years[2].Leap)
}

func TestLeap_InvalidYear(t *testing.T) {
	_, err := execute(t, testOptions(), "leap", "1403", "next")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMonth_JSON(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "--format", "json", "month", "1403", "1")
	require.NoError(t, err)

	var result MonthResult
	decodeResponse(t, out, &result)
	assert.Equal(t, "Farvardin", result.Name)
	assert.Equal(t, 31, result.Length)
	assert.Equal(t, []string{"SATURDAY", "SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}, result.Headers)
	require.Len(t, result.Weeks, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, result.Weeks[0])
	assert.Equal(t, []int{25, 26, 27, 28, 29, 30, 31}, result.Weeks[4])
	assert.Equal(t, "1402-12", result.Previous)
	assert.Equal(t, "1403-02", result.Next)
}

func TestMonth_DefaultsToCurrentMonth(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "--format", "json", "month")
	require.NoError(t, err)

	var result MonthResult
	decodeResponse(t, out, &result)
	assert.Equal(t, 1403, result.Year)
	assert.Equal(t, 1, result.Month)
}

func TestMonth_Text(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "month", "1402", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Esfand 1402\n")
	assert.Contains(t, out, "SATURDAY")
	assert.Contains(t, out, "29")
	assert.NotContains(t, out, "30")
}

func TestMonth_Errors(t *testing.T) {
	_, err := execute(t, testOptions(), "month", "1403")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 0 or 2 arg(s)")

	out, err := execute(t, testOptions(), "--format", "json", "month", "1403", "13")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	resp := decodeResponse(t, out, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidDate, resp.Error.Code)
}

func TestOptionsCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		values   []string
		count    int
		selected int
	}{
		{
			name:     "months english",
			args:     []string{"--locale", "en", "options", "months"},
			count:    12,
			selected: 0,
		},
		{
			name:     "years from current",
			args:     []string{"options", "years"},
			count:    20,
			selected: 0,
		},
		{
			name:     "years from 1400",
			args:     []string{"options", "years", "--year", "1400"},
			count:    20,
			selected: 3,
		},
		{
			name:     "days of current month",
			args:     []string{"options", "days"},
			count:    31,
			selected: 0,
		},
		{
			name:     "days of leap esfand",
			args:     []string{"options", "days", "--year", "1403", "--month", "12"},
			count:    30,
			selected: -1,
		},
		{
			name:     "days of invalid month",
			args:     []string{"options", "days", "--year", "1403", "--month", "13"},
			count:    0,
			selected: -1,
		},
		{
			name:     "hours 24",
			args:     []string{"options", "hours"},
			count:    24,
			selected: 13,
		},
		{
			name:     "hours 12",
			args:     []string{"--clock", "12", "options", "hours"},
			count:    12,
			selected: 0,
		},
		{
			name:     "minutes",
			args:     []string{"options", "minutes"},
			count:    60,
			selected: 5,
		},
		{
			name:     "weekdays",
			args:     []string{"--locale", "en", "options", "weekdays"},
			values:   []string{"SATURDAY", "SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
			selected: 4,
		},
		{
			name:     "periods english",
			args:     []string{"--locale", "en", "--clock", "12", "options", "periods"},
			values:   []string{"AM", "PM"},
			selected: 1,
		},
		{
			name:     "periods farsi without a 12-hour clock",
			args:     []string{"options", "periods"},
			values:   []string{"ق.ظ", "ب.ظ"},
			selected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json"}, tt.args...)
			out, err := execute(t, testOptions(), args...)
			require.NoError(t, err)

			var result OptionsResult
			decodeResponse(t, out, &result)
			if tt.values != nil {
				assert.Equal(t, tt.values, result.Values)
			} else {
				assert.Len(t, result.Values, tt.count)
			}
			assert.Equal(t, tt.selected, result.Selected)
		})
	}
}

func TestOptions_Text(t *testing.T) {
	out, err := execute(t, testOptions(), "--locale", "en", "options", "months")
	require.NoError(t, err)
	assert.Equal(t, "Farvardin\nOrdibehesht\nKhordad\nTir\nMordad\nShahrivar\nMehr\nAban\nAzar\nDay\nBahman\nEsfand\n", out)
}

func TestOptions_InvalidKind(t *testing.T) {
	_, err := execute(t, testOptions(), "options", "seconds")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
