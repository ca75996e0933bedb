package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"fa", Farsi},
		{"fa-IR", Farsi},
		{"en", English},
		{"en-US", English},
		{"EN-gb", English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocale_Errors(t *testing.T) {
	_, err := ParseLocale("de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")

	_, err = ParseLocale("not a tag!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestLocale_String(t *testing.T) {
	assert.Equal(t, "fa", Farsi.String())
	assert.Equal(t, "en", English.String())
	assert.Equal(t, "Locale(7)", Locale(7).String())
}

func TestLocale_Tag(t *testing.T) {
	assert.Equal(t, language.English, English.Tag())
	assert.Equal(t, language.Persian, Farsi.Tag())
}
