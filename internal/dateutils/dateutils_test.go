package dateutils_test

import (
	"testing"
	"time"

	"fjacquet/bookctl/internal/dateutils"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"15.03.2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"15/03/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"  2026-03-15  ", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		parsed, _, err := dateutils.ParseDate(tt.input)
		assert.NoError(t, err, "input %q should parse", tt.input)
		assert.Equal(t, tt.expected, parsed)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, _, err := dateutils.ParseDate("not a date")
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-03-15", dateutils.NormalizeDate("15.03.2026"))
	assert.Equal(t, "2026-03-15", dateutils.NormalizeDate("2026-03-15"))

	// Unparseable strings pass through unchanged apart from trimming
	assert.Equal(t, "every friday", dateutils.NormalizeDate("  every friday "))
}

func TestToISODate(t *testing.T) {
	date := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02", dateutils.ToISODate(date))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "1 Jan 2026", dateutils.CleanDateString("  1   Jan  2026 "))
}
