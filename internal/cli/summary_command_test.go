package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthArg(t *testing.T) {
	year, month, err := parseMonthArg([]string{"2024-03"})
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)

	_, _, err = parseMonthArg([]string{"2024-13"})
	assert.Error(t, err)

	_, _, err = parseMonthArg([]string{"March 2024"})
	assert.Error(t, err)
}

func TestParseMonthArgDefaultsToCurrentMonth(t *testing.T) {
	original := timeNow
	defer func() { timeNow = original }()
	timeNow = func() time.Time {
		return time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	}

	year, month, err := parseMonthArg(nil)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.July, month)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "6", formatHours(6))
	assert.Equal(t, "0", formatHours(0))
	assert.Equal(t, "4.5", formatHours(4.5))
	assert.Equal(t, "8.8", formatHours(8.8))
}
