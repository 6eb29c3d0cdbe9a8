package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	moment := time.Date(2026, 8, 28, 14, 30, 45, 123456789, time.Local)
	assert.Equal(t, "2026-08-28T14:30:45", FormatTimeForDB(moment))
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.Nil(t, FormatTimePtrForDB(nil))

	moment := time.Date(2026, 8, 28, 14, 30, 45, 0, time.Local)
	assert.Equal(t, "2026-08-28T14:30:45", FormatTimePtrForDB(&moment))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2026-08-28T14:30:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 14, 30, 45, 0, time.Local), parsed)

	_, err = ParseTimeFromDB("not a timestamp")
	assert.Error(t, err)
}

func TestParseTimePtrFromDB(t *testing.T) {
	parsed, err := ParseTimePtrFromDB("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = ParseTimePtrFromDB("2026-08-28T14:30:45")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 8, 28, 14, 30, 45, 0, time.Local), *parsed)
}

func TestTimestampRoundTrip(t *testing.T) {
	// Sub-second precision is intentionally dropped by the storage layout.
	moment := time.Date(2026, 1, 2, 3, 4, 5, 999999999, time.Local)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(moment))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(moment.Truncate(time.Second)))
}
