// FILE: reqtap/src/internal/civil/civil_test.go
package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year     int
		expected bool
	}{
		{1970, false},
		{2000, true},
		{2024, true},
		{2100, false},
		{2400, true},
		{1900, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, IsLeapYear(tc.year), "year %d", tc.year)
	}
}

func TestFromUnix(t *testing.T) {
	testCases := []struct {
		name     string
		sec      int64
		expected Time
	}{
		{
			name:     "Epoch",
			sec:      0,
			expected: Time{1970, 1, 1, 0, 0, 0},
		},
		{
			name:     "LeapDayBoundary",
			sec:      1709209845,
			expected: Time{2024, 2, 29, 12, 30, 45},
		},
		{
			name:     "YearBoundary",
			sec:      1704067199,
			expected: Time{2023, 12, 31, 23, 59, 59},
		},
		{
			name:     "FirstSecondOf2024",
			sec:      1704067200,
			expected: Time{2024, 1, 1, 0, 0, 0},
		},
		{
			name:     "EndOfFirstDay",
			sec:      86399,
			expected: Time{1970, 1, 1, 23, 59, 59},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FromUnix(tc.sec))
		})
	}
}

func TestFromUnix_ClampsBelowEpoch(t *testing.T) {
	for _, sec := range []int64{-1, -86400, -1 << 40} {
		got := FromUnix(sec)
		assert.Equal(t, 1970, got.Year, "sec %d", sec)
		assert.Equal(t, 1, got.Month, "sec %d", sec)
		assert.Equal(t, 1, got.Day, "sec %d", sec)
	}

	// Time of day uses floor semantics, never a negative remainder.
	got := FromUnix(-1)
	assert.Equal(t, 23, got.Hour)
	assert.Equal(t, 59, got.Minute)
	assert.Equal(t, 59, got.Second)
}

func TestFromUnix_ClampsAboveMaxYear(t *testing.T) {
	for _, sec := range []int64{int64(maxEpochDay+1) * secondsPerDay, 1 << 48} {
		got := FromUnix(sec)
		assert.Equal(t, 9999, got.Year, "sec %d", sec)
		assert.Equal(t, 12, got.Month, "sec %d", sec)
		assert.Equal(t, 31, got.Day, "sec %d", sec)
	}
}

func TestAppendISO8601(t *testing.T) {
	testCases := []struct {
		name     string
		sec      int64
		expected string
	}{
		{"Epoch", 0, "1970-01-01T00:00:00Z"},
		{"LeapDay", 1709209845, "2024-02-29T12:30:45Z"},
		{"SingleDigitFields", 1049174445, "2003-04-01T05:20:45Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := AppendISO8601(nil, FromUnix(tc.sec))
			require.Len(t, out, ISOLen)
			assert.Equal(t, tc.expected, string(out))
		})
	}
}

// Converting back to epoch days via the same month and leap arithmetic must
// reproduce the day the conversion started from.
func TestFromUnix_RoundTrip(t *testing.T) {
	secs := []int64{
		0,
		86399,
		86400,
		951782399,  // 2000-02-28T23:59:59Z
		951782400,  // leap day 2000
		4107542400, // 2100-03-01, past the skipped leap day
		1709209845,
		1704067199,
		int64(maxEpochDay) * secondsPerDay,
	}
	// Step through a few decades at odd strides as well.
	for sec := int64(0); sec < 3_000_000_000; sec += 97_111_003 {
		secs = append(secs, sec)
	}

	for _, sec := range secs {
		ct := FromUnix(sec)
		assert.Equal(t, sec/secondsPerDay, ct.EpochDay(), "sec %d", sec)

		require.GreaterOrEqual(t, ct.Month, 1, "sec %d", sec)
		require.LessOrEqual(t, ct.Month, 12, "sec %d", sec)
		require.GreaterOrEqual(t, ct.Day, 1, "sec %d", sec)
		require.LessOrEqual(t, ct.Day, daysInMonth(ct.Year, ct.Month), "sec %d", sec)
	}
}
