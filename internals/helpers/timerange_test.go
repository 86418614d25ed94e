// file: internals/helpers/timerange_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		label     string
		wantStart time.Time
		wantAll   bool
	}{
		{"24h", now.Add(-24 * time.Hour), false},
		{"7d", now.AddDate(0, 0, -7), false},
		{"weekly", now.AddDate(0, 0, -7), false},
		{"30d", now.AddDate(0, 0, -30), false},
		{"monthly", now.AddDate(0, 0, -30), false},
		{"90d", now.AddDate(0, 0, -90), false},
		{"yearly", now.AddDate(-1, 0, 0), false},
		{"all", time.Time{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			tr, err := ResolveTimeRange(tc.label, now)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAll, tr.All)
			if !tc.wantAll {
				assert.Equal(t, tc.wantStart, tr.Start)
				assert.Equal(t, now, tr.End)
			}
		})
	}
}

func TestResolveTimeRange_DefaultAndInvalid(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tr, err := ResolveTimeRange("", now)
	require.NoError(t, err)
	assert.Equal(t, "30d", tr.Label)

	_, err = ResolveTimeRange("2fortnights", now)
	assert.Error(t, err)
}

func TestLastNDays(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)

	tr := LastNDays(now, 7, loc)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, loc), tr.Start)
	assert.Equal(t, now, tr.End)

	// days < 1 dinormalisasi ke 1
	tr = LastNDays(now, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), tr.Start)
}
