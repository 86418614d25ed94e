// file: internals/features/learning/analytics/service/daily_activity_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

func TestCalcDailyActivity_ZeroDaysIncluded(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)

	attempts := []amodel.AttemptModel{
		attemptOn("2024-01-01", true),
		attemptOn("2024-01-01", false),
		attemptOn("2024-01-04", true),
	}

	got := CalcDailyActivity(attempts, start, end, time.UTC)
	require.Len(t, got, 5) // 5 hari kalender, termasuk yang kosong

	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, 2, got[0].TotalAttempts)
	assert.Equal(t, 1, got[0].CorrectAttempts)
	assert.Equal(t, 50.0, got[0].Accuracy)

	// hari kosong muncul dengan accuracy 0, bukan hilang
	assert.Equal(t, "2024-01-02", got[1].Date)
	assert.Equal(t, 0, got[1].TotalAttempts)
	assert.Equal(t, 0.0, got[1].Accuracy)

	assert.Equal(t, "2024-01-04", got[3].Date)
	assert.Equal(t, 1, got[3].TotalAttempts)
	assert.Equal(t, 100.0, got[3].Accuracy)
}

func TestCalcDailyActivity_TotalsMatchAttemptCount(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	attempts := attemptsOn(
		"2024-01-01", "2024-01-01", "2024-01-03",
		"2024-01-07", "2024-01-07", "2024-01-07", "2024-01-10",
	)

	got := CalcDailyActivity(attempts, start, end, time.UTC)
	sum := 0
	for _, d := range got {
		sum += d.TotalAttempts
		assert.GreaterOrEqual(t, d.Accuracy, 0.0)
		assert.LessOrEqual(t, d.Accuracy, 100.0)
	}
	assert.Equal(t, len(attempts), sum)
}

func TestCalcDailyActivity_Empty(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	got := CalcDailyActivity(nil, start, end, time.UTC)
	require.Len(t, got, 3)
	for _, d := range got {
		assert.Zero(t, d.TotalAttempts)
		assert.Zero(t, d.Accuracy)
	}
}
