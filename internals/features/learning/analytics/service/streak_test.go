// file: internals/features/learning/analytics/service/streak_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

func attemptOn(day string, correct bool) amodel.AttemptModel {
	ts, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		panic(err)
	}
	return amodel.AttemptModel{
		AttemptIsCorrect:   correct,
		AttemptSubmittedAt: ts.Add(9 * time.Hour), // jam 09:00 lokal
	}
}

func attemptsOn(days ...string) []amodel.AttemptModel {
	out := make([]amodel.AttemptModel, 0, len(days))
	for _, d := range days {
		out = append(out, attemptOn(d, true))
	}
	return out
}

func TestCalcStreaks_Empty(t *testing.T) {
	got := CalcStreaks(nil, time.Now(), time.UTC)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 0, got.LongestStreak)
}

func TestCalcStreaks_ActiveRun(t *testing.T) {
	// aktivitas 01, 03, 04, 05 — "hari ini" = 05
	attempts := attemptsOn("2024-01-01", "2024-01-03", "2024-01-04", "2024-01-05")
	now := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)

	got := CalcStreaks(attempts, now, time.UTC)
	assert.Equal(t, 3, got.CurrentStreak)
	assert.Equal(t, 3, got.LongestStreak)
}

func TestCalcStreaks_StaleAnchor(t *testing.T) {
	// aktivitas terakhir jauh di masa lalu → current 0, longest tetap kebaca
	attempts := attemptsOn("2024-01-01", "2024-01-02", "2024-01-10")
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := CalcStreaks(attempts, now, time.UTC)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 2, got.LongestStreak)
}

func TestCalcStreaks_YesterdayStillCounts(t *testing.T) {
	attempts := attemptsOn("2024-01-03", "2024-01-04")
	now := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC) // belum latihan hari ini

	got := CalcStreaks(attempts, now, time.UTC)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 2, got.LongestStreak)
}

func TestCalcStreaks_MultipleAttemptsSameDay(t *testing.T) {
	// banyak attempt di hari yang sama tetap dihitung 1 hari
	attempts := append(attemptsOn("2024-01-04", "2024-01-04", "2024-01-04"), attemptsOn("2024-01-05")...)
	now := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)

	got := CalcStreaks(attempts, now, time.UTC)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 2, got.LongestStreak)
}

func TestCalcStreaks_LongestNeverBelowCurrent(t *testing.T) {
	attempts := attemptsOn("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	got := CalcStreaks(attempts, now, time.UTC)
	assert.GreaterOrEqual(t, got.LongestStreak, got.CurrentStreak)
	assert.Equal(t, 5, got.CurrentStreak)
	assert.Equal(t, 5, got.LongestStreak)
}
