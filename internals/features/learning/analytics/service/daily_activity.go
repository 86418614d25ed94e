// file: internals/features/learning/analytics/service/daily_activity.go
package service

import (
	"math"
	"time"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

const dateLayout = "2006-01-02"

// CalcDailyActivity: satu entry per hari kalender dalam [start, end]
// (enumerasi hari, bukan cuma hari berdata). Hari kosong ikut muncul
// dengan accuracy 0 supaya chart di FE tidak bolong.
func CalcDailyActivity(attempts []amodel.AttemptModel, start, end time.Time, loc *time.Location) []dto.DailyActivity {
	type agg struct {
		total   int
		correct int
	}
	byDay := map[string]*agg{}
	for i := range attempts {
		day := attempts[i].AttemptSubmittedAt.In(loc).Format(dateLayout)
		a := byDay[day]
		if a == nil {
			a = &agg{}
			byDay[day] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
	}

	startDay := truncateToDay(start, loc)
	endDay := truncateToDay(end, loc)

	out := []dto.DailyActivity{}
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		entry := dto.DailyActivity{Date: key}
		if a, ok := byDay[key]; ok {
			entry.TotalAttempts = a.total
			entry.CorrectAttempts = a.correct
			entry.Accuracy = accuracyPct(a.correct, a.total)
		}
		out = append(out, entry)
	}
	return out
}

func truncateToDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// accuracyPct: correct/total × 100, dibulatkan 1 desimal.
// total == 0 → 0 (jangan pernah NaN).
func accuracyPct(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(correct) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
