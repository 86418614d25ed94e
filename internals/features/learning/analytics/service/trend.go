// file: internals/features/learning/analytics/service/trend.go
package service

import (
	"sort"
	"time"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

const DefaultTrendWindow = 7

// CalcAccuracyTrend: trailing moving average accuracy atas N hari-dengan-data
// terakhir (bukan N hari kalender — gap tanggal tidak dihitung) yang berakhir
// di tiap hari berdata. Di awal series window-nya parsial dan WindowSize
// dilaporkan apa adanya, tidak di-pad.
func CalcAccuracyTrend(attempts []amodel.AttemptModel, window int, loc *time.Location) []dto.TrendPoint {
	if window < 1 {
		window = DefaultTrendWindow
	}

	type dayAgg struct {
		date    string
		total   int
		correct int
	}
	byDay := map[string]*dayAgg{}
	for i := range attempts {
		key := attempts[i].AttemptSubmittedAt.In(loc).Format(dateLayout)
		a := byDay[key]
		if a == nil {
			a = &dayAgg{date: key}
			byDay[key] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
	}

	days := make([]*dayAgg, 0, len(byDay))
	for _, a := range byDay {
		days = append(days, a)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date < days[j].date })

	out := []dto.TrendPoint{}
	for i := range days {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		total, correct := 0, 0
		for j := lo; j <= i; j++ {
			total += days[j].total
			correct += days[j].correct
		}
		out = append(out, dto.TrendPoint{
			Date:          days[i].date,
			Accuracy:      accuracyPct(correct, total),
			TotalInWindow: total,
			WindowSize:    i - lo + 1,
		})
	}
	return out
}
