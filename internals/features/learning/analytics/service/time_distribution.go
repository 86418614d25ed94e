// file: internals/features/learning/analytics/service/time_distribution.go
package service

import (
	"time"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

// 4 window jam lokal yang fixed; urutan ini juga urutan tie-break
// (max pertama yang ketemu menang).
var timeOfDayLabels = [4]string{
	"00:00-05:59",
	"06:00-11:59",
	"12:00-17:59",
	"18:00-23:59",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// CalcTimeDistribution: bucket tiap attempt ke window jam lokal + hari dalam
// minggu. Bucket dengan count terbesar jadi "preferred study time" /
// "most active day".
func CalcTimeDistribution(attempts []amodel.AttemptModel, loc *time.Location) dto.TimeDistribution {
	var hourCounts [4]int
	var dayCounts [7]int

	for i := range attempts {
		lt := attempts[i].AttemptSubmittedAt.In(loc)
		hourCounts[lt.Hour()/6]++
		dayCounts[int(lt.Weekday())]++
	}

	total := len(attempts)
	buckets := make([]dto.TimeOfDayBucket, 0, 4)
	maxHourIdx := 0
	for i, cnt := range hourCounts {
		pct := 0.0
		if total > 0 {
			pct = round1(float64(cnt) / float64(total) * 100)
		}
		buckets = append(buckets, dto.TimeOfDayBucket{
			Label:      timeOfDayLabels[i],
			Count:      cnt,
			Percentage: pct,
		})
		if cnt > hourCounts[maxHourIdx] {
			maxHourIdx = i
		}
	}

	days := make([]dto.DayOfWeekBucket, 0, 7)
	maxDayIdx := 0
	for i, cnt := range dayCounts {
		days = append(days, dto.DayOfWeekBucket{Day: dayNames[i], Count: cnt})
		if cnt > dayCounts[maxDayIdx] {
			maxDayIdx = i
		}
	}

	out := dto.TimeDistribution{
		Buckets:    buckets,
		DaysOfWeek: days,
	}
	if total > 0 {
		out.PreferredStudyTime = timeOfDayLabels[maxHourIdx]
		out.MostActiveDay = dayNames[maxDayIdx]
	}
	return out
}
