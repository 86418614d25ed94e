// file: internals/features/learning/analytics/service/streak.go
package service

import (
	"sort"
	"time"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

// CalcStreaks: hitung streak dari tanggal kalender lokal yang punya ≥1 attempt.
// `now` di-inject (bukan time.Now()) supaya batas "hari ini" deterministik.
//
//   - Current streak: valid hanya kalau aktivitas terakhir jatuh di hari ini
//     atau kemarin; dari anchor itu jalan mundur selama gap antar tanggal
//     tepat 1 hari.
//   - Longest streak: satu scan atas daftar tanggal terurut, counter naik saat
//     gap tepat 1 hari, reset ke 1 kalau tidak.
func CalcStreaks(attempts []amodel.AttemptModel, now time.Time, loc *time.Location) dto.StreakState {
	if len(attempts) == 0 {
		return dto.StreakState{}
	}

	// kumpulkan tanggal unik (hari kalender lokal), sort ASC
	seen := map[string]time.Time{}
	for i := range attempts {
		d := truncateToDay(attempts[i].AttemptSubmittedAt, loc)
		seen[d.Format(dateLayout)] = d
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// longest: satu scan
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if isNextCalendarDay(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// current: anchor harus hari ini atau kemarin
	current := 0
	today := truncateToDay(now, loc)
	last := days[len(days)-1]
	if last.Equal(today) || isNextCalendarDay(last, today) {
		current = 1
		for i := len(days) - 1; i > 0; i-- {
			if isNextCalendarDay(days[i-1], days[i]) {
				current++
			} else {
				break
			}
		}
	}

	return dto.StreakState{CurrentStreak: current, LongestStreak: longest}
}

// isNextCalendarDay: b tepat satu hari kalender setelah a
// (pakai AddDate, bukan +24h, supaya aman lintas DST).
func isNextCalendarDay(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}
