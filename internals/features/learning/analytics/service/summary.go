// file: internals/features/learning/analytics/service/summary.go
package service

import (
	"time"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

// CalcSummary: rollup total untuk header dashboard.
func CalcSummary(attempts []amodel.AttemptModel, loc *time.Location) dto.Summary {
	s := dto.Summary{}
	activeDays := map[string]struct{}{}
	for i := range attempts {
		s.TotalAttempts++
		if attempts[i].AttemptIsCorrect {
			s.CorrectAttempts++
		}
		s.TotalTimeSeconds += attempts[i].AttemptTimeSpentSeconds
		activeDays[attempts[i].AttemptSubmittedAt.In(loc).Format(dateLayout)] = struct{}{}
	}
	s.Accuracy = accuracyPct(s.CorrectAttempts, s.TotalAttempts)
	s.AvgTimeSeconds = avgSeconds(s.TotalTimeSeconds, s.TotalAttempts)
	s.ActiveDays = len(activeDays)
	return s
}
