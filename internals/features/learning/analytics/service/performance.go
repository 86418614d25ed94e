// file: internals/features/learning/analytics/service/performance.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

/* =========================================================
   Breakdown per subject / per topic
========================================================= */

type perfAgg struct {
	name        string
	subjectName string
	total       int
	correct     int
	timeSpent   int
	lastAt      time.Time
}

// CalcSubjectPerformance: group by subject, urut accuracy ASC (yang paling
// lemah duluan) lalu nama untuk determinisme.
func CalcSubjectPerformance(attempts []amodel.AttemptModel) []dto.SubjectPerformance {
	aggs := map[uuid.UUID]*perfAgg{}
	for i := range attempts {
		q := attempts[i].Question
		if q == nil || q.Subject == nil {
			continue
		}
		a := aggs[q.QuestionSubjectID]
		if a == nil {
			a = &perfAgg{name: q.Subject.SubjectName}
			aggs[q.QuestionSubjectID] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
		a.timeSpent += attempts[i].AttemptTimeSpentSeconds
	}

	out := make([]dto.SubjectPerformance, 0, len(aggs))
	for id, a := range aggs {
		out = append(out, dto.SubjectPerformance{
			SubjectID:       id,
			SubjectName:     a.name,
			TotalAttempts:   a.total,
			CorrectAttempts: a.correct,
			Accuracy:        accuracyPct(a.correct, a.total),
			AvgTimeSeconds:  avgSeconds(a.timeSpent, a.total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		return out[i].SubjectName < out[j].SubjectName
	})
	return out
}

// CalcTopicPerformance: group by topic. Urutan disengaja: accuracy ASC lalu
// last_attempted DESC — topik lemah yang baru saja disentuh naik ke atas,
// topik lemah yang sudah lama basi turun.
func CalcTopicPerformance(attempts []amodel.AttemptModel) []dto.TopicPerformance {
	aggs := map[uuid.UUID]*perfAgg{}
	for i := range attempts {
		q := attempts[i].Question
		if q == nil || q.Topic == nil {
			continue
		}
		a := aggs[q.QuestionTopicID]
		if a == nil {
			a = &perfAgg{name: q.Topic.TopicName}
			if q.Topic.Subject != nil {
				a.subjectName = q.Topic.Subject.SubjectName
			}
			aggs[q.QuestionTopicID] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
		a.timeSpent += attempts[i].AttemptTimeSpentSeconds
		if attempts[i].AttemptSubmittedAt.After(a.lastAt) {
			a.lastAt = attempts[i].AttemptSubmittedAt
		}
	}

	out := make([]dto.TopicPerformance, 0, len(aggs))
	for id, a := range aggs {
		out = append(out, dto.TopicPerformance{
			TopicID:         id,
			TopicName:       a.name,
			SubjectName:     a.subjectName,
			TotalAttempts:   a.total,
			CorrectAttempts: a.correct,
			Accuracy:        accuracyPct(a.correct, a.total),
			AvgTimeSeconds:  avgSeconds(a.timeSpent, a.total),
			LastAttempted:   a.lastAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		if !out[i].LastAttempted.Equal(out[j].LastAttempted) {
			return out[i].LastAttempted.After(out[j].LastAttempted)
		}
		return out[i].TopicName < out[j].TopicName
	})
	return out
}

func avgSeconds(totalSeconds, n int) float64 {
	if n == 0 {
		return 0
	}
	return round1(float64(totalSeconds) / float64(n))
}
