// file: internals/features/learning/analytics/service/distribution.go
package service

import (
	"olympiadku_backend/internals/features/learning/analytics/dto"
	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

// Urutan fixed supaya shape JSON stabil antar run.
var difficultyOrder = []amodel.QuestionDifficulty{
	amodel.QuestionDifficultyEasy,
	amodel.QuestionDifficultyMedium,
	amodel.QuestionDifficultyHard,
}

var questionTypeOrder = []amodel.QuestionType{
	amodel.QuestionTypeMCQ,
	amodel.QuestionTypeSubjective,
}

// CalcDifficultyDistribution: sebaran attempt per tingkat kesulitan soal,
// plus accuracy per bucket.
func CalcDifficultyDistribution(attempts []amodel.AttemptModel) []dto.DistributionBucket {
	counts := map[amodel.QuestionDifficulty]*bucketAgg{}
	classified := 0
	for i := range attempts {
		q := attempts[i].Question
		if q == nil || !q.QuestionDifficulty.Valid() {
			continue
		}
		a := counts[q.QuestionDifficulty]
		if a == nil {
			a = &bucketAgg{}
			counts[q.QuestionDifficulty] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
		classified++
	}

	out := make([]dto.DistributionBucket, 0, len(difficultyOrder))
	for _, d := range difficultyOrder {
		out = append(out, makeBucket(d.String(), counts[d], classified))
	}
	return out
}

// CalcQuestionTypeDistribution: sebaran attempt per tipe soal.
func CalcQuestionTypeDistribution(attempts []amodel.AttemptModel) []dto.DistributionBucket {
	counts := map[amodel.QuestionType]*bucketAgg{}
	classified := 0
	for i := range attempts {
		q := attempts[i].Question
		if q == nil || !q.QuestionType.Valid() {
			continue
		}
		a := counts[q.QuestionType]
		if a == nil {
			a = &bucketAgg{}
			counts[q.QuestionType] = a
		}
		a.total++
		if attempts[i].AttemptIsCorrect {
			a.correct++
		}
		classified++
	}

	out := make([]dto.DistributionBucket, 0, len(questionTypeOrder))
	for _, t := range questionTypeOrder {
		out = append(out, makeBucket(t.String(), counts[t], classified))
	}
	return out
}

type bucketAgg struct {
	total   int
	correct int
}

func makeBucket(label string, a *bucketAgg, classified int) dto.DistributionBucket {
	b := dto.DistributionBucket{Label: label}
	if a == nil {
		return b
	}
	b.Count = a.total
	b.Accuracy = accuracyPct(a.correct, a.total)
	if classified > 0 {
		b.Percentage = round1(float64(a.total) / float64(classified) * 100)
	}
	return b
}
