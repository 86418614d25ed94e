// file: internals/features/learning/analytics/service/distribution_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

func attemptWithQuestion(d amodel.QuestionDifficulty, qt amodel.QuestionType, correct bool) amodel.AttemptModel {
	return amodel.AttemptModel{
		AttemptIsCorrect:   correct,
		AttemptSubmittedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Question: &amodel.QuestionModel{
			QuestionID:         uuid.New(),
			QuestionDifficulty: d,
			QuestionType:       qt,
		},
	}
}

func TestCalcDifficultyDistribution_FixedBucketsAndShares(t *testing.T) {
	attempts := []amodel.AttemptModel{
		attemptWithQuestion(amodel.QuestionDifficultyEasy, amodel.QuestionTypeMCQ, true),
		attemptWithQuestion(amodel.QuestionDifficultyEasy, amodel.QuestionTypeMCQ, true),
		attemptWithQuestion(amodel.QuestionDifficultyMedium, amodel.QuestionTypeMCQ, false),
		attemptWithQuestion(amodel.QuestionDifficultyHard, amodel.QuestionTypeSubjective, true),
	}

	got := CalcDifficultyDistribution(attempts)
	require.Len(t, got, 3)

	// urutan bucket selalu easy → medium → hard
	assert.Equal(t, "easy", got[0].Label)
	assert.Equal(t, "medium", got[1].Label)
	assert.Equal(t, "hard", got[2].Label)

	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, 50.0, got[0].Percentage)
	assert.Equal(t, 100.0, got[0].Accuracy)

	assert.Equal(t, 1, got[1].Count)
	assert.Equal(t, 25.0, got[1].Percentage)
	assert.Equal(t, 0.0, got[1].Accuracy)

	sum := 0.0
	for _, b := range got {
		sum += b.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1.0)
}

func TestCalcQuestionTypeDistribution_SkipsUnclassified(t *testing.T) {
	attempts := []amodel.AttemptModel{
		attemptWithQuestion(amodel.QuestionDifficultyEasy, amodel.QuestionTypeMCQ, true),
		attemptWithQuestion(amodel.QuestionDifficultyEasy, amodel.QuestionTypeSubjective, false),
		// tanpa relasi question → tidak ikut dihitung dan tidak bikin panic
		{AttemptIsCorrect: true, AttemptSubmittedAt: time.Now()},
	}

	got := CalcQuestionTypeDistribution(attempts)
	require.Len(t, got, 2)

	assert.Equal(t, "mcq", got[0].Label)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 50.0, got[0].Percentage) // basis persentase = yang terklasifikasi saja

	assert.Equal(t, "subjective", got[1].Label)
	assert.Equal(t, 50.0, got[1].Percentage)
}

func TestCalcDistribution_EmptyKeepsBucketShape(t *testing.T) {
	got := CalcDifficultyDistribution(nil)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
		assert.Zero(t, b.Accuracy)
	}
}
