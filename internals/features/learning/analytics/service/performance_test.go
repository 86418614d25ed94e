// file: internals/features/learning/analytics/service/performance_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

type topicFixture struct {
	topicID   uuid.UUID
	subjectID uuid.UUID
	topic     string
	subject   string
}

func newTopicFixture(topic, subject string) topicFixture {
	return topicFixture{
		topicID:   uuid.New(),
		subjectID: uuid.New(),
		topic:     topic,
		subject:   subject,
	}
}

func (f topicFixture) attempt(correct bool, spentSeconds int, at time.Time) amodel.AttemptModel {
	return amodel.AttemptModel{
		AttemptIsCorrect:        correct,
		AttemptTimeSpentSeconds: spentSeconds,
		AttemptSubmittedAt:      at,
		Question: &amodel.QuestionModel{
			QuestionID:         uuid.New(),
			QuestionDifficulty: amodel.QuestionDifficultyMedium,
			QuestionType:       amodel.QuestionTypeMCQ,
			QuestionTopicID:    f.topicID,
			QuestionSubjectID:  f.subjectID,
			Topic: &amodel.TopicModel{
				TopicID:        f.topicID,
				TopicName:      f.topic,
				TopicSubjectID: f.subjectID,
				Subject:        &amodel.SubjectModel{SubjectID: f.subjectID, SubjectName: f.subject},
			},
			Subject: &amodel.SubjectModel{SubjectID: f.subjectID, SubjectName: f.subject},
		},
	}
}

func TestCalcTopicPerformance_WeakAndFreshFirst(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC) }

	geometry := newTopicFixture("Geometry", "Math")     // 1/3 = 33.3%, terakhir hari 5
	numberTheory := newTopicFixture("Numbers", "Math")  // 1/3 = 33.3%, terakhir hari 2
	mechanics := newTopicFixture("Mechanics", "Physics") // 2/2 = 100%

	attempts := []amodel.AttemptModel{
		geometry.attempt(true, 60, day(1)),
		geometry.attempt(false, 90, day(3)),
		geometry.attempt(false, 30, day(5)),
		numberTheory.attempt(true, 45, day(1)),
		numberTheory.attempt(false, 45, day(2)),
		numberTheory.attempt(false, 45, day(2)),
		mechanics.attempt(true, 120, day(4)),
		mechanics.attempt(true, 100, day(4)),
	}

	got := CalcTopicPerformance(attempts)
	require.Len(t, got, 3)

	// accuracy ASC: dua topik lemah duluan; tie accuracy → yang paling baru
	// disentuh (Geometry, hari 5) di atas yang basi (Numbers, hari 2)
	assert.Equal(t, "Geometry", got[0].TopicName)
	assert.Equal(t, "Numbers", got[1].TopicName)
	assert.Equal(t, "Mechanics", got[2].TopicName)

	assert.Equal(t, 33.3, got[0].Accuracy)
	assert.Equal(t, day(5), got[0].LastAttempted)
	assert.Equal(t, 60.0, got[0].AvgTimeSeconds)
	assert.Equal(t, 100.0, got[2].Accuracy)
}

func TestCalcSubjectPerformance_GroupTotals(t *testing.T) {
	day := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	math := newTopicFixture("Algebra", "Math")
	physics := newTopicFixture("Optics", "Physics")

	attempts := []amodel.AttemptModel{
		math.attempt(true, 30, day),
		math.attempt(false, 50, day),
		physics.attempt(true, 80, day),
	}

	got := CalcSubjectPerformance(attempts)
	require.Len(t, got, 2)

	// accuracy ASC → Math (50%) sebelum Physics (100%)
	assert.Equal(t, "Math", got[0].SubjectName)
	assert.Equal(t, 2, got[0].TotalAttempts)
	assert.Equal(t, 50.0, got[0].Accuracy)
	assert.Equal(t, 40.0, got[0].AvgTimeSeconds)

	assert.Equal(t, "Physics", got[1].SubjectName)
	assert.Equal(t, 100.0, got[1].Accuracy)
}

func TestCalcPerformance_EmptyAndMissingMetadata(t *testing.T) {
	// attempt tanpa relasi question di-skip, bukan panic
	attempts := []amodel.AttemptModel{
		{AttemptIsCorrect: true, AttemptSubmittedAt: time.Now()},
	}
	assert.Empty(t, CalcTopicPerformance(attempts))
	assert.Empty(t, CalcSubjectPerformance(attempts))
	assert.Empty(t, CalcTopicPerformance(nil))
}
