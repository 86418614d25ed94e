// file: internals/features/learning/attempts/dto/attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

/* ==========================================================================================
   REQUEST — CREATE
   Use case: mencatat satu jawaban (append-only; tidak ada update/delete).
========================================================================================== */

type CreateAttemptRequest struct {
	// Wajib
	AttemptQuestionID uuid.UUID `json:"attempt_question_id" validate:"required,uuid"`
	AttemptIsCorrect  *bool     `json:"attempt_is_correct" validate:"required"`

	// Opsional
	AttemptQuizID           *uuid.UUID `json:"attempt_quiz_id" validate:"omitempty,uuid"`
	AttemptTimeSpentSeconds int        `json:"attempt_time_spent_seconds" validate:"gte=0"`
	AttemptSubmittedAt      *time.Time `json:"attempt_submitted_at" validate:"omitempty"`
}

func (r *CreateAttemptRequest) ToModel(userID uuid.UUID) *amodel.AttemptModel {
	m := &amodel.AttemptModel{
		AttemptUserID:           userID,
		AttemptQuestionID:       r.AttemptQuestionID,
		AttemptQuizID:           r.AttemptQuizID,
		AttemptTimeSpentSeconds: r.AttemptTimeSpentSeconds,
	}
	if r.AttemptIsCorrect != nil {
		m.AttemptIsCorrect = *r.AttemptIsCorrect
	}
	if r.AttemptSubmittedAt != nil {
		m.AttemptSubmittedAt = *r.AttemptSubmittedAt
	}
	return m
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type AttemptResponse struct {
	AttemptID               uuid.UUID  `json:"attempt_id"`
	AttemptUserID           uuid.UUID  `json:"attempt_user_id"`
	AttemptQuestionID       uuid.UUID  `json:"attempt_question_id"`
	AttemptQuizID           *uuid.UUID `json:"attempt_quiz_id,omitempty"`
	AttemptIsCorrect        bool       `json:"attempt_is_correct"`
	AttemptTimeSpentSeconds int        `json:"attempt_time_spent_seconds"`
	AttemptSubmittedAt      time.Time  `json:"attempt_submitted_at"`

	QuestionDifficulty string `json:"question_difficulty,omitempty"`
	QuestionType       string `json:"question_type,omitempty"`
	TopicName          string `json:"topic_name,omitempty"`
	SubjectName        string `json:"subject_name,omitempty"`
}

func FromModel(m *amodel.AttemptModel) AttemptResponse {
	resp := AttemptResponse{
		AttemptID:               m.AttemptID,
		AttemptUserID:           m.AttemptUserID,
		AttemptQuestionID:       m.AttemptQuestionID,
		AttemptQuizID:           m.AttemptQuizID,
		AttemptIsCorrect:        m.AttemptIsCorrect,
		AttemptTimeSpentSeconds: m.AttemptTimeSpentSeconds,
		AttemptSubmittedAt:      m.AttemptSubmittedAt,
	}
	if q := m.Question; q != nil {
		resp.QuestionDifficulty = q.QuestionDifficulty.String()
		resp.QuestionType = q.QuestionType.String()
		if q.Topic != nil {
			resp.TopicName = q.Topic.TopicName
		}
		if q.Subject != nil {
			resp.SubjectName = q.Subject.SubjectName
		}
	}
	return resp
}

func FromModels(ms []amodel.AttemptModel) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
