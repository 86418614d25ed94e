// file: internals/features/learning/attempts/model/attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: user_attempts
   Append-only log: satu jawaban user atas satu soal. Pipeline analitik tidak
   pernah update/delete baris di sini.
============================================================================= */
type AttemptModel struct {
	// PK
	AttemptID uuid.UUID `json:"attempt_id" gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	AttemptUserID     uuid.UUID `json:"attempt_user_id" gorm:"column:attempt_user_id;type:uuid;not null;index:idx_attempts_user_submitted,priority:1"`
	AttemptQuestionID uuid.UUID `json:"attempt_question_id" gorm:"column:attempt_question_id;type:uuid;not null;index:idx_attempts_question"`

	// Opsional: attempt bagian dari quiz/test tertentu (DPP lepas → NULL)
	AttemptQuizID *uuid.UUID `json:"attempt_quiz_id,omitempty" gorm:"column:attempt_quiz_id;type:uuid;index:idx_attempts_quiz"`

	// Hasil
	AttemptIsCorrect        bool `json:"attempt_is_correct" gorm:"column:attempt_is_correct;not null"`
	AttemptTimeSpentSeconds int  `json:"attempt_time_spent_seconds" gorm:"column:attempt_time_spent_seconds;not null;default:0;check:attempt_time_spent_seconds >= 0"`

	// Waktu
	AttemptSubmittedAt time.Time `json:"attempt_submitted_at" gorm:"column:attempt_submitted_at;type:timestamptz;not null;default:now();index:idx_attempts_user_submitted,priority:2;index:brin_attempts_submitted_at,using:brin"`

	// Audit
	AttemptCreatedAt time.Time `json:"attempt_created_at" gorm:"column:attempt_created_at;type:timestamptz;not null;default:now()"`

	// Relasi (question → topic → subject, untuk breakdown metrik)
	Question *QuestionModel `json:"question,omitempty" gorm:"foreignKey:AttemptQuestionID;references:QuestionID"`
}

// Nama tabel eksplisit
func (AttemptModel) TableName() string { return "user_attempts" }
