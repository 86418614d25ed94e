// file: internals/features/learning/attempts/model/question_model.go
package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: Question Difficulty ('easy','medium','hard')
============================================================================= */
type QuestionDifficulty string

const (
	QuestionDifficultyEasy   QuestionDifficulty = "easy"
	QuestionDifficultyMedium QuestionDifficulty = "medium"
	QuestionDifficultyHard   QuestionDifficulty = "hard"
)

func (d QuestionDifficulty) String() string { return string(d) }
func (d QuestionDifficulty) Valid() bool {
	switch d {
	case QuestionDifficultyEasy, QuestionDifficultyMedium, QuestionDifficultyHard:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (d *QuestionDifficulty) Scan(value any) error {
	if value == nil {
		*d = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*d = QuestionDifficulty(v)
	case []byte:
		*d = QuestionDifficulty(string(v))
	default:
		return fmt.Errorf("unsupported type for QuestionDifficulty: %T", value)
	}
	if !d.Valid() {
		return fmt.Errorf("invalid QuestionDifficulty: %q", *d)
	}
	return nil
}
func (d QuestionDifficulty) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	if !d.Valid() {
		return nil, fmt.Errorf("invalid QuestionDifficulty: %q", d)
	}
	return string(d), nil
}

/* =============================================================================
   ENUM-like: Question Type ('mcq','subjective')
============================================================================= */
type QuestionType string

const (
	QuestionTypeMCQ        QuestionType = "mcq"
	QuestionTypeSubjective QuestionType = "subjective"
)

func (t QuestionType) String() string { return string(t) }
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeSubjective:
		return true
	default:
		return false
	}
}

func (t *QuestionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = QuestionType(v)
	case []byte:
		*t = QuestionType(string(v))
	default:
		return fmt.Errorf("unsupported type for QuestionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid QuestionType: %q", *t)
	}
	return nil
}
func (t QuestionType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid QuestionType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: questions
   Read-only di pipeline ini: kepemilikan data ada di content-management.
============================================================================= */
type QuestionModel struct {
	// PK
	QuestionID uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Klasifikasi
	QuestionDifficulty QuestionDifficulty `json:"question_difficulty" gorm:"column:question_difficulty;type:varchar(8);not null;index:idx_questions_difficulty"`
	QuestionType       QuestionType       `json:"question_type" gorm:"column:question_type;type:varchar(16);not null"`

	// FK
	QuestionTopicID   uuid.UUID `json:"question_topic_id" gorm:"column:question_topic_id;type:uuid;not null;index:idx_questions_topic"`
	QuestionSubjectID uuid.UUID `json:"question_subject_id" gorm:"column:question_subject_id;type:uuid;not null;index:idx_questions_subject"`

	// Relasi (eager-load untuk breakdown per topic/subject)
	Topic   *TopicModel   `json:"topic,omitempty" gorm:"foreignKey:QuestionTopicID;references:TopicID"`
	Subject *SubjectModel `json:"subject,omitempty" gorm:"foreignKey:QuestionSubjectID;references:SubjectID"`
}

// Nama tabel eksplisit
func (QuestionModel) TableName() string { return "questions" }
