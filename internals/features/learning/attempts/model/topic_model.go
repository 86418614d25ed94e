// file: internals/features/learning/attempts/model/topic_model.go
package model

import (
	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: topics (reference data, read-only)
   Hierarki: Subject has many Topics.
============================================================================= */
type TopicModel struct {
	TopicID        uuid.UUID `json:"topic_id" gorm:"column:topic_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TopicName      string    `json:"topic_name" gorm:"column:topic_name;type:varchar(120);not null"`
	TopicSubjectID uuid.UUID `json:"topic_subject_id" gorm:"column:topic_subject_id;type:uuid;not null;index:idx_topics_subject"`

	Subject *SubjectModel `json:"subject,omitempty" gorm:"foreignKey:TopicSubjectID;references:SubjectID"`
}

func (TopicModel) TableName() string { return "topics" }
