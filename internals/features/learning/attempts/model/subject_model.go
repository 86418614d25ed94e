// file: internals/features/learning/attempts/model/subject_model.go
package model

import (
	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: subjects (reference data, read-only)
============================================================================= */
type SubjectModel struct {
	SubjectID   uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectName string    `json:"subject_name" gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectSlug string    `json:"subject_slug" gorm:"column:subject_slug;type:varchar(140);not null;uniqueIndex:uq_subjects_slug"`
}

func (SubjectModel) TableName() string { return "subjects" }
