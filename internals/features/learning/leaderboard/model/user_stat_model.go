// file: internals/features/learning/leaderboard/model/user_stat_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   MODEL: user_stats
   Skor gamifikasi per user: (level, xp) dibandingkan leksikografis DESC.
   updated_at ikut menentukan urutan (yang duluan mencapai skor menang).
============================================================================= */
type UserStatModel struct {
	// PK (1 baris per user)
	UserStatUserID uuid.UUID `json:"user_stat_user_id" gorm:"column:user_stat_user_id;type:uuid;primaryKey"`

	// Skor
	UserStatLevel int `json:"user_stat_level" gorm:"column:user_stat_level;not null;default:1;index:idx_user_stats_score,priority:1,sort:desc"`
	UserStatXP    int `json:"user_stat_xp" gorm:"column:user_stat_xp;not null;default:0;index:idx_user_stats_score,priority:2,sort:desc"`

	// Opsional: scoping populasi leaderboard per cohort
	UserStatCohortID *uuid.UUID `json:"user_stat_cohort_id,omitempty" gorm:"column:user_stat_cohort_id;type:uuid;index:idx_user_stats_cohort"`

	// Badge yang sudah diraih (array of badge code)
	UserStatBadges datatypes.JSON `json:"user_stat_badges,omitempty" gorm:"column:user_stat_badges;type:jsonb"`

	// Audit — updated_at dipakai sebagai tie-break ranking, jangan auto-touch
	UserStatCreatedAt time.Time `json:"user_stat_created_at" gorm:"column:user_stat_created_at;type:timestamptz;not null;default:now()"`
	UserStatUpdatedAt time.Time `json:"user_stat_updated_at" gorm:"column:user_stat_updated_at;type:timestamptz;not null;default:now()"`
}

// Nama tabel eksplisit
func (UserStatModel) TableName() string { return "user_stats" }

// LevelForXP: aturan level sederhana — naik level tiap 1000 XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/1000 + 1
}
