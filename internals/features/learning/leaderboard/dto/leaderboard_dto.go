// file: internals/features/learning/leaderboard/dto/leaderboard_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ==========================================================================================
   DERIVED — entry leaderboard tidak dipersist, dihitung per request.
========================================================================================== */

type LeaderboardEntry struct {
	Rank       int       `json:"rank"` // 1-based, competition ranking
	UserID     uuid.UUID `json:"user_id"`
	Level      int       `json:"level"`
	XP         int       `json:"xp"`
	Percentile float64   `json:"percentile"` // (n − rank)/(n − 1) × 100, 1 desimal
}

// LeaderboardPage: unit yang di-cache (per time_range+cohort+limit+offset).
// Entry target user TIDAK masuk sini — dia per-user, di luar cache key.
type LeaderboardPage struct {
	Entries []LeaderboardEntry `json:"entries"`
	Total   int64              `json:"total"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Total   int64              `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Me      *LeaderboardEntry  `json:"me,omitempty"`
}

/* ==========================================================================================
   REQUEST — award XP (admin)
========================================================================================== */

type AwardXPRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required,uuid"`
	XP     int       `json:"xp" validate:"required,gt=0"`
}
