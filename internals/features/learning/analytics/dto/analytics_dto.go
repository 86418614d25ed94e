// file: internals/features/learning/analytics/dto/analytics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ==========================================================================================
   DERIVED METRICS — tidak pernah dipersist, dihitung fresh per request.
   Semua field eksplisit (bukan map dinamis) supaya shape JSON stabil:
   hasil cache harus byte-identical dengan hasil komputasi ulang.
========================================================================================== */

// DailyActivity: satu entry per hari kalender dalam window,
// termasuk hari tanpa aktivitas (accuracy 0, bukan dihilangkan).
type DailyActivity struct {
	Date            string  `json:"date"` // YYYY-MM-DD (tanggal lokal)
	TotalAttempts   int     `json:"total_attempts"`
	CorrectAttempts int     `json:"correct_attempts"`
	Accuracy        float64 `json:"accuracy"`
}

type SubjectPerformance struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	Accuracy        float64   `json:"accuracy"`
	AvgTimeSeconds  float64   `json:"avg_time_seconds"`
}

type TopicPerformance struct {
	TopicID         uuid.UUID `json:"topic_id"`
	TopicName       string    `json:"topic_name"`
	SubjectName     string    `json:"subject_name"`
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	Accuracy        float64   `json:"accuracy"`
	AvgTimeSeconds  float64   `json:"avg_time_seconds"`
	LastAttempted   time.Time `json:"last_attempted"`
}

type TimeOfDayBucket struct {
	Label      string  `json:"label"` // "00:00-05:59" dst
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DayOfWeekBucket struct {
	Day   string `json:"day"` // "Sunday".."Saturday"
	Count int    `json:"count"`
}

type TimeDistribution struct {
	Buckets            []TimeOfDayBucket `json:"buckets"`
	PreferredStudyTime string            `json:"preferred_study_time"`
	DaysOfWeek         []DayOfWeekBucket `json:"days_of_week"`
	MostActiveDay      string            `json:"most_active_day"`
}

// StreakState: hitungan hari kalender berurutan (tanggal lokal, bukan window 24 jam).
type StreakState struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// TrendPoint: moving average accuracy atas N hari-dengan-data terakhir.
// WindowSize bisa < N di awal series (partial window dilaporkan jujur).
type TrendPoint struct {
	Date          string  `json:"date"`
	Accuracy      float64 `json:"accuracy"`
	TotalInWindow int     `json:"total_in_window"`
	WindowSize    int     `json:"window_size"`
}

type DistributionBucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Accuracy   float64 `json:"accuracy"`
}

type Summary struct {
	TotalAttempts    int     `json:"total_attempts"`
	CorrectAttempts  int     `json:"correct_attempts"`
	Accuracy         float64 `json:"accuracy"`
	TotalTimeSeconds int     `json:"total_time_seconds"`
	AvgTimeSeconds   float64 `json:"avg_time_seconds"`
	ActiveDays       int     `json:"active_days"`
}

// DashboardResponse: gabungan semua kalkulator untuk satu user + window.
type DashboardResponse struct {
	Summary                  Summary              `json:"summary"`
	DailyActivity            []DailyActivity      `json:"daily_activity"`
	SubjectPerformance       []SubjectPerformance `json:"subject_performance"`
	TopicPerformance         []TopicPerformance   `json:"topic_performance"`
	AccuracyTrends           []TrendPoint         `json:"accuracy_trends"`
	TimeDistribution         TimeDistribution     `json:"time_distribution"`
	DifficultyDistribution   []DistributionBucket `json:"difficulty_distribution"`
	QuestionTypeDistribution []DistributionBucket `json:"question_type_distribution"`
	Streaks                  StreakState          `json:"streaks"`
}
