// file: internals/features/learning/analytics/controller/analytics_controller.go
package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"olympiadku_backend/internals/configs"
	database "olympiadku_backend/internals/databases"
	anservice "olympiadku_backend/internals/features/learning/analytics/service"
	aservice "olympiadku_backend/internals/features/learning/attempts/service"
	helper "olympiadku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Service *anservice.AnalyticsService
	Fetcher *aservice.AttemptFetcherService
}

func NewAnalyticsController(db *gorm.DB, cache *database.RedisCache) *AnalyticsController {
	return &AnalyticsController{
		DB:      db,
		Service: anservice.NewAnalyticsService(db, cache, configs.AnalyticsTTL),
		Fetcher: aservice.NewAttemptFetcherService(db),
	}
}

/* =========================================================
   Helpers — parse params umum
========================================================= */

func (ctl *AnalyticsController) resolveParams(c *fiber.Ctx) (uuid.UUID, helper.TimeRange, time.Time, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, helper.TimeRange{}, time.Time{}, err
	}
	now := time.Now()
	tr, err := helper.ResolveTimeRange(c.Query("time_range", "30d"), now)
	if err != nil {
		return uuid.Nil, helper.TimeRange{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return userID, tr, now, nil
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	if raw := strings.TrimSpace(c.Query(key)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return def
}

/* =========================================================
   Handlers
========================================================= */

// GET /api/u/analytics/dashboard?time_range=&days=&subject_id=&cache=
// Response gabungan semua kalkulator (summary, daily activity, breakdown
// subject/topic, trend, distribusi waktu/kesulitan/tipe, streak).
func (ctl *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	userID, tr, now, err := ctl.resolveParams(c)
	if err != nil {
		return err
	}

	params := anservice.DashboardParams{
		UserID:      userID,
		TimeRange:   tr,
		TrendWindow: queryInt(c, "days", anservice.DefaultTrendWindow),
		UseCache:    !strings.EqualFold(c.Query("cache"), "false"),
		Now:         now,
	}
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		params.SubjectID = &id
	}

	resp, err := ctl.Service.GetDashboard(c.UserContext(), params)
	if err != nil {
		log.Printf("[AnalyticsController] ERROR dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung dashboard")
	}
	return helper.JsonOK(c, "", resp)
}

// GET /api/u/analytics/daily-activity?days=30
func (ctl *AnalyticsController) DailyActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	now := time.Now()
	days := queryInt(c, "days", 30)
	tr := helper.LastNDays(now, days, time.Local)

	attempts, err := ctl.Fetcher.FetchAttempts(c.UserContext(), aservice.FetchParams{
		UserID: &userID, Start: tr.Start, End: tr.End,
	})
	if err != nil {
		log.Printf("[AnalyticsController] ERROR daily activity: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil aktivitas harian")
	}
	return helper.JsonOK(c, "", anservice.CalcDailyActivity(attempts, tr.Start, now, time.Local))
}

// GET /api/u/analytics/streaks
// Streak dihitung dari seluruh riwayat (anchor = hari ini / kemarin).
func (ctl *AnalyticsController) Streaks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	now := time.Now()

	attempts, err := ctl.Fetcher.FetchAttempts(c.UserContext(), aservice.FetchParams{
		UserID: &userID, All: true,
	})
	if err != nil {
		log.Printf("[AnalyticsController] ERROR streaks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung streak")
	}
	return helper.JsonOK(c, "", anservice.CalcStreaks(attempts, now, time.Local))
}

// GET /api/u/analytics/trends?time_range=&days=7
func (ctl *AnalyticsController) Trends(c *fiber.Ctx) error {
	userID, tr, _, err := ctl.resolveParams(c)
	if err != nil {
		return err
	}
	window := queryInt(c, "days", anservice.DefaultTrendWindow)

	attempts, err := ctl.Fetcher.FetchAttempts(c.UserContext(), aservice.FetchParams{
		UserID: &userID, Start: tr.Start, End: tr.End, All: tr.All,
	})
	if err != nil {
		log.Printf("[AnalyticsController] ERROR trends: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung trend")
	}
	return helper.JsonOK(c, "", anservice.CalcAccuracyTrend(attempts, window, time.Local))
}

// GET /api/u/analytics/time-distribution?time_range=
func (ctl *AnalyticsController) TimeDistribution(c *fiber.Ctx) error {
	userID, tr, _, err := ctl.resolveParams(c)
	if err != nil {
		return err
	}

	attempts, err := ctl.Fetcher.FetchAttempts(c.UserContext(), aservice.FetchParams{
		UserID: &userID, Start: tr.Start, End: tr.End, All: tr.All,
	})
	if err != nil {
		log.Printf("[AnalyticsController] ERROR time distribution: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung distribusi waktu")
	}
	return helper.JsonOK(c, "", anservice.CalcTimeDistribution(attempts, time.Local))
}

// GET /api/u/analytics/subject-performance?time_range=
func (ctl *AnalyticsController) SubjectPerformance(c *fiber.Ctx) error {
	userID, tr, _, err := ctl.resolveParams(c)
	if err != nil {
		return err
	}

	attempts, err := ctl.Fetcher.FetchAttempts(c.UserContext(), aservice.FetchParams{
		UserID: &userID, Start: tr.Start, End: tr.End, All: tr.All,
	})
	if err != nil {
		log.Printf("[AnalyticsController] ERROR subject performance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung performa subject")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"subject_performance": anservice.CalcSubjectPerformance(attempts),
		"topic_performance":   anservice.CalcTopicPerformance(attempts),
	})
}
