// file: internals/features/learning/leaderboard/controller/leaderboard_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"olympiadku_backend/internals/configs"
	database "olympiadku_backend/internals/databases"
	ldto "olympiadku_backend/internals/features/learning/leaderboard/dto"
	lservice "olympiadku_backend/internals/features/learning/leaderboard/service"
	helper "olympiadku_backend/internals/helpers"
)

type LeaderboardController struct {
	DB        *gorm.DB
	Service   *lservice.LeaderboardService
	validator *validator.Validate
}

func NewLeaderboardController(db *gorm.DB, cache *database.RedisCache) *LeaderboardController {
	return &LeaderboardController{
		DB:      db,
		Service: lservice.NewLeaderboardService(db, cache, configs.LeaderboardTTL),
	}
}

func (ctl *LeaderboardController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Handlers
========================================================= */

// GET /api/u/leaderboard?time_range=&cohort_id=&limit=&offset=&cache=
// Halaman ranking + posisi user sendiri ("me") kalau tidak masuk halaman.
func (ctl *LeaderboardController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// validasi label time_range (hanya dipakai sebagai segmen cache key;
	// skor user_stats bersifat all-time)
	label := c.Query("time_range", "all")
	if _, err := helper.ResolveTimeRange(label, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 10, 100)
	params := lservice.LeaderboardParams{
		TimeRangeLabel: label,
		Limit:          paging.Limit,
		Offset:         paging.Offset,
		TargetUserID:   &userID,
		UseCache:       !strings.EqualFold(c.Query("cache"), "false"),
	}
	if raw := strings.TrimSpace(c.Query("cohort_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cohort_id tidak valid")
		}
		params.CohortID = &id
	}

	resp, err := ctl.Service.GetLeaderboard(c.UserContext(), params)
	if err != nil {
		log.Printf("[LeaderboardController] ERROR get leaderboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}
	return helper.JsonOK(c, "", resp)
}

// POST /api/a/leaderboard/xp
// Award XP ke user (admin) → standings berubah → cache di-invalidate wholesale.
func (ctl *LeaderboardController) AwardXP(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req ldto.AwardXPRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[LeaderboardController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "user_id wajib dan xp harus > 0")
	}

	stat, err := ctl.Service.AwardXP(c.UserContext(), req.UserID, req.XP, time.Now())
	if err != nil {
		log.Printf("[LeaderboardController] ERROR award xp: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah XP")
	}
	return helper.JsonOK(c, "XP ditambahkan", stat)
}
