// file: internals/features/learning/attempts/controller/attempts_controller.go
package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	adto "olympiadku_backend/internals/features/learning/attempts/dto"
	aservice "olympiadku_backend/internals/features/learning/attempts/service"
	helper "olympiadku_backend/internals/helpers"
)

type AttemptsController struct {
	DB        *gorm.DB
	Fetcher   *aservice.AttemptFetcherService
	Cache     *database.RedisCache
	validator *validator.Validate
}

func NewAttemptsController(db *gorm.DB, cache *database.RedisCache) *AttemptsController {
	return &AttemptsController{
		DB:      db,
		Fetcher: aservice.NewAttemptFetcherService(db),
		Cache:   cache,
	}
}

func (ctl *AttemptsController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Handlers
========================================================= */

// POST /api/u/attempts
// Catat satu jawaban ke log append-only, lalu invalidate cache
// analitik milik user (fire-and-forget).
func (ctl *AttemptsController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req adto.CreateAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[AttemptsController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	m := req.ToModel(userID)
	if m.AttemptSubmittedAt.IsZero() {
		m.AttemptSubmittedAt = time.Now()
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Printf("[AttemptsController] ERROR create attempt: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan attempt")
	}

	// cache analitik user jadi basi → hapus by prefix, gagal cukup di-log
	go func(uid string) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if _, err := ctl.Cache.DeleteByPrefix(ctx, fmt.Sprintf("analytics:%s:", uid)); err != nil {
			log.Printf("[AttemptsController] cache invalidate err: %v", err)
		}
	}(userID.String())

	return helper.JsonCreated(c, "Attempt tercatat", adto.FromModel(m))
}

// GET /api/u/attempts?time_range=&subject_id=&quiz_id=&page=&per_page=
// Riwayat attempt milik user (paged, terbaru dulu).
func (ctl *AttemptsController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tr, err := helper.ResolveTimeRange(c.Query("time_range", "all"), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	params := aservice.FetchParams{
		UserID: &userID,
		Start:  tr.Start,
		End:    tr.End,
		All:    tr.All,
	}
	if sid, err := parseOptionalUUID(c.Query("subject_id")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
	} else if sid != nil {
		params.SubjectID = sid
	}
	if qid, err := parseOptionalUUID(c.Query("quiz_id")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id tidak valid")
	} else if qid != nil {
		params.QuizID = qid
	}

	paging := helper.ResolvePaging(c, 25, 200)
	attempts, total, err := ctl.Fetcher.FetchPage(c.UserContext(), params, paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[AttemptsController] ERROR fetch attempts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat attempt")
	}

	data := adto.FromModels(attempts)
	return helper.JsonList(c, "", data,
		helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}
