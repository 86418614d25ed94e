// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	analyticsRoute "olympiadku_backend/internals/features/learning/analytics/route"
	attemptsRoute "olympiadku_backend/internals/features/learning/attempts/route"
	leaderboardRoute "olympiadku_backend/internals/features/learning/leaderboard/route"
	authMw "olympiadku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cache *database.RedisCache) {
	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())

	attemptsRoute.AttemptsUserRoutes(private, db, cache)
	analyticsRoute.AnalyticsUserRoutes(private, db, cache)
	leaderboardRoute.LeaderboardUserRoutes(private, db, cache)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(), authMw.AdminOnly())

	leaderboardRoute.LeaderboardAdminRoutes(admin, db, cache)
}
