// file: internals/features/learning/leaderboard/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	leaderboardController "olympiadku_backend/internals/features/learning/leaderboard/controller"
)

func LeaderboardAdminRoutes(r fiber.Router, db *gorm.DB, cache *database.RedisCache) {
	ctrl := leaderboardController.NewLeaderboardController(db, cache)
	lb := r.Group("/leaderboard") // -> /api/a/leaderboard

	lb.Post("/xp", ctrl.AwardXP) // POST /api/a/leaderboard/xp
}
