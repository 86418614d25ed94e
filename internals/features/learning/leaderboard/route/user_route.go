// file: internals/features/learning/leaderboard/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	leaderboardController "olympiadku_backend/internals/features/learning/leaderboard/controller"
)

func LeaderboardUserRoutes(r fiber.Router, db *gorm.DB, cache *database.RedisCache) {
	ctrl := leaderboardController.NewLeaderboardController(db, cache)
	lb := r.Group("/leaderboard") // -> /api/u/leaderboard

	lb.Get("/", ctrl.Get) // GET /api/u/leaderboard?time_range=&limit=&offset=&cache=
}
