// file: internals/features/learning/attempts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	attemptsController "olympiadku_backend/internals/features/learning/attempts/controller"
)

/*
Catatan:
- Base (user): /api/u
- user_id selalu dari token, bukan dari payload/query.
*/

func AttemptsUserRoutes(r fiber.Router, db *gorm.DB, cache *database.RedisCache) {
	ctrl := attemptsController.NewAttemptsController(db, cache)
	attempts := r.Group("/attempts") // -> /api/u/attempts

	attempts.Post("/", ctrl.Create) // POST /api/u/attempts
	attempts.Get("/", ctrl.List)    // GET  /api/u/attempts?time_range=&page=&per_page=
}
