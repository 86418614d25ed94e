// file: internals/features/learning/analytics/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	analyticsController "olympiadku_backend/internals/features/learning/analytics/controller"
)

/*
Catatan:
- Base (user): /api/u/analytics
- Semua endpoint di sini read-only; user_id dari token.
- ?cache=false bypass cache (dashboard saja yang di-cache).
*/

func AnalyticsUserRoutes(r fiber.Router, db *gorm.DB, cache *database.RedisCache) {
	ctrl := analyticsController.NewAnalyticsController(db, cache)
	analytics := r.Group("/analytics") // -> /api/u/analytics

	analytics.Get("/dashboard", ctrl.Dashboard)                   // gabungan semua metrik
	analytics.Get("/daily-activity", ctrl.DailyActivity)          // series harian
	analytics.Get("/streaks", ctrl.Streaks)                       // current & longest streak
	analytics.Get("/trends", ctrl.Trends)                         // moving average accuracy
	analytics.Get("/time-distribution", ctrl.TimeDistribution)    // jam belajar & hari aktif
	analytics.Get("/subject-performance", ctrl.SubjectPerformance) // breakdown subject+topic
}
