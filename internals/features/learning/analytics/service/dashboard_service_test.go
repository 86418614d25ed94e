// file: internals/features/learning/analytics/service/dashboard_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "olympiadku_backend/internals/databases"
	helper "olympiadku_backend/internals/helpers"
)

func newDashboardMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func emptyAttemptRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"attempt_id", "attempt_user_id", "attempt_question_id",
		"attempt_is_correct", "attempt_time_spent_seconds", "attempt_submitted_at",
	})
}

func TestGetDashboard_EmptyWindowIsWellFormed(t *testing.T) {
	gdb, mock := newDashboardMockDB(t)
	svc := NewAnalyticsService(gdb, nil, time.Minute)
	svc.Loc = time.UTC

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tr, err := helper.ResolveTimeRange("7d", now)
	require.NoError(t, err)

	// window kosong → tidak ada preload lanjutan
	mock.ExpectQuery(`SELECT \* FROM "user_attempts"`).
		WillReturnRows(emptyAttemptRows())

	resp, err := svc.GetDashboard(context.Background(), DashboardParams{
		UserID:    uuid.New(),
		TimeRange: tr,
		Now:       now,
	})
	require.NoError(t, err)

	assert.Zero(t, resp.Summary.TotalAttempts)
	assert.Zero(t, resp.Streaks.CurrentStreak)
	assert.NotNil(t, resp.AccuracyTrends)
	assert.Empty(t, resp.AccuracyTrends)
	// daily series tetap mengisi semua hari di window, walau nol semua
	require.NotEmpty(t, resp.DailyActivity)
	for _, d := range resp.DailyActivity {
		assert.Zero(t, d.TotalAttempts)
	}
	// bucket distribusi selalu lengkap
	assert.Len(t, resp.DifficultyDistribution, 3)
	assert.Len(t, resp.QuestionTypeDistribution, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboard_CacheRoundTripIsByteIdentical(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := database.NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	gdb, mock := newDashboardMockDB(t)
	svc := NewAnalyticsService(gdb, cache, time.Minute)
	svc.Loc = time.UTC

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tr, err := helper.ResolveTimeRange("24h", now)
	require.NoError(t, err)

	userID := uuid.New()

	// hanya call pertama yang boleh menyentuh DB
	mock.ExpectQuery(`SELECT \* FROM "user_attempts"`).
		WillReturnRows(emptyAttemptRows())

	params := DashboardParams{
		UserID:    userID,
		TimeRange: tr,
		UseCache:  true,
		Now:       now,
	}

	first, err := svc.GetDashboard(context.Background(), params)
	require.NoError(t, err)

	key := "analytics:" + userID.String() + ":dashboard:24h:all:w7"
	require.Eventually(t, func() bool { return mr.Exists(key) }, 2*time.Second, 10*time.Millisecond)

	second, err := svc.GetDashboard(context.Background(), params)
	require.NoError(t, err)

	// hasil dari cache harus identik byte-per-byte dengan hasil hitung
	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(fj), string(sj))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardKey_NormalizedTrendWindow(t *testing.T) {
	svc := &AnalyticsService{}
	uid := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	sid := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	key := svc.dashboardKey(DashboardParams{
		UserID:      uid,
		SubjectID:   &sid,
		TimeRange:   helper.TimeRange{Label: "30d"},
		TrendWindow: 14,
	})
	assert.Equal(t, "analytics:11111111-1111-1111-1111-111111111111:dashboard:30d:22222222-2222-2222-2222-222222222222:w14", key)
}
