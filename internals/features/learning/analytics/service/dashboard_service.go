// file: internals/features/learning/analytics/service/dashboard_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	"olympiadku_backend/internals/features/learning/analytics/dto"
	aservice "olympiadku_backend/internals/features/learning/attempts/service"
	helper "olympiadku_backend/internals/helpers"
)

/* =========================================================
   SERVICE: Analytics Dashboard
   Alur satu arah: fetch → hitung metrik (paralel, pure
   function atas snapshot immutable) → merge → cache → return.
   Tidak ada mutasi data sumber di pipeline ini.
========================================================= */

type AnalyticsService struct {
	Fetcher *aservice.AttemptFetcherService
	Cache   *database.RedisCache
	Loc     *time.Location
	TTL     time.Duration
}

func NewAnalyticsService(db *gorm.DB, cache *database.RedisCache, ttl time.Duration) *AnalyticsService {
	return &AnalyticsService{
		Fetcher: aservice.NewAttemptFetcherService(db),
		Cache:   cache,
		Loc:     time.Local,
		TTL:     ttl,
	}
}

type DashboardParams struct {
	UserID      uuid.UUID
	SubjectID   *uuid.UUID
	TimeRange   helper.TimeRange
	TrendWindow int
	UseCache    bool
	Now         time.Time // reference instant untuk streak & "hari ini"
}

// GetDashboard: hitung semua metrik untuk satu user + window.
// Error fetch diteruskan ke caller; gagal tulis cache cuma di-log.
func (s *AnalyticsService) GetDashboard(ctx context.Context, p DashboardParams) (*dto.DashboardResponse, error) {
	if p.TrendWindow < 1 {
		p.TrendWindow = DefaultTrendWindow
	}
	key := s.dashboardKey(p)

	if p.UseCache {
		if raw, ok, err := s.Cache.Get(ctx, key); err != nil {
			log.Printf("[AnalyticsService] cache get err: %v", err)
		} else if ok {
			var cached dto.DashboardResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			log.Printf("[AnalyticsService] cache corrupt untuk %s, hitung ulang", key)
		}
	}

	attempts, err := s.Fetcher.FetchAttempts(ctx, aservice.FetchParams{
		UserID:    &p.UserID,
		SubjectID: p.SubjectID,
		Start:     p.TimeRange.Start,
		End:       p.TimeRange.End,
		All:       p.TimeRange.All,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch attempts: %w", err)
	}

	// Window "all" tidak punya batas bawah → daily series mulai dari
	// attempt pertama (atau hari ini kalau kosong).
	dailyStart := p.TimeRange.Start
	if p.TimeRange.All {
		dailyStart = p.Now
		if len(attempts) > 0 {
			dailyStart = attempts[0].AttemptSubmittedAt
		}
	}

	// Kalkulator independen atas snapshot yang sama; aman jalan paralel,
	// masing-masing nulis field sendiri.
	resp := &dto.DashboardResponse{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.Summary = CalcSummary(attempts, s.Loc)
		return nil
	})
	g.Go(func() error {
		resp.DailyActivity = CalcDailyActivity(attempts, dailyStart, p.Now, s.Loc)
		return nil
	})
	g.Go(func() error {
		resp.SubjectPerformance = CalcSubjectPerformance(attempts)
		resp.TopicPerformance = CalcTopicPerformance(attempts)
		return nil
	})
	g.Go(func() error {
		resp.AccuracyTrends = CalcAccuracyTrend(attempts, p.TrendWindow, s.Loc)
		return nil
	})
	g.Go(func() error {
		resp.TimeDistribution = CalcTimeDistribution(attempts, s.Loc)
		return nil
	})
	g.Go(func() error {
		resp.DifficultyDistribution = CalcDifficultyDistribution(attempts)
		resp.QuestionTypeDistribution = CalcQuestionTypeDistribution(attempts)
		return nil
	})
	g.Go(func() error {
		resp.Streaks = CalcStreaks(attempts, p.Now, s.Loc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// write-through fire-and-forget
	if p.UseCache {
		if data, err := json.Marshal(resp); err == nil {
			go func() {
				wctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := s.Cache.SetWithTTL(wctx, key, string(data), s.TTL); err != nil {
					log.Printf("[AnalyticsService] cache set err: %v", err)
				}
			}()
		}
	}

	return resp, nil
}

func (s *AnalyticsService) dashboardKey(p DashboardParams) string {
	subject := "all"
	if p.SubjectID != nil {
		subject = p.SubjectID.String()
	}
	return fmt.Sprintf("analytics:%s:dashboard:%s:%s:w%d",
		p.UserID, p.TimeRange.Label, subject, p.TrendWindow)
}
