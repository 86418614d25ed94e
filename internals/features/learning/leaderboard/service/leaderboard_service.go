// file: internals/features/learning/leaderboard/service/leaderboard_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "olympiadku_backend/internals/databases"
	"olympiadku_backend/internals/features/learning/leaderboard/dto"
	lmodel "olympiadku_backend/internals/features/learning/leaderboard/model"
)

const cachePrefix = "leaderboard:"

/* =========================================================
   SERVICE: Leaderboard Ranker
   Ordering total & deterministik:
     level DESC, xp DESC, updated_at ASC, user_id ASC.
   user_id ASC adalah tie-break final — tanpa itu dua user
   dengan (level, xp, updated_at) identik tidak punya urutan
   pasti dan rank bisa goyang antar run.
========================================================= */

type LeaderboardService struct {
	DB    *gorm.DB
	Cache *database.RedisCache
	TTL   time.Duration
}

func NewLeaderboardService(db *gorm.DB, cache *database.RedisCache, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{DB: db, Cache: cache, TTL: ttl}
}

type LeaderboardParams struct {
	TimeRangeLabel string
	CohortID       *uuid.UUID
	Limit          int
	Offset         int
	TargetUserID   *uuid.UUID
	UseCache       bool
}

// GetLeaderboard: satu halaman ranking + entry target user (kalau diminta dan
// tidak ada di halaman). Halaman di-cache per (time_range, cohort, limit,
// offset); entry target selalu dihitung fresh karena per-user.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, p LeaderboardParams) (*dto.LeaderboardResponse, error) {
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	page, err := s.getPage(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := &dto.LeaderboardResponse{
		Entries: page.Entries,
		Total:   page.Total,
		Limit:   p.Limit,
		Offset:  p.Offset,
	}

	if p.TargetUserID != nil {
		onPage := false
		for i := range page.Entries {
			if page.Entries[i].UserID == *p.TargetUserID {
				me := page.Entries[i]
				resp.Me = &me
				onPage = true
				break
			}
		}
		if !onPage {
			me, err := s.rankOf(ctx, p, *p.TargetUserID, page.Total)
			if err != nil {
				return nil, err
			}
			resp.Me = me // nil kalau user belum punya stat
		}
	}

	return resp, nil
}

func (s *LeaderboardService) getPage(ctx context.Context, p LeaderboardParams) (*dto.LeaderboardPage, error) {
	key := s.pageKey(p)

	if p.UseCache {
		if raw, ok, err := s.Cache.Get(ctx, key); err != nil {
			log.Printf("[LeaderboardService] cache get err: %v", err)
		} else if ok {
			var cached dto.LeaderboardPage
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			log.Printf("[LeaderboardService] cache corrupt untuk %s, hitung ulang", key)
		}
	}

	page, err := s.computePage(ctx, p)
	if err != nil {
		return nil, err
	}

	if p.UseCache {
		if data, err := json.Marshal(page); err == nil {
			// fire-and-forget: gagal tulis cache tidak menggagalkan request
			go func() {
				wctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := s.Cache.SetWithTTL(wctx, key, string(data), s.TTL); err != nil {
					log.Printf("[LeaderboardService] cache set err: %v", err)
				}
			}()
		}
	}
	return page, nil
}

func (s *LeaderboardService) computePage(ctx context.Context, p LeaderboardParams) (*dto.LeaderboardPage, error) {
	var total int64
	if err := s.scoped(ctx, p).Model(&lmodel.UserStatModel{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count population: %w", err)
	}

	var rows []lmodel.UserStatModel
	if err := s.scoped(ctx, p).
		Order("user_stat_level DESC, user_stat_xp DESC, user_stat_updated_at ASC, user_stat_user_id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	page := &dto.LeaderboardPage{Entries: []dto.LeaderboardEntry{}, Total: total}
	if len(rows) == 0 {
		return page, nil
	}

	// Rank baris pertama via count strictly-higher (baris sebelum offset
	// bisa saja tie dengan baris pertama). Sisanya jalan dari situ:
	// triple sama → share rank, beda → rank = posisi absolut.
	firstRank, err := s.countStrictlyHigher(ctx, p, &rows[0])
	if err != nil {
		return nil, err
	}
	firstRank++

	prevRank := int(firstRank)
	for i := range rows {
		rank := prevRank
		if i > 0 {
			if sameScore(&rows[i], &rows[i-1]) {
				rank = prevRank
			} else {
				rank = p.Offset + i + 1
			}
		}
		prevRank = rank
		page.Entries = append(page.Entries, dto.LeaderboardEntry{
			Rank:       rank,
			UserID:     rows[i].UserStatUserID,
			Level:      rows[i].UserStatLevel,
			XP:         rows[i].UserStatXP,
			Percentile: Percentile(rank, total),
		})
	}
	return page, nil
}

// rankOf: rank + percentile untuk satu user di luar halaman.
func (s *LeaderboardService) rankOf(ctx context.Context, p LeaderboardParams, userID uuid.UUID, total int64) (*dto.LeaderboardEntry, error) {
	var stat lmodel.UserStatModel
	if err := s.DB.WithContext(ctx).
		First(&stat, "user_stat_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch target stat: %w", err)
	}

	higher, err := s.countStrictlyHigher(ctx, p, &stat)
	if err != nil {
		return nil, err
	}
	rank := int(higher) + 1
	return &dto.LeaderboardEntry{
		Rank:       rank,
		UserID:     stat.UserStatUserID,
		Level:      stat.UserStatLevel,
		XP:         stat.UserStatXP,
		Percentile: Percentile(rank, total),
	}, nil
}

// countStrictlyHigher: jumlah baris dengan skor strictly lebih tinggi
// dari `ref` menurut ordering (level, xp, updated_at ASC).
func (s *LeaderboardService) countStrictlyHigher(ctx context.Context, p LeaderboardParams, ref *lmodel.UserStatModel) (int64, error) {
	var n int64
	err := s.scoped(ctx, p).
		Model(&lmodel.UserStatModel{}).
		Where(`(user_stat_level > ?)
		    OR (user_stat_level = ? AND user_stat_xp > ?)
		    OR (user_stat_level = ? AND user_stat_xp = ? AND user_stat_updated_at < ?)`,
			ref.UserStatLevel,
			ref.UserStatLevel, ref.UserStatXP,
			ref.UserStatLevel, ref.UserStatXP, ref.UserStatUpdatedAt,
		).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count higher: %w", err)
	}
	return n, nil
}

func (s *LeaderboardService) scoped(ctx context.Context, p LeaderboardParams) *gorm.DB {
	q := s.DB.WithContext(ctx)
	if p.CohortID != nil {
		q = q.Where("user_stat_cohort_id = ?", *p.CohortID)
	}
	return q
}

func sameScore(a, b *lmodel.UserStatModel) bool {
	return a.UserStatLevel == b.UserStatLevel &&
		a.UserStatXP == b.UserStatXP &&
		a.UserStatUpdatedAt.Equal(b.UserStatUpdatedAt)
}

// Percentile: (n − rank)/(n − 1) × 100, 1 desimal. Populasi ≤ 1 → 100.
func Percentile(rank int, population int64) float64 {
	if population <= 1 {
		return 100
	}
	v := float64(population-int64(rank)) / float64(population-1) * 100
	return math.Round(v*10) / 10
}

func (s *LeaderboardService) pageKey(p LeaderboardParams) string {
	cohort := "all"
	if p.CohortID != nil {
		cohort = p.CohortID.String()
	}
	label := p.TimeRangeLabel
	if label == "" {
		label = "all"
	}
	return fmt.Sprintf("%s%s:%s:%d:%d", cachePrefix, label, cohort, p.Limit, p.Offset)
}

/* =========================================================
   MUTASI STANDINGS
========================================================= */

// AwardXP: tambah XP (upsert), recompute level, lalu invalidate seluruh
// cache leaderboard (wholesale, bukan incremental).
func (s *LeaderboardService) AwardXP(ctx context.Context, userID uuid.UUID, xp int, now time.Time) (*lmodel.UserStatModel, error) {
	if xp <= 0 {
		return nil, errors.New("xp harus > 0")
	}

	var stat lmodel.UserStatModel
	err := s.DB.WithContext(ctx).First(&stat, "user_stat_user_id = ?", userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		stat = lmodel.UserStatModel{
			UserStatUserID:    userID,
			UserStatXP:        xp,
			UserStatLevel:     lmodel.LevelForXP(xp),
			UserStatCreatedAt: now,
			UserStatUpdatedAt: now,
		}
		if err := s.DB.WithContext(ctx).Create(&stat).Error; err != nil {
			return nil, fmt.Errorf("create stat: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("fetch stat: %w", err)
	default:
		stat.UserStatXP += xp
		stat.UserStatLevel = lmodel.LevelForXP(stat.UserStatXP)
		stat.UserStatUpdatedAt = now
		if err := s.DB.WithContext(ctx).
			Model(&lmodel.UserStatModel{}).
			Where("user_stat_user_id = ?", userID).
			Updates(map[string]any{
				"user_stat_xp":         stat.UserStatXP,
				"user_stat_level":      stat.UserStatLevel,
				"user_stat_updated_at": stat.UserStatUpdatedAt,
			}).Error; err != nil {
			return nil, fmt.Errorf("update stat: %w", err)
		}
	}

	s.InvalidateAll()
	return &stat, nil
}

// InvalidateAll: hapus semua cache leaderboard by prefix, fire-and-forget.
func (s *LeaderboardService) InvalidateAll() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if n, err := s.Cache.DeleteByPrefix(ctx, cachePrefix); err != nil {
			log.Printf("[LeaderboardService] cache invalidate err: %v", err)
		} else if n > 0 {
			log.Printf("[LeaderboardService] %d cache key dihapus", n)
		}
	}()
}
