// file: internals/features/learning/attempts/service/attempt_fetcher_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "olympiadku_backend/internals/features/learning/attempts/model"
)

/* =========================================================
   SERVICE: Attempt Fetcher
   Leaf component: satu-satunya jalur baca attempt untuk
   semua kalkulator metrik. Error storage diteruskan apa
   adanya ke caller (tanpa retry).
========================================================= */

type AttemptFetcherService struct {
	DB *gorm.DB
}

func NewAttemptFetcherService(db *gorm.DB) *AttemptFetcherService {
	return &AttemptFetcherService{DB: db}
}

// FetchParams: filter opsional + window waktu [Start, End] inklusif.
// All=true → tanpa batas bawah.
type FetchParams struct {
	UserID    *uuid.UUID
	SubjectID *uuid.UUID
	QuizID    *uuid.UUID
	Start     time.Time
	End       time.Time
	All       bool
}

// FetchAttempts: semua attempt dalam window, eager-load
// Question → Topic → Subject, urut submitted_at ASC.
// Hasil kosong itu valid (bukan error).
func (s *AttemptFetcherService) FetchAttempts(ctx context.Context, p FetchParams) ([]amodel.AttemptModel, error) {
	q := s.baseQuery(ctx, p)

	var attempts []amodel.AttemptModel
	if err := q.
		Order("user_attempts.attempt_submitted_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// FetchPage: varian paged untuk endpoint riwayat attempt.
func (s *AttemptFetcherService) FetchPage(ctx context.Context, p FetchParams, limit, offset int) ([]amodel.AttemptModel, int64, error) {
	var total int64
	if err := s.baseQuery(ctx, p).
		Model(&amodel.AttemptModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []amodel.AttemptModel
	if err := s.baseQuery(ctx, p).
		Order("user_attempts.attempt_submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).Error; err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

func (s *AttemptFetcherService) baseQuery(ctx context.Context, p FetchParams) *gorm.DB {
	q := s.DB.WithContext(ctx).
		Model(&amodel.AttemptModel{}).
		Preload("Question").
		Preload("Question.Topic").
		Preload("Question.Topic.Subject").
		Preload("Question.Subject")

	if p.UserID != nil {
		q = q.Where("user_attempts.attempt_user_id = ?", *p.UserID)
	}
	if p.QuizID != nil {
		q = q.Where("user_attempts.attempt_quiz_id = ?", *p.QuizID)
	}
	if p.SubjectID != nil {
		// filter subject lewat join ke questions
		q = q.Joins("JOIN questions ON questions.question_id = user_attempts.attempt_question_id").
			Where("questions.question_subject_id = ?", *p.SubjectID)
	}
	if !p.All {
		q = q.Where("user_attempts.attempt_submitted_at BETWEEN ? AND ?", p.Start, p.End)
	}
	return q
}
