package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/cache"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"

	"go.uber.org/zap"
)

const (
	resultCacheService    = "quiz"
	resultCacheObjectType = "result"

	// DefaultResultTTL is used when a recorder is created with a zero TTL.
	DefaultResultTTL = 24 * time.Hour
)

// ResultRecorder stores the outcome of finished quiz attempts.
type ResultRecorder interface {
	Record(ctx context.Context, result *domain.QuizResult) error
	Load(ctx context.Context, attemptID string) (*domain.QuizResult, error)
}

// NewNopResultRecorder returns a recorder that keeps nothing.
func NewNopResultRecorder() ResultRecorder {
	return nopResultRecorder{}
}

type nopResultRecorder struct{}

func (nopResultRecorder) Record(context.Context, *domain.QuizResult) error { return nil }

func (nopResultRecorder) Load(_ context.Context, attemptID string) (*domain.QuizResult, error) {
	return nil, domain.NewNotFoundError(fmt.Sprintf("Quiz result '%s' not found", attemptID))
}

// cacheResultRecorder writes each result as a hash in a domain.Cache.
type cacheResultRecorder struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheResultRecorder records results into c, expiring them after ttl.
func NewCacheResultRecorder(c domain.Cache, ttl time.Duration) ResultRecorder {
	if c == nil {
		return NewNopResultRecorder()
	}
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &cacheResultRecorder{cache: c, ttl: ttl}
}

// ResultKey is the cache key a result with the given attempt ID is stored under.
func ResultKey(attemptID string) string {
	return cache.GenerateCacheKey(resultCacheService, resultCacheObjectType, attemptID)
}

// Record implements ResultRecorder
func (r *cacheResultRecorder) Record(ctx context.Context, result *domain.QuizResult) error {
	if result == nil || result.ID == "" {
		return domain.NewInvalidInputError("Quiz result has no attempt ID")
	}

	key := ResultKey(result.ID)
	fields := map[string]string{
		"level":       result.Level.String(),
		"score":       strconv.Itoa(result.Score),
		"total":       strconv.Itoa(result.Total),
		"time_limit":  result.TimeLimit.String(),
		"started_at":  result.StartedAt.UTC().Format(time.RFC3339Nano),
		"finished_at": result.FinishedAt.UTC().Format(time.RFC3339Nano),
	}

	if err := r.cache.HSet(ctx, key, fields); err != nil {
		logger.Get().Error("ResultRecorder: Cache HSet failed", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError("Failed to record quiz result", err)
	}
	if err := r.cache.Expire(ctx, key, r.ttl); err != nil {
		logger.Get().Error("ResultRecorder: Cache Expire failed", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError("Failed to set quiz result expiration", err)
	}

	logger.Get().Debug("ResultRecorder: Quiz result recorded", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return nil
}

// Load implements ResultRecorder. Per-question outcomes are not stored.
func (r *cacheResultRecorder) Load(ctx context.Context, attemptID string) (*domain.QuizResult, error) {
	key := ResultKey(attemptID)
	fields, err := r.cache.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Quiz result '%s' not found", attemptID))
		}
		return nil, domain.NewInternalError("Failed to load quiz result", err)
	}

	result := &domain.QuizResult{ID: attemptID, Level: domain.QuizLevel(fields["level"])}
	if result.Score, err = strconv.Atoi(fields["score"]); err != nil {
		return nil, domain.NewInternalError("Stored quiz result has invalid score", err)
	}
	if result.Total, err = strconv.Atoi(fields["total"]); err != nil {
		return nil, domain.NewInternalError("Stored quiz result has invalid total", err)
	}
	if result.TimeLimit, err = time.ParseDuration(fields["time_limit"]); err != nil {
		return nil, domain.NewInternalError("Stored quiz result has invalid time limit", err)
	}
	if result.StartedAt, err = time.Parse(time.RFC3339Nano, fields["started_at"]); err != nil {
		return nil, domain.NewInternalError("Stored quiz result has invalid start time", err)
	}
	if result.FinishedAt, err = time.Parse(time.RFC3339Nano, fields["finished_at"]); err != nil {
		return nil, domain.NewInternalError("Stored quiz result has invalid finish time", err)
	}
	return result, nil
}
