package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
)

const (
	issueListCacheKey = "issues:list"
	issueListCacheTTL = 30 * time.Second
)

// cachedIssueRepository decorates an IssueRepository with a Redis-backed
// read cache for the issue list. The cache is a staleness bound, not a
// correctness guarantee: entries are invalidated on every write and expire
// after a short TTL. Cache faults degrade to the inner repository.
type cachedIssueRepository struct {
	inner  IssueRepository
	client *redis.Client
	logger *zap.Logger
}

// NewCachedIssueRepository wraps repo with a Redis list cache
func NewCachedIssueRepository(repo IssueRepository, client *redis.Client, logger *zap.Logger) IssueRepository {
	return &cachedIssueRepository{
		inner:  repo,
		client: client,
		logger: logger,
	}
}

func (r *cachedIssueRepository) List(ctx context.Context) ([]*domain.Issue, error) {
	if cached, err := r.client.Get(ctx, issueListCacheKey).Bytes(); err == nil {
		var issues []*domain.Issue
		if err := json.Unmarshal(cached, &issues); err == nil {
			return issues, nil
		}
		r.logger.Warn("Discarding unreadable issue list cache entry")
		r.invalidate(ctx)
	}

	issues, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(issues); err == nil {
		if err := r.client.Set(ctx, issueListCacheKey, encoded, issueListCacheTTL).Err(); err != nil {
			r.logger.Warn("Failed to populate issue list cache", zap.Error(err))
		}
	}
	return issues, nil
}

func (r *cachedIssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *cachedIssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	if err := r.inner.Create(ctx, issue); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedIssueRepository) Update(ctx context.Context, issue *domain.Issue) error {
	if err := r.inner.Update(ctx, issue); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedIssueRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedIssueRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, issueListCacheKey).Err(); err != nil {
		r.logger.Warn("Failed to invalidate issue list cache", zap.Error(err))
	}
}
