package logic

import (
	"errors"
	"fmt"
	"timeline_cache/dal"
	"timeline_cache/shared"
)

type IRetentionEvictor interface {
	EvictExcess(limit int) (int, error)
}

type retentionEvictor struct {
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewRetentionEvictor(logger shared.ILogger, repo dal.IRepo, metrics IMetrics) IRetentionEvictor {
	return &retentionEvictor{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

// EvictExcess keeps the limit most recent posts (by date, then id) of every user
// that has posts stored, and deletes the rest. A non-positive limit disables eviction.
func (re *retentionEvictor) EvictExcess(limit int) (int, error) {

	if limit <= 0 {
		re.logger.Debugf("Retention limit is %d; not evicting", limit)
		return 0, nil
	}

	userIds, err := re.repo.GetDistinctPostUserIds()
	if err != nil {
		return 0, storeErr(err)
	}

	total := 0
	var errs []error
	for _, userId := range userIds {
		deleted, err := re.repo.DeleteExcessPosts(userId, limit)
		if err != nil {
			re.logger.Errorf("Failed to evict old posts of user %d: %v", userId, err)
			errs = append(errs, fmt.Errorf("%w: user %d: %v", ErrStoreFailure, userId, err))
			continue
		}
		if deleted != 0 {
			re.logger.Infof("Evicted %d old posts of user %d", deleted, userId)
		}
		total += deleted
	}
	re.metrics.PostsEvicted(total)
	return total, errors.Join(errs...)
}
