package logic_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
	"timeline_cache/dal"
	"timeline_cache/logic"
	"timeline_cache/test"
	"timeline_cache/test/mocks"
)

func storePosts(t *testing.T, repo dal.IRepo, userId uint64, screenName string, ids []uint64, date func(id uint64) time.Time) {
	require.NoError(t, repo.UpsertUser(&dal.StoredUser{Id: userId, ScreenName: screenName}))
	for _, id := range ids {
		require.NoError(t, repo.UpsertPost(&dal.StoredPost{
			Id:     id,
			Date:   date(id),
			UserId: userId,
		}))
	}
}

func idRange(from, to uint64) []uint64 {
	res := make([]uint64, 0, to-from+1)
	for id := from; id <= to; id++ {
		res = append(res, id)
	}
	return res
}

func byId(id uint64) time.Time {
	return test.BaseTime.Add(time.Duration(id) * time.Second)
}

func TestEvictKeepsMostRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := test.NewStubLogger(ctrl)
	metrics := mocks.NewMockIMetrics(ctrl)
	metrics.EXPECT().PostsEvicted(50)
	repo := test.NewTestRepo(test.NewTestConfig(t), logger)

	storePosts(t, repo, 1, "busy", idRange(1, 150), byId)
	storePosts(t, repo, 2, "quiet", idRange(1001, 1010), byId)

	deleted, err := logic.NewRetentionEvictor(logger, repo, metrics).EvictExcess(100)
	require.NoError(t, err)
	assert.Equal(t, 50, deleted)

	busy, err := repo.GetRecentPosts("busy", 1000, false)
	require.NoError(t, err)
	require.Len(t, busy, 100)
	assert.Equal(t, uint64(150), busy[0].Id)
	assert.Equal(t, uint64(51), busy[99].Id)

	quiet, err := repo.GetRecentPosts("quiet", 1000, false)
	require.NoError(t, err)
	assert.Len(t, quiet, 10)
}

func TestEvictBreaksDateTiesById(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := test.NewStubLogger(ctrl)
	repo := test.NewTestRepo(test.NewTestConfig(t), logger)

	sameDate := func(uint64) time.Time { return test.BaseTime }
	storePosts(t, repo, 1, "burst", idRange(1, 5), sameDate)

	deleted, err := logic.NewRetentionEvictor(logger, repo, test.NewStubMetrics(ctrl)).EvictExcess(2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	posts, err := repo.GetRecentPosts("burst", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 4}, postIds(posts))
}

func TestEvictDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	// Any repo call would fail the test
	repo := mocks.NewMockIRepo(ctrl)
	evictor := logic.NewRetentionEvictor(test.NewStubLogger(ctrl), repo, mocks.NewMockIMetrics(ctrl))

	for _, limit := range []int{0, -1} {
		deleted, err := evictor.EvictExcess(limit)
		assert.NoError(t, err)
		assert.Zero(t, deleted)
	}
}

func TestEvictContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRepo(ctrl)
	metrics := mocks.NewMockIMetrics(ctrl)
	metrics.EXPECT().PostsEvicted(7)
	repo.EXPECT().GetDistinctPostUserIds().Return([]uint64{1, 2, 3}, nil)
	repo.EXPECT().DeleteExcessPosts(uint64(1), 10).Return(3, nil)
	repo.EXPECT().DeleteExcessPosts(uint64(2), 10).Return(0, errors.New("database is locked"))
	repo.EXPECT().DeleteExcessPosts(uint64(3), 10).Return(4, nil)

	deleted, err := logic.NewRetentionEvictor(test.NewStubLogger(ctrl), repo, metrics).EvictExcess(10)
	assert.Equal(t, 7, deleted)
	assert.True(t, errors.Is(err, logic.ErrStoreFailure))
	assert.Contains(t, err.Error(), "user 2")
}
