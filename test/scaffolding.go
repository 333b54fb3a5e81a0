package test

import (
	"encoding/json"
	"fmt"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
	"time"
	"timeline_cache/dal"
	"timeline_cache/dto"
	"timeline_cache/shared"
	"timeline_cache/test/mocks"
)

// Fixed so that rendered dates and ordering are predictable
var BaseTime = time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC)

func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func NewStubLogger(ctrl *gomock.Controller) *mocks.MockILogger {
	res := mocks.NewMockILogger(ctrl)
	StubLogger(res)
	return res
}

// StubMetrics accepts any metrics call. Counters the test cares about get their own EXPECT first.
func StubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApiRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().AccountSynced(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostSaved().AnyTimes()
	mockMetrics.EXPECT().PostsEvicted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EntityRewriteFailed().AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().TrackedAccountCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DbFileSize(gomock.Any()).AnyTimes()
}

func NewStubMetrics(ctrl *gomock.Controller) *mocks.MockIMetrics {
	res := mocks.NewMockIMetrics(ctrl)
	StubMetrics(ctrl, res)
	return res
}

// NewTestConfig returns a config with defaults applied, a bearer token, and a DB file in a temp dir.
func NewTestConfig(t *testing.T) *shared.Config {
	cfg := &shared.Config{
		DbFile:  filepath.Join(t.TempDir(), "timeline.db"),
		Secrets: shared.Secrets{BearerToken: "test-token"},
	}
	cfg.ApplyDefaults()
	return cfg
}

// NewTestRepo opens a fresh sqlite store with the current schema.
func NewTestRepo(cfg *shared.Config, logger shared.ILogger) dal.IRepo {
	repo := dal.NewRepo(cfg, logger)
	repo.InitUpdateDb()
	return repo
}

func MakeRawUser(id uint64, screenName string) *dto.RawUser {
	return &dto.RawUser{
		Id:              id,
		DisplayName:     fmt.Sprintf("The %s", screenName),
		ScreenName:      screenName,
		ProfileImageUrl: fmt.Sprintf("https://pbs.example.com/%s.jpg", screenName),
	}
}

// MakeRawPost builds a valid post whose date grows with its id.
func MakeRawPost(id uint64, author *dto.RawUser, text string) *dto.RawPost {
	post := &dto.RawPost{
		Id:        id,
		CreatedAt: BaseTime.Add(time.Duration(id) * time.Minute).Format(dto.CreatedAtLayout),
		Text:      text,
		User:      author,
	}
	post.Raw, _ = json.Marshal(post)
	return post
}

func MakeRawPosts(author *dto.RawUser, ids ...uint64) []*dto.RawPost {
	res := make([]*dto.RawPost, 0, len(ids))
	for _, id := range ids {
		res = append(res, MakeRawPost(id, author, fmt.Sprintf("Post number %d", id)))
	}
	return res
}
