package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
	"timeline_cache/logic"
	"timeline_cache/test"
	"timeline_cache/test/mocks"
)

type schedulerHarness struct {
	repo   *mocks.MockIRepo
	syncer *mocks.MockITimelineSyncer
	lc     *fxtest.Lifecycle
	sch    *logic.SyncScheduler
}

func setupSchedulerTest(t *testing.T, tracked ...string) *schedulerHarness {
	ctrl := gomock.NewController(t)
	cfg := test.NewTestConfig(t)
	cfg.DbFile = ""
	cfg.TrackedAccounts = tracked
	h := &schedulerHarness{
		repo:   mocks.NewMockIRepo(ctrl),
		syncer: mocks.NewMockITimelineSyncer(ctrl),
		lc:     fxtest.NewLifecycle(t),
	}
	h.sch = logic.NewSyncScheduler(h.lc, cfg, test.NewStubLogger(ctrl), h.repo, h.syncer, test.NewStubMetrics(ctrl))
	return h
}

func TestSeedCreatesOnlyMissingAccounts(t *testing.T) {
	h := setupSchedulerTest(t, "known", "fresh", "broken")
	h.repo.EXPECT().DoesUserExist("known").Return(true, nil)
	h.repo.EXPECT().DoesUserExist("fresh").Return(false, nil)
	h.repo.EXPECT().DoesUserExist("broken").Return(false, errors.New("no such table"))
	h.syncer.EXPECT().SyncAccount(gomock.Any(), "fresh").Return(3, nil)

	h.sch.SeedTrackedAccounts(context.Background())
}

func TestRunPassSurvivesPanic(t *testing.T) {
	h := setupSchedulerTest(t)
	h.syncer.EXPECT().SyncAll(gomock.Any()).DoAndReturn(func(context.Context) (*logic.SyncReport, error) {
		panic("boom")
	})

	assert.NotPanics(t, func() { h.sch.RunPass(context.Background()) })
}

func TestRunPassLogsFailures(t *testing.T) {
	h := setupSchedulerTest(t)
	h.syncer.EXPECT().SyncAll(gomock.Any()).Return(&logic.SyncReport{
		AccountsFailed: 1,
		Failures:       []logic.AccountFailure{{ScreenName: "alice", Err: logic.ErrFetchFailed}},
	}, nil)
	h.sch.RunPass(context.Background())

	h.syncer.EXPECT().SyncAll(gomock.Any()).Return(nil, logic.ErrConfigMissing)
	h.sch.RunPass(context.Background())
}

func TestSchedulerRunsOnStartAndStops(t *testing.T) {
	h := setupSchedulerTest(t, "seeded")
	passDone := make(chan struct{})
	h.repo.EXPECT().DoesUserExist("seeded").Return(true, nil)
	h.syncer.EXPECT().SyncAll(gomock.Any()).DoAndReturn(func(context.Context) (*logic.SyncReport, error) {
		close(passDone)
		return &logic.SyncReport{}, nil
	})

	h.lc.RequireStart()
	select {
	case <-passDone:
	case <-time.After(5 * time.Second):
		t.Fatal("first sync pass did not run")
	}
	h.lc.RequireStop()
}
