package logic

import (
	"context"
	"go.uber.org/fx"
	"os"
	"time"
	"timeline_cache/dal"
	"timeline_cache/shared"
)

// SyncScheduler runs a sync pass over all accounts at a fixed interval.
type SyncScheduler struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	syncer  ITimelineSyncer
	metrics IMetrics
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSyncScheduler(
	lc fx.Lifecycle,
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	syncer ITimelineSyncer,
	metrics IMetrics,
) *SyncScheduler {

	sch := SyncScheduler{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		syncer:  syncer,
		metrics: metrics,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			sch.cancel = cancel
			sch.done = make(chan struct{})
			go sch.loop(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sch.cancel()
			select {
			case <-sch.done:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		},
	})

	return &sch
}

func (sch *SyncScheduler) loop(ctx context.Context) {
	defer close(sch.done)
	interval := time.Duration(sch.cfg.SyncIntervalMin) * time.Minute
	sch.SeedTrackedAccounts(ctx)
	for {
		sch.RunPass(ctx)
		sch.updateDBSizeMetric()
		select {
		case <-ctx.Done():
			sch.logger.Printf("Sync scheduler stopped")
			return
		case <-time.After(interval):
		}
	}
}

// SeedTrackedAccounts creates the configured accounts that aren't stored yet.
func (sch *SyncScheduler) SeedTrackedAccounts(ctx context.Context) {
	for _, name := range sch.cfg.TrackedAccounts {
		exists, err := sch.repo.DoesUserExist(name)
		if err != nil {
			sch.logger.Errorf("Failed to check tracked account %s: %v", name, err)
			continue
		}
		if exists {
			continue
		}
		if _, err = sch.syncer.SyncAccount(ctx, name); err != nil {
			sch.logger.Errorf("Failed to set up tracked account %s: %v", name, err)
		}
	}
}

// RunPass syncs every account once, then evicts. A panic is logged, not propagated.
func (sch *SyncScheduler) RunPass(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			sch.logger.Errorf("Sync pass panicked: %v", r)
		}
	}()

	report, err := sch.syncer.SyncAll(ctx)
	if err != nil {
		sch.logger.Errorf("Sync pass failed: %v", err)
		return
	}
	for _, f := range report.Failures {
		sch.logger.Warnf("Account %s was not synced: %v", f.ScreenName, f.Err)
	}
}

func (sch *SyncScheduler) updateDBSizeMetric() {

	// In case we're running on a mock config in a unit test: don't bother
	if sch.cfg.DbFile == "" {
		return
	}

	fi, err := os.Stat(sch.cfg.DbFile)
	if err != nil {
		sch.logger.Errorf("Error getting DB file size: %v", err)
		return
	}
	sch.metrics.DbFileSize(fi.Size())
}
