package logic

import (
	"context"
	"fmt"
	"go.uber.org/fx"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
	"timeline_cache/shared"
)

const profilerStartDelay = 10 * time.Second
const profilerInterval = 60 * time.Second

// Profiler periodically dumps goroutine stacks into a directory and purges old dumps.
// Without a configured directory it does nothing.
type Profiler struct {
	logger   shared.ILogger
	dir      string
	keepDays int
	cancel   context.CancelFunc
}

func NewProfiler(lc fx.Lifecycle, cfg *shared.Config, logger shared.ILogger) *Profiler {

	prof := Profiler{
		logger:   logger,
		dir:      cfg.ProfileDir,
		keepDays: cfg.ProfileKeepDays,
	}
	if prof.dir == "" {
		return &prof
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := os.MkdirAll(prof.dir, 0755); err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(context.Background())
			prof.cancel = cancel
			go prof.loop(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			prof.cancel()
			return nil
		},
	})
	return &prof
}

func (prof *Profiler) loop(ctx context.Context) {
	wait := profilerStartDelay
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait = profilerInterval
		if err := prof.SaveAndPurge(time.Now()); err != nil {
			prof.logger.Warnf("Failed to save goroutine profile: %v", err)
		}
	}
}

// SaveAndPurge writes one goroutine dump named after now, then removes dumps older than the retention.
func (prof *Profiler) SaveAndPurge(now time.Time) error {
	if err := saveProfile(prof.dir, now); err != nil {
		return err
	}
	return purgeOldProfiles(prof.dir, now.AddDate(0, 0, -prof.keepDays))
}

func saveProfile(dir string, now time.Time) error {
	fname := fmt.Sprintf("%v.txt", now.Format("2006-01-02!15-04-05"))
	f, err := os.Create(filepath.Join(dir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func purgeOldProfiles(dir string, cutoff time.Time) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}
