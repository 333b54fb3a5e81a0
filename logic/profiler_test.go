package logic_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"timeline_cache/logic"
	"timeline_cache/shared"
	"timeline_cache/test"
)

func TestProfilerSavesAndPurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	cfg := &shared.Config{ProfileDir: dir, ProfileKeepDays: 3}
	prof := logic.NewProfiler(fxtest.NewLifecycle(t), cfg, test.NewStubLogger(ctrl))

	now := time.Now()
	stale := filepath.Join(dir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	old := now.AddDate(0, 0, -5)
	require.NoError(t, os.Chtimes(stale, old, old))

	require.NoError(t, prof.SaveAndPurge(now))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, now.Format("2006-01-02!15-04-05")+".txt", entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Goroutine count: "))
}
