package logic_test

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"timeline_cache/logic"
)

func TestPlanFetchBootstrap(t *testing.T) {
	params := logic.PlanFetch(0)
	assert.Equal(t, logic.FetchParams{Count: 100, ExcludeReplies: true}, params)
}

func TestPlanFetchIncremental(t *testing.T) {
	params := logic.PlanFetch(42)
	assert.Equal(t, logic.FetchParams{SinceId: 42, ExcludeReplies: true}, params)
	assert.Zero(t, params.Count)
}
