package logic_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"timeline_cache/logic"
	"timeline_cache/shared"
	"timeline_cache/test"
	"timeline_cache/test/mocks"
)

type clientHarness struct {
	cfg    *shared.Config
	srv    *httptest.Server
	calls  atomic.Int32
	client logic.ITimelineClient
}

func setupClientTest(t *testing.T, handler http.HandlerFunc) *clientHarness {
	ctrl := gomock.NewController(t)
	return setupClientTestWithLogger(t, ctrl, test.NewStubLogger(ctrl), handler)
}

func setupClientTestWithLogger(
	t *testing.T,
	ctrl *gomock.Controller,
	logger shared.ILogger,
	handler http.HandlerFunc,
) *clientHarness {
	h := &clientHarness{}
	h.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(h.srv.Close)

	h.cfg = test.NewTestConfig(t)
	h.cfg.ApiBaseUrl = h.srv.URL
	h.cfg.ApiTokenUrl = h.srv.URL + "/oauth2/token"
	h.client = logic.NewTimelineClient(h.cfg, logger, shared.NewUserAgent(), test.NewStubMetrics(ctrl))
	return h
}

func writeJson(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func TestFetchTimelineBootstrap(t *testing.T) {
	author := test.MakeRawUser(11, "gopher")
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statuses/user_timeline.json", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "Timeline-Cache-Bot/"))
		q := r.URL.Query()
		assert.Equal(t, "gopher", q.Get("screen_name"))
		assert.Equal(t, "true", q.Get("exclude_replies"))
		assert.Equal(t, "100", q.Get("count"))
		assert.False(t, q.Has("since_id"))
		writeJson(w, http.StatusOK, test.MakeRawPosts(author, 30, 20, 10))
	})

	posts, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, uint64(30), posts[0].Id)
	assert.Equal(t, "gopher", posts[0].User.ScreenName)
	assert.Contains(t, string(posts[0].Raw), `"id":30`)
}

func TestFetchTimelineIncremental(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "42", q.Get("since_id"))
		assert.False(t, q.Has("count"))
		writeJson(w, http.StatusOK, []any{})
	})

	posts, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(42))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFetchWithClientCredentials(t *testing.T) {
	var tokenRequests atomic.Int32
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth2/token" {
			tokenRequests.Add(1)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			writeJson(w, http.StatusOK, map[string]any{"token_type": "bearer", "access_token": "minted"})
			return
		}
		assert.Equal(t, "Bearer minted", r.Header.Get("Authorization"))
		writeJson(w, http.StatusOK, []any{})
	})
	h.cfg.Secrets = shared.Secrets{ApiKey: "key", ApiKeySecret: "secret"}

	for i := 0; i < 2; i++ {
		_, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(1))
		require.NoError(t, err)
	}
	// Token is reused while valid
	assert.Equal(t, int32(1), tokenRequests.Load())
}

func TestFetchWithoutCredentials(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, []any{})
	})
	h.cfg.Secrets = shared.Secrets{ApiKey: "key-only"}

	_, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	assert.True(t, errors.Is(err, logic.ErrConfigMissing))
	_, err = h.client.FetchAccount(context.Background(), "gopher")
	assert.True(t, errors.Is(err, logic.ErrConfigMissing))
	assert.Equal(t, int32(0), h.calls.Load())
}

func TestFetchNotFound(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "suspended") {
			writeJson(w, http.StatusForbidden, map[string]any{
				"errors": []map[string]any{{"code": 50, "message": "User not found."}},
			})
			return
		}
		writeJson(w, http.StatusNotFound, map[string]any{
			"errors": []map[string]any{{"code": 34, "message": "Sorry, that page does not exist."}},
		})
	})

	_, err := h.client.FetchAccount(context.Background(), "nobody")
	assert.True(t, errors.Is(err, logic.ErrAccountNotFound))
	_, err = h.client.FetchTimeline(context.Background(), "suspended", logic.PlanFetch(0))
	assert.True(t, errors.Is(err, logic.ErrAccountNotFound))
}

func TestFetchServerError(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusServiceUnavailable, map[string]any{})
	})

	_, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	assert.True(t, errors.Is(err, logic.ErrFetchFailed))
	assert.False(t, errors.Is(err, logic.ErrAccountNotFound))
}

func TestFetchRejectsMalformedPayload(t *testing.T) {
	author := test.MakeRawUser(11, "gopher")
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		good := test.MakeRawPost(5, author, "fine")
		bad := test.MakeRawPost(4, author, "no date")
		bad.CreatedAt = "yesterday"
		writeJson(w, http.StatusOK, []any{good, bad})
	})

	posts, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	assert.Nil(t, posts)
	assert.True(t, errors.Is(err, logic.ErrFetchFailed))
	assert.True(t, errors.Is(err, logic.ErrMalformedPayload))
}

func TestFetchAccount(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/show.json", r.URL.Path)
		assert.Equal(t, "GoPher", r.URL.Query().Get("screen_name"))
		writeJson(w, http.StatusOK, test.MakeRawUser(11, "gopher"))
	})

	user, err := h.client.FetchAccount(context.Background(), "GoPher")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), user.Id)
	assert.Equal(t, "gopher", user.ScreenName)
	assert.Equal(t, "https://pbs.example.com/gopher.jpg", user.ImageUrl())
}

func TestFetchErrorWithoutEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockILogger(ctrl)
	logger.EXPECT().Debugf("No error envelope in %d response from %s: %v", gomock.Any()).Times(1)
	test.StubLogger(logger)
	h := setupClientTestWithLogger(t, ctrl, logger, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	})

	_, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	assert.True(t, errors.Is(err, logic.ErrFetchFailed))
	assert.False(t, errors.Is(err, logic.ErrAccountNotFound))
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	h := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// One byte over the 16 MiB cap
		_, _ = w.Write(bytes.Repeat([]byte(" "), 16<<20+1))
	})

	posts, err := h.client.FetchTimeline(context.Background(), "gopher", logic.PlanFetch(0))
	assert.Nil(t, posts)
	assert.True(t, errors.Is(err, logic.ErrFetchFailed))
	assert.False(t, errors.Is(err, logic.ErrMalformedPayload))
}
