package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
	"timeline_cache/dto"
	"timeline_cache/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_timeline_client.go -package mocks timeline_cache/logic ITimelineClient

const (
	pathUserTimeline = "/statuses/user_timeline.json"
	pathUsersShow    = "/users/show.json"
)

// Remote API error codes meaning the account doesn't exist
const (
	apiErrNoSuchPage = 34
	apiErrNoSuchUser = 50
)

// Largest response body read from the remote API
const maxResponseBytes = 16 << 20

type ITimelineClient interface {
	FetchTimeline(ctx context.Context, screenName string, params FetchParams) ([]*dto.RawPost, error)
	FetchAccount(ctx context.Context, screenName string) (*dto.RawUser, error)
}

type timelineClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	muClient  sync.Mutex
	client    *http.Client
}

func NewTimelineClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) ITimelineClient {
	return &timelineClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
	}
}

// Builds the authenticated client on first use. Missing credentials are reported every time.
func (tc *timelineClient) getClient() (*http.Client, error) {

	if err := tc.cfg.Secrets.CheckCredentials(); err != nil {
		return nil, err
	}

	tc.muClient.Lock()
	defer tc.muClient.Unlock()

	if tc.client != nil {
		return tc.client, nil
	}

	timeout := time.Duration(tc.cfg.RequestTimeoutSec) * time.Second
	baseCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})

	var ts oauth2.TokenSource
	if tc.cfg.Secrets.BearerToken != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: tc.cfg.Secrets.BearerToken,
			TokenType:   "Bearer",
		})
	} else {
		// App-only auth: API key and secret are exchanged for a bearer token
		ccfg := clientcredentials.Config{
			ClientID:     tc.cfg.Secrets.ApiKey,
			ClientSecret: tc.cfg.Secrets.ApiKeySecret,
			TokenURL:     tc.cfg.ApiTokenUrl,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		ts = ccfg.TokenSource(baseCtx)
	}

	client := oauth2.NewClient(baseCtx, ts)
	client.Timeout = timeout
	tc.client = client
	return client, nil
}

func (tc *timelineClient) get(ctx context.Context, label, path string, query url.Values) ([]byte, error) {

	client, err := tc.getClient()
	if err != nil {
		return nil, err
	}

	reqUrl := tc.cfg.ApiBaseUrl + path + "?" + query.Encode()
	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", reqUrl, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	tc.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")

	obs := tc.metrics.StartApiRequestOut(label)
	defer obs.Finish()

	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	var body []byte
	if body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1)); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFetchFailed, path, err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", ErrFetchFailed, path, maxResponseBytes)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErrs dto.ApiErrors
		if err = json.Unmarshal(body, &apiErrs); err != nil {
			tc.logger.Debugf("No error envelope in %d response from %s: %v", resp.StatusCode, path, err)
		}
		if resp.StatusCode == http.StatusNotFound || apiErrs.HasCode(apiErrNoSuchPage, apiErrNoSuchUser) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, query.Get("screen_name"))
		}
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, path, resp.StatusCode)
	}
	return body, nil
}

func (tc *timelineClient) FetchTimeline(ctx context.Context, screenName string, params FetchParams) ([]*dto.RawPost, error) {

	query := url.Values{}
	query.Set("screen_name", screenName)
	if params.ExcludeReplies {
		query.Set("exclude_replies", "true")
	}
	if params.SinceId != 0 {
		query.Set("since_id", strconv.FormatUint(params.SinceId, 10))
	}
	if params.Count != 0 {
		query.Set("count", strconv.Itoa(params.Count))
	}

	body, err := tc.get(ctx, "user_timeline", pathUserTimeline, query)
	if err != nil {
		return nil, err
	}
	posts, err := dto.ParseTimeline(body)
	if err != nil {
		tc.logger.Warnf("Rejecting timeline payload for %s: %v", screenName, err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	tc.logger.Debugf("Fetched %d posts for %s (since_id=%d, count=%d)",
		len(posts), screenName, params.SinceId, params.Count)
	return posts, nil
}

func (tc *timelineClient) FetchAccount(ctx context.Context, screenName string) (*dto.RawUser, error) {

	query := url.Values{}
	query.Set("screen_name", screenName)

	body, err := tc.get(ctx, "users_show", pathUsersShow, query)
	if err != nil {
		return nil, err
	}
	var user dto.RawUser
	if err = json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrFetchFailed, ErrMalformedPayload, err)
	}
	if err = user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return &user, nil
}
