package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"timeline_cache/dal"
	"timeline_cache/dto"
	"timeline_cache/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_timeline_syncer.go -package mocks timeline_cache/logic ITimelineSyncer

const (
	syncLabelOk       = "ok"
	syncLabelFailed   = "failed"
	syncLabelNotFound = "not_found"
)

type AccountFailure struct {
	ScreenName string
	Err        error
}

// SyncReport summarizes one pass over all stored accounts.
// AccountsProcessed counts accounts synced without error, no-ops included.
type SyncReport struct {
	AccountsProcessed int
	AccountsFailed    int
	PostsWritten      int
	PostsEvicted      int
	Failures          []AccountFailure
	EvictionErr       error
}

type ITimelineSyncer interface {
	SyncAccount(ctx context.Context, screenName string) (int, error)
	SyncAll(ctx context.Context) (*SyncReport, error)
	GetRecent(ctx context.Context, screenName string, count int, includeRaw bool) ([]*dal.StoredPost, error)
}

type timelineSyncer struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	client  ITimelineClient
	builder IContentBuilder
	evictor IRetentionEvictor
	blocked IBlockedAccounts
	metrics IMetrics
	urls    shared.UrlBuilder
}

func NewTimelineSyncer(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	client ITimelineClient,
	builder IContentBuilder,
	evictor IRetentionEvictor,
	blocked IBlockedAccounts,
	metrics IMetrics,
) ITimelineSyncer {
	return &timelineSyncer{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		client:  client,
		builder: builder,
		evictor: evictor,
		blocked: blocked,
		metrics: metrics,
		urls:    shared.NewUrlBuilder(),
	}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

func (ts *timelineSyncer) SyncAccount(ctx context.Context, screenName string) (int, error) {

	exists, err := ts.repo.DoesUserExist(screenName)
	if err != nil {
		return 0, storeErr(err)
	}
	if !exists {
		_, written, err := ts.createAccount(ctx, screenName)
		return written, err
	}
	return ts.syncTimeline(ctx, screenName)
}

// createAccount looks the account up remotely, stores its user row and runs one timeline sync.
// An empty canonical name means the remote API doesn't know the account.
func (ts *timelineSyncer) createAccount(ctx context.Context, screenName string) (canonical string, written int, err error) {

	ts.logger.Infof("Looking up account not yet stored: %s", screenName)

	var raw *dto.RawUser
	if raw, err = ts.client.FetchAccount(ctx, screenName); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			ts.logger.Infof("Account does not exist remotely: %s", screenName)
			ts.metrics.AccountSynced(syncLabelNotFound)
			return "", 0, nil
		}
		ts.metrics.AccountSynced(syncLabelFailed)
		return "", 0, err
	}

	if err = ts.repo.UpsertUser(ts.toStoredUser(raw)); err != nil {
		ts.metrics.AccountSynced(syncLabelFailed)
		return "", 0, storeErr(err)
	}
	ts.logger.Infof("Created account %s (%d)", raw.ScreenName, raw.Id)

	// Exactly one follow-up sync; no retry if it comes back empty
	written, err = ts.syncTimeline(ctx, raw.ScreenName)
	return raw.ScreenName, written, err
}

func (ts *timelineSyncer) syncTimeline(ctx context.Context, screenName string) (written int, err error) {

	label := syncLabelFailed
	defer func() {
		ts.metrics.AccountSynced(label)
	}()

	var lastId uint64
	if lastId, err = ts.repo.GetLatestPostId(screenName); err != nil {
		return 0, storeErr(err)
	}
	params := PlanFetch(lastId)

	var posts []*dto.RawPost
	if posts, err = ts.client.FetchTimeline(ctx, screenName, params); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			ts.logger.Infof("Timeline of %s is gone remotely; nothing to sync", screenName)
			label = syncLabelNotFound
			return 0, nil
		}
		return 0, err
	}
	if len(posts) == 0 {
		ts.logger.Debugf("No new posts for %s", screenName)
		label = syncLabelOk
		return 0, nil
	}

	// In received order: a failure leaves only a prefix of the response stored
	for _, post := range posts {
		if err = ts.storePost(screenName, post); err != nil {
			return written, err
		}
		written++
	}

	// Author as of this fetch: the last post's snapshot
	last := posts[len(posts)-1]
	if err = ts.repo.UpsertUser(ts.toStoredUser(last.User)); err != nil {
		return written, storeErr(err)
	}

	ts.logger.Infof("Stored %d posts for %s", written, screenName)
	label = syncLabelOk
	return written, nil
}

func (ts *timelineSyncer) storePost(screenName string, post *dto.RawPost) error {

	date, err := post.CreatedAtTime()
	if err != nil {
		return fmt.Errorf("%w: post %d: %w", ErrFetchFailed, post.Id, ErrMalformedPayload)
	}
	raw := post.Raw
	if len(raw) == 0 {
		raw, _ = json.Marshal(post)
	}

	stored := dal.StoredPost{
		Id:              post.Id,
		Date:            date,
		UserId:          post.User.Id,
		PermalinkUrl:    ts.urls.Permalink(screenName, post.Id),
		IsRetweet:       post.IsRetweet(),
		RenderedContent: ts.builder.Build(post),
		RawJson:         string(raw),
	}
	if err = ts.repo.UpsertPost(&stored); err != nil {
		return storeErr(err)
	}
	ts.metrics.PostSaved()
	ts.logger.Debugf("Stored post %d of %s: %s", post.Id, screenName,
		shared.TruncateWithEllipsis(post.Text, shared.MaxLogPreviewLen))
	return nil
}

func (ts *timelineSyncer) toStoredUser(raw *dto.RawUser) *dal.StoredUser {
	return &dal.StoredUser{
		Id:          raw.Id,
		DisplayName: raw.DisplayName,
		ScreenName:  raw.ScreenName,
		ProfileUrl:  ts.urls.Profile(raw.ScreenName),
		ImageUrl:    raw.ImageUrl(),
	}
}

func (ts *timelineSyncer) SyncAll(ctx context.Context) (*SyncReport, error) {

	names, err := ts.repo.GetAllScreenNames()
	if err != nil {
		return nil, storeErr(err)
	}
	ts.metrics.TrackedAccountCount(len(names))
	ts.logger.Infof("Starting sync pass over %d accounts", len(names))

	report := &SyncReport{}
	for _, name := range names {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		written, err := ts.SyncAccount(ctx, name)
		report.PostsWritten += written
		if err != nil {
			// Without credentials no account can be fetched: stop and say so
			if errors.Is(err, ErrConfigMissing) {
				ts.logger.Errorf("Aborting sync pass: %v", err)
				return report, err
			}
			ts.logger.Errorf("Failed to sync account %s: %v", name, err)
			report.AccountsFailed++
			report.Failures = append(report.Failures, AccountFailure{name, err})
			continue
		}
		report.AccountsProcessed++
	}

	// Only ever deletes old rows, so it's safe after a partial pass too
	report.PostsEvicted, report.EvictionErr = ts.evictor.EvictExcess(ts.cfg.RetentionLimit)
	if report.EvictionErr != nil {
		ts.logger.Errorf("Retention eviction failed: %v", report.EvictionErr)
	}

	ts.logger.Infof("Sync pass done: %d accounts ok, %d failed, %d posts written, %d evicted",
		report.AccountsProcessed, report.AccountsFailed, report.PostsWritten, report.PostsEvicted)
	return report, nil
}

func (ts *timelineSyncer) GetRecent(ctx context.Context, screenName string, count int, includeRaw bool) ([]*dal.StoredPost, error) {

	if count <= 0 {
		count = ts.cfg.DefaultFeedCount
	}

	posts, err := ts.repo.GetRecentPosts(screenName, count, includeRaw)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(posts) != 0 {
		return posts, nil
	}

	// Nothing stored under this exact name. A case variant of a stored account is served
	// from the store; only a name we don't know at all goes remote.
	stored, err := ts.repo.FindScreenName(screenName)
	if err != nil {
		return nil, storeErr(err)
	}
	if stored == screenName {
		return posts, nil
	}
	if stored != "" {
		if posts, err = ts.repo.GetRecentPosts(stored, count, includeRaw); err != nil {
			return nil, storeErr(err)
		}
		return posts, nil
	}
	blocked, err := ts.blocked.IsBlocked(screenName)
	if err != nil {
		ts.logger.Errorf("Failed to read blocked accounts: %v", err)
		return posts, nil
	}
	if blocked {
		ts.logger.Infof("Not looking up blocked account: %s", screenName)
		return posts, nil
	}
	canonical, _, err := ts.createAccount(ctx, screenName)
	if err != nil {
		return nil, err
	}
	if canonical == "" {
		return posts, nil
	}
	if posts, err = ts.repo.GetRecentPosts(canonical, count, includeRaw); err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}
