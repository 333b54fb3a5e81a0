package server

import (
	"crypto/subtle"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
	"timeline_cache/dto"
	"timeline_cache/logic"
	"timeline_cache/shared"
)

type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	syncer  logic.ITimelineSyncer
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	syncer logic.ITimelineSyncer,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		syncer:  syncer,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/feeds/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getFeed(w, r) }},
		{"POST", "/sync", hg.withApiKey(func(w http.ResponseWriter, r *http.Request) { hg.postSync(w, r) })},
	}
}

// Feeds are public; only the commands in this group check the API key
func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apiHandlerGroup) withApiKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (hg *apiHandlerGroup) getFeed(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling feed GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api_feed")
	defer obs.Finish()

	user := mux.Vars(r)[userVarName]
	count, ok := parseCount(r)
	if !ok {
		hg.logger.Infof("Feed GET: invalid count '%s'", r.URL.Query().Get(countParamName))
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	includeRaw := false
	if rawStr := r.URL.Query().Get(rawParamName); rawStr != "" {
		var err error
		if includeRaw, err = strconv.ParseBool(rawStr); err != nil {
			hg.logger.Infof("Feed GET: invalid raw flag '%s'", rawStr)
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
	}

	posts, err := hg.syncer.GetRecent(r.Context(), user, count, includeRaw)
	if err != nil {
		writeSyncErrorResponse(hg.logger, w, err)
		return
	}
	writeJsonResponse(hg.logger, w, r, toFeedPosts(posts, includeRaw))
}

func (hg *apiHandlerGroup) postSync(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/sync: Request received")
	obs := hg.metrics.StartWebRequestIn("api_sync")
	defer obs.Finish()

	report, err := hg.syncer.SyncAll(r.Context())
	if err != nil {
		writeSyncErrorResponse(hg.logger, w, err)
		return
	}

	resp := dto.SyncReport{
		AccountsProcessed: report.AccountsProcessed,
		AccountsFailed:    report.AccountsFailed,
		PostsWritten:      report.PostsWritten,
		PostsEvicted:      report.PostsEvicted,
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, dto.SyncFailure{ScreenName: f.ScreenName, Error: f.Err.Error()})
	}
	if report.EvictionErr != nil {
		resp.EvictionError = report.EvictionErr.Error()
	}
	writeJsonResponse(hg.logger, w, nil, &resp)
}
