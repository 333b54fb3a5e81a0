package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/spaolacci/murmur3"
	"net/http"
	"strconv"
	"timeline_cache/dal"
	"timeline_cache/dto"
	"timeline_cache/logic"
	"timeline_cache/shared"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	etagHeader        = "ETag"
	ifNoneMatchHeader = "If-None-Match"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	notFoundStr       = "404 Not Found"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
	upstreamFailedStr = "502 Timeline Source Unavailable"
	notConfiguredStr  = "503 Timeline Source Not Configured"
	maxFeedCount      = 200
	contentTypeJson   = "application/json"
	contentTypeHtml   = "text/html; charset=utf-8"
	countParamName    = "count"
	rawParamName      = "raw"
	userVarName       = "user"
)

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

func emptyMW(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	})
}

// Returns the JSON serialized object as the response body; handles errors.
// With a non-nil request, the response gets an ETag and may be answered with 304.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, r *http.Request, resp interface{}) {
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	respJson = append(respJson, '\n')
	writeBody(logger, w, r, contentTypeJson, respJson)
}

func writeBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if r != nil {
		etag := makeETag(body)
		w.Header().Set(etagHeader, etag)
		if r.Header.Get(ifNoneMatchHeader) == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	if _, err := w.Write(body); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

func makeETag(body []byte) string {
	return fmt.Sprintf(`W/"%016x"`, murmur3.Sum64(body))
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", contentTypeJson)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	resp := errorResp{msg, code}
	respJson, _ := json.Marshal(resp)
	w.WriteHeader(code)
	_, _ = fmt.Fprintln(w, string(respJson))
}

// Maps sync and feed failures to a response status
func writeSyncErrorResponse(logger shared.ILogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, logic.ErrConfigMissing):
		logger.Errorf("Cannot reach timeline source: %v", err)
		writeErrorResponse(w, notConfiguredStr, http.StatusServiceUnavailable)
	case errors.Is(err, logic.ErrFetchFailed):
		logger.Warnf("Timeline source request failed: %v", err)
		writeErrorResponse(w, upstreamFailedStr, http.StatusBadGateway)
	default:
		logger.Errorf("Request failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
	}
}

// Parses the optional count query param. Zero means the configured default.
func parseCount(r *http.Request) (int, bool) {
	str := r.URL.Query().Get(countParamName)
	if str == "" {
		return 0, true
	}
	count, err := strconv.Atoi(str)
	if err != nil || count < 1 {
		return 0, false
	}
	if count > maxFeedCount {
		count = maxFeedCount
	}
	return count, true
}

func toFeedPosts(posts []*dal.StoredPost, includeRaw bool) []*dto.FeedPost {
	res := make([]*dto.FeedPost, 0, len(posts))
	for _, p := range posts {
		fp := dto.FeedPost{
			Id:           p.Id,
			IdStr:        strconv.FormatUint(p.Id, 10),
			Date:         p.Date.UTC(),
			PermalinkUrl: p.PermalinkUrl,
			IsRetweet:    p.IsRetweet,
			Content:      p.RenderedContent,
		}
		if p.User != nil {
			fp.User = &dto.FeedUser{
				Id:          p.User.Id,
				DisplayName: p.User.DisplayName,
				ScreenName:  p.User.ScreenName,
				ProfileUrl:  p.User.ProfileUrl,
				ImageUrl:    p.User.ImageUrl,
			}
		}
		if includeRaw && p.RawJson != "" {
			fp.Raw = json.RawMessage(p.RawJson)
		}
		res = append(res, &fp)
	}
	return res
}
