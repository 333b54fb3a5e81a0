package server

import (
	"bytes"
	"embed"
	"github.com/gorilla/mux"
	"html/template"
	"net/http"
	"timeline_cache/dal"
	"timeline_cache/logic"
	"timeline_cache/shared"
)

const feedTemplateName = "feed.tmpl"

// Rendered like "14:05 on 9 March 2024"
const feedDateFormat = "15:04 on 2 January 2006"

//go:embed templates/*.tmpl
var templatesFS embed.FS

type webHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	syncer  logic.ITimelineSyncer
	tmpl    *template.Template
}

type feedItemModel struct {
	Content  template.HTML
	UserUrl  string
	UserName string
	Url      string
	Date     string
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	syncer logic.ITimelineSyncer,
) IHandlerGroup {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		logger.Errorf("Failed to parse page templates: %v", err)
		panic(err)
	}
	res := webHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		syncer:  syncer,
		tmpl:    tmpl,
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/feeds/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getFeed(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func toFeedItems(posts []*dal.StoredPost) []feedItemModel {
	res := make([]feedItemModel, 0, len(posts))
	for _, p := range posts {
		item := feedItemModel{
			// Sanitized when the post was stored
			Content: template.HTML(p.RenderedContent),
			Url:     p.PermalinkUrl,
			Date:    p.Date.UTC().Format(feedDateFormat),
		}
		if p.User != nil {
			item.UserUrl = p.User.ProfileUrl
			item.UserName = p.User.DisplayName
		}
		res = append(res, item)
	}
	return res
}

func (hg *webHandlerGroup) getFeed(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling web feed GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("web_feed")
	defer obs.Finish()

	user := mux.Vars(r)[userVarName]
	count, ok := parseCount(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	posts, err := hg.syncer.GetRecent(r.Context(), user, count, false)
	if err != nil {
		writeSyncErrorResponse(hg.logger, w, err)
		return
	}

	var buf bytes.Buffer
	if err = hg.tmpl.ExecuteTemplate(&buf, feedTemplateName, toFeedItems(posts)); err != nil {
		hg.logger.Errorf("Failed to render feed of %s: %v", user, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeBody(hg.logger, w, r, contentTypeHtml, buf.Bytes())
}
