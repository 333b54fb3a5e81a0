package logic

import (
	"github.com/microcosm-cc/bluemonday"
	"timeline_cache/dto"
	"timeline_cache/shared"
	"timeline_cache/texts"
)

type IContentBuilder interface {
	Build(post *dto.RawPost) string
}

type contentBuilder struct {
	logger    shared.ILogger
	metrics   IMetrics
	extractor *EntityExtractor
	policy    *bluemonday.Policy
}

func NewContentBuilder(logger shared.ILogger, metrics IMetrics, txt texts.ITexts) IContentBuilder {
	return &contentBuilder{
		logger:    logger,
		metrics:   metrics,
		extractor: NewEntityExtractor(txt),
		policy:    newLinkPolicy(),
	}
}

// Only plain links survive in rendered content
func newLinkPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowAttrs("href").OnElements("a")
	return p
}

// Build renders a post's text with its entities turned into links.
// If the entity offsets don't fit the text, the raw text is used instead.
func (cb *contentBuilder) Build(post *dto.RawPost) string {
	spans := cb.extractor.Extract(post)
	content, dropped, err := RewriteFlagged(post.Text, spans)
	if err != nil {
		cb.logger.Warnf("Post %d: storing unrewritten text: %v", post.Id, err)
		cb.metrics.EntityRewriteFailed()
		content = post.Text
	} else if len(dropped) != 0 {
		cb.logger.Warnf("Post %d: %v; %d span(s) dropped", post.Id, ErrOverlappingEntity, len(dropped))
	}
	return cb.policy.Sanitize(content)
}
