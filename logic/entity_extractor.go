package logic

import (
	"timeline_cache/dto"
	"timeline_cache/shared"
	"timeline_cache/texts"
)

const (
	snippetHashtag = "link_hashtag.html"
	snippetUrl     = "link_url.html"
	snippetMention = "link_mention.html"
)

type EntityExtractor struct {
	txt  texts.ITexts
	urls shared.UrlBuilder
}

func NewEntityExtractor(txt texts.ITexts) *EntityExtractor {
	return &EntityExtractor{
		txt:  txt,
		urls: shared.NewUrlBuilder(),
	}
}

// Extract turns a post's entity annotations into spans, in the order
// hashtags, URLs, mentions, media. A missing media list yields no media spans.
func (ee *EntityExtractor) Extract(post *dto.RawPost) []Span {

	ents := &post.Entities
	res := make([]Span, 0, len(ents.Hashtags)+len(ents.Urls)+len(ents.UserMentions)+len(ents.Media))

	for _, ht := range ents.Hashtags {
		res = append(res, Span{
			Start: ht.Indices.Start(),
			End:   ht.Indices.End(),
			Replacement: ee.txt.WithVals(snippetHashtag, map[string]string{
				"href": ee.urls.HashtagSearch(ht.Text),
				"tag":  ht.Text,
			}),
		})
	}
	for i := range ents.Urls {
		res = append(res, ee.urlSpan(&ents.Urls[i]))
	}
	for _, m := range ents.UserMentions {
		res = append(res, Span{
			Start: m.Indices.Start(),
			End:   m.Indices.End(),
			Replacement: ee.txt.WithVals(snippetMention, map[string]string{
				"href": ee.urls.Profile(m.ScreenName),
				"name": m.ScreenName,
			}),
		})
	}
	for i := range ents.Media {
		res = append(res, ee.urlSpan(&ents.Media[i].UrlEntity))
	}
	return res
}

func (ee *EntityExtractor) urlSpan(u *dto.UrlEntity) Span {
	return Span{
		Start: u.Indices.Start(),
		End:   u.Indices.End(),
		Replacement: ee.txt.WithVals(snippetUrl, map[string]string{
			"href": u.ExpandedUrl,
			"text": u.DisplayUrl,
		}),
	}
}
