package shared

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const siteRoot = "https://twitter.com"

type UrlBuilder struct {
	Site string
}

func NewUrlBuilder() UrlBuilder {
	return UrlBuilder{siteRoot}
}

func (ub *UrlBuilder) Profile(screenName string) string {
	return fmt.Sprintf("%s/%s", ub.Site, screenName)
}

func (ub *UrlBuilder) Permalink(screenName string, postId uint64) string {
	idStr := strconv.FormatUint(postId, 10)
	return fmt.Sprintf("%s/%s/status/%s", ub.Site, screenName, idStr)
}

// HashtagSearch links to the search page for a tag; the tag is lower-cased.
func (ub *UrlBuilder) HashtagSearch(tag string) string {
	return fmt.Sprintf("%s/search?q=%%23%s", ub.Site, url.QueryEscape(strings.ToLower(tag)))
}
