package texts

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWithValsEscapesHtml(t *testing.T) {
	txt := NewTexts()
	res := txt.WithVals("link_url.html", map[string]string{
		"href": "https://example.com/?a=1&b=2",
		"text": "example.com/<x>",
	})
	assert.Equal(t, `<a href="https://example.com/?a=1&amp;b=2">example.com/&lt;x&gt;</a>`, res)
}

func TestWithValsSinglePass(t *testing.T) {
	txt := NewTexts()
	res := txt.WithVals("link_mention.html", map[string]string{
		"href": "{{name}}",
		"name": "bob",
	})
	assert.Equal(t, `<a href="{{name}}">@bob</a>`, res)
}

func TestMissingSnippet(t *testing.T) {
	assert.Equal(t, "", NewTexts().Get("nope.html"))
}
