package logic_test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
	"timeline_cache/dto"
	"timeline_cache/logic"
	"timeline_cache/test"
	"timeline_cache/test/mocks"
	"timeline_cache/texts"
)

func TestBuildRendersLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := logic.NewContentBuilder(test.NewStubLogger(ctrl), mocks.NewMockIMetrics(ctrl), texts.NewTexts())

	res := cb.Build(makeAnnotatedPost())
	assert.Equal(t, `Hi <a href="https://twitter.com/bob">@bob</a> check `+
		`<a href="https://twitter.com/search?q=%23go">#Go</a> `+
		`<a href="https://example.com/a?b=1&amp;c=2">example.com/a</a>`, res)
}

func TestBuildFallsBackOnBadOffsets(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockMetrics.EXPECT().EntityRewriteFailed().Times(1)
	cb := logic.NewContentBuilder(test.NewStubLogger(ctrl), mockMetrics, texts.NewTexts())

	post := makeAnnotatedPost()
	post.Entities.Hashtags[0].Indices = dto.Indices{20, 40}
	assert.Equal(t, post.Text, cb.Build(post))
}

func TestBuildStripsMarkupFromText(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := logic.NewContentBuilder(test.NewStubLogger(ctrl), mocks.NewMockIMetrics(ctrl), texts.NewTexts())

	post := &dto.RawPost{Id: 3, Text: `<script>alert(1)</script>hi <b onclick="x()">there</b>`}
	res := cb.Build(post)
	assert.NotContains(t, res, "<script")
	assert.NotContains(t, res, "onclick")
	assert.Contains(t, res, "hi")
	assert.Contains(t, res, "there")
}

func TestBuildDropsUnsafeLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := logic.NewContentBuilder(test.NewStubLogger(ctrl), mocks.NewMockIMetrics(ctrl), texts.NewTexts())

	post := &dto.RawPost{
		Id:   4,
		Text: "see x",
		Entities: dto.Entities{Urls: []dto.UrlEntity{{
			ExpandedUrl: "javascript:alert(1)",
			DisplayUrl:  "x",
			Indices:     dto.Indices{4, 5},
		}}},
	}
	res := cb.Build(post)
	assert.NotContains(t, res, "javascript")
	assert.Contains(t, res, "see ")
}
