package dto

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

const samplePayload = `[
  {
    "id": 1580661436132757506,
    "created_at": "Thu Oct 13 20:19:24 +0000 2022",
    "text": "Hello #gophers",
    "retweeted": false,
    "user": {"id": 11, "name": "Gopher", "screen_name": "gopher", "profile_image_url_https": "https://img/g.jpg"},
    "entities": {
      "hashtags": [{"text": "gophers", "indices": [6, 14]}],
      "urls": [],
      "user_mentions": []
    }
  },
  {
    "id": 1580661436132757000,
    "created_at": "Thu Oct 13 18:00:00 +0200 2022",
    "text": "RT something",
    "retweeted_status": {"id": 5},
    "user": {"id": 11, "name": "Gopher", "screen_name": "gopher", "profile_image_url": "http://img/g.jpg"},
    "entities": {"hashtags": [], "urls": [], "user_mentions": [], "media": [
      {"id": 9, "type": "photo", "url": "https://t.co/x", "expanded_url": "https://x/photo/1", "display_url": "pic", "indices": [3, 12]}
    ]}
  }
]`

func TestParseTimeline(t *testing.T) {
	posts, err := ParseTimeline([]byte(samplePayload))
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, uint64(1580661436132757506), first.Id)
	assert.False(t, first.IsRetweet())
	assert.Equal(t, 6, first.Entities.Hashtags[0].Indices.Start())
	assert.Equal(t, 14, first.Entities.Hashtags[0].Indices.End())
	assert.Empty(t, first.Entities.Media)
	assert.Equal(t, "https://img/g.jpg", first.User.ImageUrl())
	assert.Contains(t, string(first.Raw), `"text": "Hello #gophers"`)

	second := posts[1]
	assert.True(t, second.IsRetweet())
	assert.Equal(t, "http://img/g.jpg", second.User.ImageUrl())
	require.Len(t, second.Entities.Media, 1)
	assert.Equal(t, "https://x/photo/1", second.Entities.Media[0].ExpandedUrl)
	date, err := second.CreatedAtTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.October, 13, 16, 0, 0, 0, time.UTC), date)
}

func TestParseTimelineRejectsInvalidItems(t *testing.T) {
	for _, body := range []string{
		`{"errors": []}`,
		`[{"id": 0, "created_at": "Thu Oct 13 20:19:24 +0000 2022", "user": {"id": 1, "screen_name": "a"}}]`,
		`[{"id": 1, "created_at": "Thu Oct 13 20:19:24 +0000 2022"}]`,
		`[{"id": 1, "created_at": "Thu Oct 13 20:19:24 +0000 2022", "user": {"id": 1}}]`,
		`[{"id": 1, "created_at": "2022-10-13", "user": {"id": 1, "screen_name": "a"}}]`,
		`[{"id": "one"}]`,
		`[{"id": 9223372036854775813, "created_at": "Thu Oct 13 20:19:24 +0000 2022", "user": {"id": 1, "screen_name": "a"}}]`,
		`[{"id": 1, "created_at": "Thu Oct 13 20:19:24 +0000 2022", "user": {"id": 9223372036854775808, "screen_name": "a"}}]`,
	} {
		posts, err := ParseTimeline([]byte(body))
		assert.Nil(t, posts)
		assert.True(t, errors.Is(err, ErrMalformedPayload), body)
	}
}

func TestValidateIdRange(t *testing.T) {
	user := RawUser{Id: MaxId, ScreenName: "a"}
	assert.NoError(t, user.Validate())
	user.Id = MaxId + 1
	assert.True(t, errors.Is(user.Validate(), ErrMalformedPayload))

	post := RawPost{Id: 1<<63 + 5, CreatedAt: "Thu Oct 13 20:19:24 +0000 2022", User: &RawUser{Id: 1, ScreenName: "a"}}
	assert.True(t, errors.Is(post.Validate(), ErrMalformedPayload))
	post.Id = MaxId
	assert.NoError(t, post.Validate())
}

func TestParseEmptyTimeline(t *testing.T) {
	posts, err := ParseTimeline([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestApiErrorsHasCode(t *testing.T) {
	ae := ApiErrors{Errors: []ApiError{{Code: 88, Message: "Rate limit exceeded"}, {Code: 50}}}
	assert.True(t, ae.HasCode(34, 50))
	assert.False(t, ae.HasCode(34))
	assert.False(t, (&ApiErrors{}).HasCode(50))
}
