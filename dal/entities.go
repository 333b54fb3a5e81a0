package dal

import (
	"time"
)

type StoredUser struct {
	Id          uint64
	DisplayName string // Gopher News
	ScreenName  string // gophernews; unique, case-sensitive lookup key
	ProfileUrl  string // https://twitter.com/gophernews
	ImageUrl    string
}

type StoredPost struct {
	Id              uint64 // Same as the remote post id; grows with recency
	Date            time.Time
	UserId          uint64
	PermalinkUrl    string // https://twitter.com/gophernews/status/1580661436132757506
	IsRetweet       bool
	RenderedContent string // Text with entities rewritten to links
	RawJson         string // Only filled in when explicitly requested
	User            *StoredUser
}
