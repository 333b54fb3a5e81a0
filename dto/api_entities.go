package dto

import (
	"encoding/json"
	"time"
)

type FeedUser struct {
	Id          uint64 `json:"id"`
	DisplayName string `json:"name"`
	ScreenName  string `json:"screen_name"`
	ProfileUrl  string `json:"url"`
	ImageUrl    string `json:"image"`
}

type FeedPost struct {
	Id           uint64          `json:"id"`
	IdStr        string          `json:"id_str"`
	Date         time.Time       `json:"date"`
	PermalinkUrl string          `json:"url"`
	IsRetweet    bool            `json:"retweet"`
	Content      string          `json:"content"`
	User         *FeedUser       `json:"user,omitempty"`
	Raw          json.RawMessage `json:"raw,omitempty"`
}

type SyncFailure struct {
	ScreenName string `json:"screen_name"`
	Error      string `json:"error"`
}

type SyncReport struct {
	AccountsProcessed int           `json:"accounts_processed"`
	AccountsFailed    int           `json:"accounts_failed"`
	PostsWritten      int           `json:"posts_written"`
	PostsEvicted      int           `json:"posts_evicted"`
	Failures          []SyncFailure `json:"failures,omitempty"`
	EvictionError     string        `json:"eviction_error,omitempty"`
}
