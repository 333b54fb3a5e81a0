package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrMalformedPayload marks a remote item that failed validation at the fetch boundary.
var ErrMalformedPayload = errors.New("malformed payload")

// MaxId is the largest id the store can hold: sqlite integers are signed 64-bit.
const MaxId = math.MaxInt64

// CreatedAtLayout is the remote API's timestamp format: Wed Oct 10 20:19:24 +0000 2018
const CreatedAtLayout = time.RubyDate

type RawUser struct {
	Id              uint64 `json:"id"`
	DisplayName     string `json:"name"`
	ScreenName      string `json:"screen_name"`
	ProfileImageUrl string `json:"profile_image_url_https"`
	LegacyImageUrl  string `json:"profile_image_url"`
}

// ImageUrl prefers the https avatar link.
func (u *RawUser) ImageUrl() string {
	if u.ProfileImageUrl != "" {
		return u.ProfileImageUrl
	}
	return u.LegacyImageUrl
}

func (u *RawUser) Validate() error {
	if u.Id == 0 {
		return fmt.Errorf("%w: user without id", ErrMalformedPayload)
	}
	if u.Id > MaxId {
		return fmt.Errorf("%w: user id %d out of range", ErrMalformedPayload, u.Id)
	}
	if u.ScreenName == "" {
		return fmt.Errorf("%w: user %d without screen name", ErrMalformedPayload, u.Id)
	}
	return nil
}

// Indices is a [start, end) code point range into the post text.
type Indices [2]int

func (ix Indices) Start() int { return ix[0] }
func (ix Indices) End() int   { return ix[1] }

type Hashtag struct {
	Text    string  `json:"text"`
	Indices Indices `json:"indices"`
}

type UrlEntity struct {
	Url         string  `json:"url"`
	ExpandedUrl string  `json:"expanded_url"`
	DisplayUrl  string  `json:"display_url"`
	Indices     Indices `json:"indices"`
}

type Mention struct {
	Id         uint64  `json:"id"`
	Name       string  `json:"name"`
	ScreenName string  `json:"screen_name"`
	Indices    Indices `json:"indices"`
}

type Media struct {
	UrlEntity
	Id       uint64 `json:"id"`
	Type     string `json:"type"`
	MediaUrl string `json:"media_url_https"`
}

type Entities struct {
	Hashtags     []Hashtag   `json:"hashtags"`
	Urls         []UrlEntity `json:"urls"`
	UserMentions []Mention   `json:"user_mentions"`
	Media        []Media     `json:"media,omitempty"`
}

type RawPost struct {
	Id              uint64          `json:"id"`
	CreatedAt       string          `json:"created_at"`
	Text            string          `json:"text"`
	Retweeted       bool            `json:"retweeted"`
	RetweetedStatus json.RawMessage `json:"retweeted_status,omitempty"`
	User            *RawUser        `json:"user"`
	Entities        Entities        `json:"entities"`
	// Item exactly as received; kept for audit
	Raw json.RawMessage `json:"-"`
}

func (p *RawPost) IsRetweet() bool {
	return p.Retweeted || len(p.RetweetedStatus) != 0
}

func (p *RawPost) CreatedAtTime() (time.Time, error) {
	t, err := time.Parse(CreatedAtLayout, p.CreatedAt)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (p *RawPost) Validate() error {
	if p.Id == 0 {
		return fmt.Errorf("%w: post without id", ErrMalformedPayload)
	}
	if p.Id > MaxId {
		return fmt.Errorf("%w: post id %d out of range", ErrMalformedPayload, p.Id)
	}
	if p.User == nil {
		return fmt.Errorf("%w: post %d without author", ErrMalformedPayload, p.Id)
	}
	if err := p.User.Validate(); err != nil {
		return fmt.Errorf("post %d: %w", p.Id, err)
	}
	if _, err := p.CreatedAtTime(); err != nil {
		return fmt.Errorf("%w: post %d has bad created_at '%s'", ErrMalformedPayload, p.Id, p.CreatedAt)
	}
	return nil
}

// ParseTimeline decodes a timeline response, validating every item and keeping its raw bytes.
func ParseTimeline(body []byte) ([]*RawPost, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	res := make([]*RawPost, 0, len(items))
	for _, itm := range items {
		var post RawPost
		if err := json.Unmarshal(itm, &post); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if err := post.Validate(); err != nil {
			return nil, err
		}
		post.Raw = itm
		res = append(res, &post)
	}
	return res, nil
}

// ApiError is one entry of the remote API's error envelope.
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ApiErrors struct {
	Errors []ApiError `json:"errors"`
}

func (ae *ApiErrors) HasCode(codes ...int) bool {
	for _, e := range ae.Errors {
		for _, c := range codes {
			if e.Code == c {
				return true
			}
		}
	}
	return false
}
