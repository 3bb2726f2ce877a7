package archive

import (
	"encoding/json"
	"time"
)

// createdAtLayout is the fixed timestamp format used throughout the export,
// e.g. "Mon Apr 10 15:04:05 +0000 2023". The source offset is preserved.
const createdAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Entry is one element of the tweets.js top-level array. The export wraps
// every tweet in a single-key object.
type Entry struct {
	Tweet Tweet `json:"tweet"`
}

type Tweet struct {
	ID               string            `json:"id_str"`
	FullText         string            `json:"full_text"`
	CreatedAt        string            `json:"created_at"`
	InReplyToStatus  *string           `json:"in_reply_to_status_id"`
	Entities         Entities          `json:"entities"`
	ExtendedEntities *ExtendedEntities `json:"extended_entities"`
	Poll             json.RawMessage   `json:"poll"`
	RetweetedStatus  json.RawMessage   `json:"retweeted_status"`
}

type Entities struct {
	URLs []URLEntity `json:"urls"`
}

// URLEntity maps a t.co short link to its expanded form. The export also
// carries character offsets, but they are not used here: substitution is by
// literal substring, which stays correct when earlier replacements shift
// positions in the text.
type URLEntity struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
}

type ExtendedEntities struct {
	Media []MediaEntity `json:"media"`
}

type MediaEntity struct {
	URL      string `json:"url"`
	MediaURL string `json:"media_url_https"`
	Type     string `json:"type"`
	AltText  string `json:"ext_alt_text"`
}

func (t Tweet) IsReply() bool {
	return t.InReplyToStatus != nil
}

func (t Tweet) IsRetweet() bool {
	return len(t.RetweetedStatus) > 0
}

func (t Tweet) HasPoll() bool {
	return len(t.Poll) > 0
}

func (t Tweet) Media() []MediaEntity {
	if t.ExtendedEntities == nil {
		return nil
	}
	return t.ExtendedEntities.Media
}

// CreatedAtTime parses the export timestamp, keeping the original offset.
func (t Tweet) CreatedAtTime() (time.Time, error) {
	return time.Parse(createdAtLayout, t.CreatedAt)
}
