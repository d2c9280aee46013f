package models

import "time"

// MaxTweetLength is the maximum tweet length in characters (runes).
const MaxTweetLength = 280

// Tweet represents a short message posted by a user.
type Tweet struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	RetweetsCount int       `json:"retweets_count"`
	RepliesCount  int       `json:"replies_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t Tweet) Key() string { return t.ID }
