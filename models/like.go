package models

import "time"

// Like records that a user liked a tweet. At most one exists per
// (UserID, TweetID) pair.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TweetID   string    `json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l Like) Key() string { return l.ID }
