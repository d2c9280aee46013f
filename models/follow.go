package models

import "time"

// Follow is the edge FollowerID -> FollowingID. Self-follows are never stored.
type Follow struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f Follow) Key() string { return f.ID }
