package models

import "time"

// Length limits for user fields, in characters (runes).
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 30
	MaxDisplayNameLength = 100
)

// User represents a registered account.
// FollowersCount and FollowingCount are derived from the follow collection
// and only change through follow/unfollow.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	Bio            *string   `json:"bio"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Key returns the user's identifier.
func (u User) Key() string { return u.ID }
