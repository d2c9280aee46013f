package dto

import (
	"time"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/services"
)

// TweetDTO is a tweet joined with its author, as returned by the single
// tweet endpoints, the timeline and per-user listings.
type TweetDTO struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Content       string      `json:"content"`
	LikesCount    int         `json:"likes_count"`
	RetweetsCount int         `json:"retweets_count"`
	RepliesCount  int         `json:"replies_count"`
	CreatedAt     time.Time   `json:"created_at"`
	User          models.User `json:"user"`
	IsLiked       bool        `json:"is_liked"`
}

// FromTweetView converts a service view to its JSON form.
func FromTweetView(v services.TweetView) TweetDTO {
	return TweetDTO{
		ID:            v.Tweet.ID,
		UserID:        v.Tweet.UserID,
		Content:       v.Tweet.Content,
		LikesCount:    v.Tweet.LikesCount,
		RetweetsCount: v.Tweet.RetweetsCount,
		RepliesCount:  v.Tweet.RepliesCount,
		CreatedAt:     v.Tweet.CreatedAt,
		User:          v.Author,
		IsLiked:       v.Liked,
	}
}

// FromTweetViews converts a slice, never returning nil.
func FromTweetViews(views []services.TweetView) []TweetDTO {
	out := make([]TweetDTO, 0, len(views))
	for _, v := range views {
		out = append(out, FromTweetView(v))
	}
	return out
}
