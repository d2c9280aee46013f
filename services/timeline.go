package services

import (
	"sort"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/repositories"
)

// GetTimeline returns the tweets of every account userID follows, newest
// first, each joined with its author and userID's like state. userID's own
// tweets are not included. No limit is applied.
func (s *Service) GetTimeline(userID string) ([]TweetView, error) {
	var out []TweetView
	scope := repositories.Users | repositories.Tweets | repositories.Likes | repositories.Follows
	err := s.store.View(scope, func(tx *repositories.Tx) error {
		if _, ok := tx.Users.Get(userID); !ok {
			return notFound("User not found")
		}

		following := repositories.FollowingIDs(tx.Follows, userID)
		tweets := repositories.TweetsByAuthors(tx.Tweets, following)
		sortNewestFirst(tweets)
		liked := repositories.LikedSet(tx.Likes, userID)

		out = make([]TweetView, 0, len(tweets))
		for _, t := range tweets {
			author, _ := tx.Users.Get(t.UserID)
			_, isLiked := liked[t.ID]
			out = append(out, TweetView{Tweet: t, Author: author, Liked: isLiked})
		}
		return nil
	})
	return out, err
}

// sortNewestFirst orders tweets (given in insertion order) by created_at
// descending; equal timestamps keep reverse insertion order.
func sortNewestFirst(tweets []models.Tweet) {
	for i, j := 0, len(tweets)-1; i < j; i, j = i+1, j-1 {
		tweets[i], tweets[j] = tweets[j], tweets[i]
	}
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
}
