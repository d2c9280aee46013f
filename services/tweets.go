package services

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/repositories"
)

// TweetView is a tweet joined with its author and, where a viewer is known,
// whether the viewer liked it.
type TweetView struct {
	Tweet  models.Tweet
	Author models.User
	Liked  bool
}

// CreateTweet posts content on behalf of userID. Content length is counted
// in characters, not bytes.
func (s *Service) CreateTweet(userID, content string) (models.Tweet, error) {
	// Users are never deleted, so the existence check needs no lock held
	// across the insert.
	if _, ok := s.store.Users.Get(userID); !ok {
		return models.Tweet{}, notFound("User not found")
	}
	if n := utf8.RuneCountInString(content); n < 1 || n > models.MaxTweetLength {
		return models.Tweet{}, invalid("Content must be between 1 and %d characters", models.MaxTweetLength)
	}

	tweet := models.Tweet{
		ID:        models.NewID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: s.timestamp(),
	}
	s.store.Tweets.Insert(tweet)

	s.log.WithFields(logrus.Fields{"tweet_id": tweet.ID, "user_id": userID}).Info("tweet created")
	return tweet, nil
}

// GetTweet returns the tweet with the given id.
func (s *Service) GetTweet(id string) (models.Tweet, error) {
	t, ok := s.store.Tweets.Get(id)
	if !ok {
		return models.Tweet{}, notFound("Tweet not found")
	}
	return t, nil
}

// GetTweetView returns the tweet with the given id joined with its author.
func (s *Service) GetTweetView(id string) (TweetView, error) {
	var v TweetView
	err := s.store.View(repositories.Users|repositories.Tweets, func(tx *repositories.Tx) error {
		t, ok := tx.Tweets.Get(id)
		if !ok {
			return notFound("Tweet not found")
		}
		author, ok := tx.Users.Get(t.UserID)
		if !ok {
			return notFound("User not found")
		}
		v = TweetView{Tweet: t, Author: author}
		return nil
	})
	return v, err
}

// ListTweets returns every tweet, newest first.
func (s *Service) ListTweets() []models.Tweet {
	tweets := s.store.Tweets.List()
	sortNewestFirst(tweets)
	return tweets
}

// GetUserTweets returns userID's tweets joined with the author, newest first.
func (s *Service) GetUserTweets(userID string) ([]TweetView, error) {
	var out []TweetView
	err := s.store.View(repositories.Users|repositories.Tweets, func(tx *repositories.Tx) error {
		author, ok := tx.Users.Get(userID)
		if !ok {
			return notFound("User not found")
		}
		tweets := repositories.TweetsByAuthors(tx.Tweets, []string{userID})
		sortNewestFirst(tweets)
		out = make([]TweetView, 0, len(tweets))
		for _, t := range tweets {
			out = append(out, TweetView{Tweet: t, Author: author})
		}
		return nil
	})
	return out, err
}

// DeleteTweet removes a tweet and every like referencing it.
func (s *Service) DeleteTweet(id string) (models.Tweet, error) {
	var (
		tweet   models.Tweet
		removed []models.Like
	)
	err := s.store.Update(repositories.Tweets|repositories.Likes, func(tx *repositories.Tx) error {
		t, ok := tx.Tweets.Remove(id)
		if !ok {
			return notFound("Tweet not found")
		}
		tweet = t
		removed = tx.Likes.RemoveWhere(func(l models.Like) bool { return l.TweetID == id })
		return nil
	})
	if err != nil {
		return models.Tweet{}, err
	}

	s.log.WithFields(logrus.Fields{"tweet_id": id, "likes_removed": len(removed)}).Info("tweet deleted")
	return tweet, nil
}
