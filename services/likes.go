package services

import (
	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/repositories"
)

// LikeTweet records userID's like on tweetID and bumps the tweet's
// likes_count in the same critical section.
func (s *Service) LikeTweet(userID, tweetID string) (models.Like, error) {
	if _, ok := s.store.Users.Get(userID); !ok {
		return models.Like{}, notFound("User not found")
	}

	like := models.Like{
		ID:        models.NewID(),
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: s.timestamp(),
	}
	err := s.store.Update(repositories.Tweets|repositories.Likes, func(tx *repositories.Tx) error {
		if _, ok := tx.Tweets.Get(tweetID); !ok {
			return notFound("Tweet not found")
		}
		if _, ok := repositories.LikeOf(tx.Likes, userID, tweetID); ok {
			return conflict("Already liked this tweet")
		}
		tx.Likes.Insert(like)
		tx.Tweets.Update(tweetID, func(t *models.Tweet) { t.LikesCount++ })
		return nil
	})
	if err != nil {
		return models.Like{}, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "tweet_id": tweetID}).Debug("tweet liked")
	return like, nil
}

// UnlikeTweet removes userID's like on tweetID and lowers likes_count.
func (s *Service) UnlikeTweet(userID, tweetID string) error {
	err := s.store.Update(repositories.Tweets|repositories.Likes, func(tx *repositories.Tx) error {
		like, ok := repositories.LikeOf(tx.Likes, userID, tweetID)
		if !ok {
			return notFound("Like not found")
		}
		tx.Likes.Remove(like.ID)
		tx.Tweets.Update(tweetID, func(t *models.Tweet) { decr(&t.LikesCount) })
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "tweet_id": tweetID}).Debug("tweet unliked")
	return nil
}

// GetTweetLikes returns the likes on tweetID in the order they were made.
func (s *Service) GetTweetLikes(tweetID string) ([]models.Like, error) {
	var likes []models.Like
	err := s.store.View(repositories.Tweets|repositories.Likes, func(tx *repositories.Tx) error {
		if _, ok := tx.Tweets.Get(tweetID); !ok {
			return notFound("Tweet not found")
		}
		likes = repositories.LikesForTweet(tx.Likes, tweetID)
		return nil
	})
	return likes, err
}
