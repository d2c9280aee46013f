package services

import (
	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/repositories"
)

// FollowUser makes followerID follow followingID and bumps both users'
// counters in the same critical section as the insert.
func (s *Service) FollowUser(followerID, followingID string) (models.Follow, error) {
	follow := models.Follow{
		ID:          models.NewID(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   s.timestamp(),
	}
	err := s.store.Update(repositories.Users|repositories.Follows, func(tx *repositories.Tx) error {
		if _, ok := tx.Users.Get(followerID); !ok {
			return notFound("User not found")
		}
		if _, ok := tx.Users.Get(followingID); !ok {
			return notFound("User not found")
		}
		if followerID == followingID {
			return invalid("Cannot follow yourself")
		}
		if _, ok := repositories.FollowEdge(tx.Follows, followerID, followingID); ok {
			return conflict("Already following this user")
		}
		tx.Follows.Insert(follow)
		tx.Users.Update(followerID, func(u *models.User) { u.FollowingCount++ })
		tx.Users.Update(followingID, func(u *models.User) { u.FollowersCount++ })
		return nil
	})
	if err != nil {
		return models.Follow{}, err
	}

	s.log.WithFields(logrus.Fields{"follower_id": followerID, "following_id": followingID}).Debug("user followed")
	return follow, nil
}

// UnfollowUser removes the follow followerID -> followingID.
func (s *Service) UnfollowUser(followerID, followingID string) error {
	err := s.store.Update(repositories.Users|repositories.Follows, func(tx *repositories.Tx) error {
		edge, ok := repositories.FollowEdge(tx.Follows, followerID, followingID)
		if !ok {
			return notFound("Not following this user")
		}
		tx.Follows.Remove(edge.ID)
		tx.Users.Update(followerID, func(u *models.User) { decr(&u.FollowingCount) })
		tx.Users.Update(followingID, func(u *models.User) { decr(&u.FollowersCount) })
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"follower_id": followerID, "following_id": followingID}).Debug("user unfollowed")
	return nil
}

// GetFollowers returns the users following userID.
func (s *Service) GetFollowers(userID string) ([]models.User, error) {
	return s.resolveEdges(userID, repositories.FollowerIDs)
}

// GetFollowing returns the users userID follows.
func (s *Service) GetFollowing(userID string) ([]models.User, error) {
	return s.resolveEdges(userID, repositories.FollowingIDs)
}

func (s *Service) resolveEdges(userID string, ids func(*repositories.Table[models.Follow], string) []string) ([]models.User, error) {
	var users []models.User
	err := s.store.View(repositories.Users|repositories.Follows, func(tx *repositories.Tx) error {
		if _, ok := tx.Users.Get(userID); !ok {
			return notFound("User not found")
		}
		users = repositories.ResolveUsers(tx.Users, ids(tx.Follows, userID))
		return nil
	})
	return users, err
}
