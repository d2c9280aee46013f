package repositories

import "github.com/shpjp/quicker-api/models"

// UserByUsername looks a user up by exact username.
func UserByUsername(users *Table[models.User], username string) (models.User, bool) {
	return users.FindOne(func(u models.User) bool { return u.Username == username })
}

// UserExists reports whether the username or the email is already taken.
// Both comparisons are exact and case-sensitive.
func UserExists(users *Table[models.User], username, email string) (usernameTaken, emailTaken bool) {
	for _, u := range users.rows {
		if u.Username == username {
			usernameTaken = true
		}
		if u.Email == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken
}

// FollowEdge returns the follow follower -> following, if any.
func FollowEdge(follows *Table[models.Follow], followerID, followingID string) (models.Follow, bool) {
	return follows.FindOne(func(f models.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
}

// FollowingIDs returns the ids userID follows, in follow order.
func FollowingIDs(follows *Table[models.Follow], userID string) []string {
	var ids []string
	for _, f := range follows.Find(func(f models.Follow) bool { return f.FollowerID == userID }) {
		ids = append(ids, f.FollowingID)
	}
	return ids
}

// FollowerIDs returns the ids following userID, in follow order.
func FollowerIDs(follows *Table[models.Follow], userID string) []string {
	var ids []string
	for _, f := range follows.Find(func(f models.Follow) bool { return f.FollowingID == userID }) {
		ids = append(ids, f.FollowerID)
	}
	return ids
}

// ResolveUsers maps ids to user records, skipping ids that no longer resolve.
func ResolveUsers(users *Table[models.User], ids []string) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := users.Get(id); ok {
			out = append(out, u)
		}
	}
	return out
}
