package repositories

import "github.com/shpjp/quicker-api/models"

// TweetsByAuthors returns the tweets written by any of authors, in
// insertion order.
func TweetsByAuthors(tweets *Table[models.Tweet], authors []string) []models.Tweet {
	set := make(map[string]struct{}, len(authors))
	for _, id := range authors {
		set[id] = struct{}{}
	}
	return tweets.Find(func(t models.Tweet) bool {
		_, ok := set[t.UserID]
		return ok
	})
}

// LikeOf returns userID's like on tweetID, if any.
func LikeOf(likes *Table[models.Like], userID, tweetID string) (models.Like, bool) {
	return likes.FindOne(func(l models.Like) bool {
		return l.UserID == userID && l.TweetID == tweetID
	})
}

// LikesForTweet returns every like on tweetID, in insertion order.
func LikesForTweet(likes *Table[models.Like], tweetID string) []models.Like {
	return likes.Find(func(l models.Like) bool { return l.TweetID == tweetID })
}

// LikedSet returns the ids of every tweet userID has liked.
func LikedSet(likes *Table[models.Like], userID string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, l := range likes.Find(func(l models.Like) bool { return l.UserID == userID }) {
		out[l.TweetID] = struct{}{}
	}
	return out
}
