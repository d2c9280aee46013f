package dto

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Bio         *string `json:"bio"`
}

// CreateTweetRequest is the body of POST /api/tweets.
type CreateTweetRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// LikeRequest is the body of POST and DELETE /api/likes.
type LikeRequest struct {
	UserID  string `json:"user_id"`
	TweetID string `json:"tweet_id"`
}

// FollowRequest is the body of POST and DELETE /api/follows.
type FollowRequest struct {
	FollowerID  string `json:"follower_id"`
	FollowingID string `json:"following_id"`
}
