package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shpjp/quicker-api/dto"
	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/monitoring"
	"github.com/shpjp/quicker-api/services"
)

// TweetHandler serves tweets, likes and timelines.
type TweetHandler struct {
	Service *services.Service
}

func NewTweetHandler(svc *services.Service) *TweetHandler {
	return &TweetHandler{Service: svc}
}

func tweetID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	id := mux.Vars(r)["id"]
	if !models.ValidID(id) {
		fail(w, r, op, services.ErrNotFound.WithMessage("Tweet not found"))
		return "", false
	}
	return id, true
}

// ListTweets handles GET /api/tweets.
func (h *TweetHandler) ListTweets(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, h.Service.ListTweets(), "")
}

// GetTweet handles GET /api/tweets/{id}.
func (h *TweetHandler) GetTweet(w http.ResponseWriter, r *http.Request) {
	id, valid := tweetID(w, r, "get_tweet")
	if !valid {
		return
	}
	v, err := h.Service.GetTweetView(id)
	if err != nil {
		fail(w, r, "get_tweet", err)
		return
	}
	ok(w, http.StatusOK, dto.FromTweetView(v), "")
}

// CreateTweet handles POST /api/tweets.
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTweetRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "create_tweet", err)
		return
	}
	t, err := h.Service.CreateTweet(req.UserID, req.Content)
	if err != nil {
		fail(w, r, "create_tweet", err)
		return
	}
	monitoring.TweetsPosted.Inc()
	// Users are never removed, so the author lookup cannot miss.
	author, err := h.Service.GetUser(t.UserID)
	if err != nil {
		fail(w, r, "create_tweet", err)
		return
	}
	ok(w, http.StatusCreated, dto.FromTweetView(services.TweetView{Tweet: t, Author: author}), "Tweet created successfully")
}

// DeleteTweet handles DELETE /api/tweets/{id}.
func (h *TweetHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, valid := tweetID(w, r, "delete_tweet")
	if !valid {
		return
	}
	if _, err := h.Service.DeleteTweet(id); err != nil {
		fail(w, r, "delete_tweet", err)
		return
	}
	monitoring.TweetsDeleted.Inc()
	ok(w, http.StatusOK, nil, "Tweet deleted successfully")
}

// UserTweets handles GET /api/users/{id}/tweets.
func (h *TweetHandler) UserTweets(w http.ResponseWriter, r *http.Request) {
	id, valid := userID(w, r, "user_tweets")
	if !valid {
		return
	}
	views, err := h.Service.GetUserTweets(id)
	if err != nil {
		fail(w, r, "user_tweets", err)
		return
	}
	ok(w, http.StatusOK, dto.FromTweetViews(views), "")
}

// Timeline handles GET /api/users/{id}/timeline.
func (h *TweetHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, valid := userID(w, r, "get_timeline")
	if !valid {
		return
	}
	views, err := h.Service.GetTimeline(id)
	if err != nil {
		fail(w, r, "get_timeline", err)
		return
	}
	ok(w, http.StatusOK, dto.FromTweetViews(views), "")
}

// Like handles POST /api/likes.
func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req dto.LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "like_tweet", err)
		return
	}
	like, err := h.Service.LikeTweet(req.UserID, req.TweetID)
	if err != nil {
		fail(w, r, "like_tweet", err)
		return
	}
	monitoring.LikeActions.WithLabelValues("like").Inc()
	ok(w, http.StatusCreated, like, "Tweet liked successfully")
}

// Unlike handles DELETE /api/likes.
func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	var req dto.LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "unlike_tweet", err)
		return
	}
	if err := h.Service.UnlikeTweet(req.UserID, req.TweetID); err != nil {
		fail(w, r, "unlike_tweet", err)
		return
	}
	monitoring.LikeActions.WithLabelValues("unlike").Inc()
	ok(w, http.StatusOK, nil, "Tweet unliked successfully")
}

// TweetLikes handles GET /api/tweets/{id}/likes.
func (h *TweetHandler) TweetLikes(w http.ResponseWriter, r *http.Request) {
	id, valid := tweetID(w, r, "get_tweet_likes")
	if !valid {
		return
	}
	likes, err := h.Service.GetTweetLikes(id)
	if err != nil {
		fail(w, r, "get_tweet_likes", err)
		return
	}
	ok(w, http.StatusOK, likes, "")
}
