package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shpjp/quicker-api/config"
	"github.com/shpjp/quicker-api/dto"
	"github.com/shpjp/quicker-api/handlers"
	"github.com/shpjp/quicker-api/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, tweetHandler *handlers.TweetHandler, systemHandler *handlers.SystemHandler, metrics config.MetricsConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(logRequests, monitoring.InstrumentHandler)
	router.NotFoundHandler = envelopeError(http.StatusNotFound, "Route not found")
	router.MethodNotAllowedHandler = envelopeError(http.StatusMethodNotAllowed, "Method not allowed")

	// System routes
	router.HandleFunc("/api/health", systemHandler.Health).Methods("GET")

	// User routes
	router.HandleFunc("/api/users", userHandler.ListUsers).Methods("GET")
	router.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/api/users/by-username/{username}", userHandler.GetUserByUsername).Methods("GET")
	router.HandleFunc("/api/users/{id}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/api/users/{id}/tweets", tweetHandler.UserTweets).Methods("GET")
	router.HandleFunc("/api/users/{id}/followers", userHandler.GetFollowers).Methods("GET")
	router.HandleFunc("/api/users/{id}/following", userHandler.GetFollowing).Methods("GET")
	router.HandleFunc("/api/users/{id}/timeline", tweetHandler.Timeline).Methods("GET")

	// Tweet routes
	router.HandleFunc("/api/tweets", tweetHandler.ListTweets).Methods("GET")
	router.HandleFunc("/api/tweets", tweetHandler.CreateTweet).Methods("POST")
	router.HandleFunc("/api/tweets/{id}", tweetHandler.GetTweet).Methods("GET")
	router.HandleFunc("/api/tweets/{id}", tweetHandler.DeleteTweet).Methods("DELETE")
	router.HandleFunc("/api/tweets/{id}/likes", tweetHandler.TweetLikes).Methods("GET")

	// Like and follow routes
	router.HandleFunc("/api/likes", tweetHandler.Like).Methods("POST")
	router.HandleFunc("/api/likes", tweetHandler.Unlike).Methods("DELETE")
	router.HandleFunc("/api/follows", userHandler.Follow).Methods("POST")
	router.HandleFunc("/api/follows", userHandler.Unfollow).Methods("DELETE")

	if metrics.Enabled {
		router.Handle(metrics.Path, promhttp.Handler()).Methods("GET")
	}

	return router
}

func envelopeError(code int, msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(dto.Fail(msg)) //nolint:errcheck
	})
}
