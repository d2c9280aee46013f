package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shpjp/quicker-api/dto"
	"github.com/shpjp/quicker-api/models"
	"github.com/shpjp/quicker-api/monitoring"
	"github.com/shpjp/quicker-api/services"
)

// UserHandler serves users and the follow graph.
type UserHandler struct {
	Service *services.Service
}

func NewUserHandler(svc *services.Service) *UserHandler {
	return &UserHandler{Service: svc}
}

// userID extracts {id} from the path. Ids that are not UUIDs cannot exist,
// so they are answered with 404 directly.
func userID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	id := mux.Vars(r)["id"]
	if !models.ValidID(id) {
		fail(w, r, op, services.ErrNotFound.WithMessage("User not found"))
		return "", false
	}
	return id, true
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, h.Service.ListUsers(), "")
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, valid := userID(w, r, "get_user")
	if !valid {
		return
	}
	u, err := h.Service.GetUser(id)
	if err != nil {
		fail(w, r, "get_user", err)
		return
	}
	ok(w, http.StatusOK, u, "")
}

// GetUserByUsername handles GET /api/users/by-username/{username}.
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.Service.GetUserByUsername(mux.Vars(r)["username"])
	if err != nil {
		fail(w, r, "get_user_by_username", err)
		return
	}
	ok(w, http.StatusOK, u, "")
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "create_user", err)
		return
	}

	u, err := h.Service.CreateUser(services.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		fail(w, r, "create_user", err)
		return
	}
	monitoring.UsersRegistered.Inc()
	ok(w, http.StatusCreated, u, "User created successfully")
}

// GetFollowers handles GET /api/users/{id}/followers.
func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	id, valid := userID(w, r, "get_followers")
	if !valid {
		return
	}
	users, err := h.Service.GetFollowers(id)
	if err != nil {
		fail(w, r, "get_followers", err)
		return
	}
	ok(w, http.StatusOK, users, "")
}

// GetFollowing handles GET /api/users/{id}/following.
func (h *UserHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	id, valid := userID(w, r, "get_following")
	if !valid {
		return
	}
	users, err := h.Service.GetFollowing(id)
	if err != nil {
		fail(w, r, "get_following", err)
		return
	}
	ok(w, http.StatusOK, users, "")
}

// Follow handles POST /api/follows.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req dto.FollowRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "follow_user", err)
		return
	}
	f, err := h.Service.FollowUser(req.FollowerID, req.FollowingID)
	if err != nil {
		fail(w, r, "follow_user", err)
		return
	}
	monitoring.FollowActions.WithLabelValues("follow").Inc()
	ok(w, http.StatusCreated, f, "User followed successfully")
}

// Unfollow handles DELETE /api/follows.
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	var req dto.FollowRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "unfollow_user", err)
		return
	}
	if err := h.Service.UnfollowUser(req.FollowerID, req.FollowingID); err != nil {
		fail(w, r, "unfollow_user", err)
		return
	}
	monitoring.FollowActions.WithLabelValues("unfollow").Inc()
	ok(w, http.StatusOK, nil, "User unfollowed successfully")
}
