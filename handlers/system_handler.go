package handlers

import "net/http"

// SystemHandler handles system-related endpoints
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health is a liveness probe; it never touches the store.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, "Twitter API is running", "")
}
