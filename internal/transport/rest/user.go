package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.User, error)
	UpdateData(ctx context.Context, identity domain.Identity, input user.UpdateDataInput) (*domain.User, error)
	UpdateStatus(ctx context.Context, identity domain.Identity, userID int64, active bool) error
	Delete(ctx context.Context, identity domain.Identity, userID int64) error
}

// UserHandler serves the admin account-management endpoints. Authorization
// lives in the service; every operation fails with ErrForbidden for
// non-admin callers.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateUserRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type updateUserStatusRequest struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

type deleteUserRequest struct {
	ID int64 `json:"id"`
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.svc.List(r.Context(), identity)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(&u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /users: name, email, and role of the given account.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateData(r.Context(), identity, user.UpdateDataInput{
		UserID: req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   domain.UserRole(req.Role),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// UpdateStatus handles PATCH /users: activates or deactivates an account.
func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req updateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), identity, req.ID, req.Active); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /users.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Delete(r.Context(), identity, req.ID); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
