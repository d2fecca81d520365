package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	ListOwn(ctx context.Context, identity domain.Identity) ([]domain.HistoryEntry, error)
	ListByUser(ctx context.Context, identity domain.Identity, userID int64) ([]domain.HistoryEntry, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error)
	DeleteEntry(ctx context.Context, identity domain.Identity, entryID int64) error
	DeleteAllForUser(ctx context.Context, identity domain.Identity, userID int64) (int64, error)
}

// HistoryHandler serves the audit trail REST endpoints.
type HistoryHandler struct {
	svc   historyService
	clock timeFormatter
	log   *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, clock timeFormatter, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		svc:   svc,
		clock: clock,
		log:   logger.With("handler", "history"),
	}
}

type historyEntryResponse struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"taskId"`
	ActorID     int64  `json:"actorId"`
	OldStatus   string `json:"oldStatus,omitempty"`
	NewStatus   string `json:"newStatus,omitempty"`
	Action      string `json:"action"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// ListOwn handles GET /history: the caller's own trail, newest first.
func (h *HistoryHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListOwn(r.Context(), identity)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEntryResponses(entries))
}

// ListByUser handles GET /history/{id}: the trail of user {id}. Callers may
// read their own trail; admins may read anyone's.
func (h *HistoryHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entries, err := h.svc.ListByUser(r.Context(), identity, userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEntryResponses(entries))
}

// ListByTask handles GET /tasks/{id}/history: every entry describing one
// task, regardless of actor.
func (h *HistoryHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(w, r); !ok {
		return
	}

	taskID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	entries, err := h.svc.ListByTask(r.Context(), taskID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEntryResponses(entries))
}

// Delete handles DELETE /history/{id}. With ?entry=N it removes the single
// record N; without it the whole trail of user {id} is purged.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if raw := r.URL.Query().Get("entry"); raw != "" {
		entryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entry id")
			return
		}
		if err := h.svc.DeleteEntry(r.Context(), identity, entryID); err != nil {
			handleError(r.Context(), h.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": 1})
		return
	}

	userID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	deleted, err := h.svc.DeleteAllForUser(r.Context(), identity, userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

func (h *HistoryHandler) toEntryResponses(entries []domain.HistoryEntry) []historyEntryResponse {
	resp := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyEntryResponse{
			ID:          e.ID,
			TaskID:      e.TaskID,
			ActorID:     e.ActorID,
			OldStatus:   e.OldStatus.String(),
			NewStatus:   e.NewStatus.String(),
			Action:      e.Action.String(),
			Description: e.Description,
			CreatedAt:   h.clock.Format(e.CreatedAt),
		})
	}
	return resp
}
