package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.Task, error)
	Get(ctx context.Context, identity domain.Identity, taskID int64) (*domain.Task, error)
	Create(ctx context.Context, identity domain.Identity, input task.CreateInput) (*domain.Task, error)
	Update(ctx context.Context, identity domain.Identity, input task.UpdateInput) (*domain.Task, error)
	ChangeStatus(ctx context.Context, identity domain.Identity, input task.ChangeStatusInput) (*domain.Task, error)
	Delete(ctx context.Context, identity domain.Identity, taskID int64) error
}

// timeFormatter renders timestamps in the board's civil display format.
type timeFormatter interface {
	Format(t time.Time) string
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc   taskService
	clock timeFormatter
	log   *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, clock timeFormatter, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		svc:   svc,
		clock: clock,
		log:   logger.With("handler", "task"),
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// updateTaskRequest covers both mutation kinds behind PUT /tasks/{id}.
// Type discriminates: "edit" changes title/description/priority, "status"
// moves the task across the board.
type updateTaskRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type taskResponse struct {
	ID            int64   `json:"id"`
	OwnerID       int64   `json:"ownerId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
	PriorityLabel string  `json:"priorityLabel"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	StartedAt     *string `json:"startedAt"`
	CompletedAt   *string `json:"completedAt"`
	CreatedAt     string  `json:"createdAt"`
}

// List handles GET /tasks. Regular users see their own board, admins see
// every task.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.List(r.Context(), identity)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, h.toTaskResponse(&t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, err := h.svc.Get(r.Context(), identity, id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toTaskResponse(t))
}

// Create handles POST /tasks/create.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), identity, task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toTaskResponse(t))
}

// Update handles PUT /tasks/{id}. The request body's type field selects
// between an edit and a status change.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var t *domain.Task
	switch req.Type {
	case "edit":
		t, err = h.svc.Update(r.Context(), identity, task.UpdateInput{
			TaskID:      id,
			Title:       req.Title,
			Description: req.Description,
			Priority:    domain.TaskPriority(req.Priority),
		})
	case "status":
		t, err = h.svc.ChangeStatus(r.Context(), identity, task.ChangeStatusInput{
			TaskID: id,
			Status: domain.TaskStatus(req.Status),
		})
	default:
		writeError(w, http.StatusBadRequest, "type must be \"edit\" or \"status\"")
		return
	}
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toTaskResponse(t))
}

type transitionTaskRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// Transition handles PATCH /tasks: a status change addressed by the body's
// task id. The board UI drags cards without navigating to a task URL.
func (h *TaskHandler) Transition(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req transitionTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.ChangeStatus(r.Context(), identity, task.ChangeStatusInput{
		TaskID: req.ID,
		Status: domain.TaskStatus(req.Status),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toTaskResponse(t))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.svc.Delete(r.Context(), identity, id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskHandler) toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:            t.ID,
		OwnerID:       t.OwnerID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority.String(),
		PriorityLabel: t.Priority.DisplayLabel(),
		Status:        t.Status.String(),
		StatusLabel:   t.Status.DisplayLabel(),
		CreatedAt:     h.clock.Format(t.CreatedAt),
	}
	if t.StartedAt != nil {
		s := h.clock.Format(*t.StartedAt)
		resp.StartedAt = &s
	}
	if t.CompletedAt != nil {
		s := h.clock.Format(*t.CompletedAt)
		resp.CompletedAt = &s
	}
	return resp
}
