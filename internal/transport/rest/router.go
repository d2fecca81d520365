package rest

import (
	"net/http"

	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers and per-route middleware for NewRouter.
type RouterDeps struct {
	Auth    *AuthHandler
	Tasks   *TaskHandler
	History *HistoryHandler
	Users   *UserHandler
	Health  *HealthHandler

	// RegisterLimiter throttles account creation. Optional; nil disables
	// the limit (tests).
	RegisterLimiter middleware.Middleware
}

// NewRouter assembles the route table. Authentication middleware runs on
// every route via the outer chain; RequireAuth additionally rejects
// anonymous callers on protected routes.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	// Auth.
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /auth/logout", deps.Auth.Logout)
	mux.HandleFunc("POST /auth/forgot", deps.Auth.Forgot)
	mux.Handle("GET /auth/me", protected(deps.Auth.Me))
	mux.Handle("POST /auth/update-password", protected(deps.Auth.UpdatePassword))

	register := http.Handler(http.HandlerFunc(deps.Auth.Register))
	if deps.RegisterLimiter != nil {
		register = deps.RegisterLimiter(register)
	}
	mux.Handle("POST /auth/register", register)

	// Tasks.
	mux.Handle("GET /tasks", protected(deps.Tasks.List))
	mux.Handle("PATCH /tasks", protected(deps.Tasks.Transition))
	mux.Handle("POST /tasks/create", protected(deps.Tasks.Create))
	mux.Handle("GET /tasks/{id}", protected(deps.Tasks.Get))
	mux.Handle("PUT /tasks/{id}", protected(deps.Tasks.Update))
	mux.Handle("DELETE /tasks/{id}", protected(deps.Tasks.Delete))
	mux.Handle("GET /tasks/{id}/history", protected(deps.History.ListByTask))

	// History.
	mux.Handle("GET /history", protected(deps.History.ListOwn))
	mux.Handle("GET /history/{id}", protected(deps.History.ListByUser))
	mux.Handle("DELETE /history/{id}", protected(deps.History.Delete))

	// Users.
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(middleware.RequireAdmin(h))
	}
	mux.Handle("GET /users", admin(deps.Users.List))
	mux.Handle("PUT /users", admin(deps.Users.Update))
	mux.Handle("PATCH /users", admin(deps.Users.UpdateStatus))
	mux.Handle("DELETE /users", admin(deps.Users.Delete))

	// Health.
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	return mux
}
