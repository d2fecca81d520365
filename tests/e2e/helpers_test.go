//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/history"
	taskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/user"
	jwtauth "github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/clock"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	authservice "github.com/heartmarshall/taskboard-backend/internal/service/auth"
	historyservice "github.com/heartmarshall/taskboard-backend/internal/service/history"
	taskservice "github.com/heartmarshall/taskboard-backend/internal/service/task"
	userservice "github.com/heartmarshall/taskboard-backend/internal/service/user"
	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskboard-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txManager := postgres.NewTxManager(pool)
	boardClock := clock.MustNew("America/La_Paz")

	// 3. Repositories.
	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	history := historyrepo.New(pool)

	// 4. Credential manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   2 * time.Hour,
		PasswordHashCost: 4, // minimum cost for fast tests
		Timezone:         "America/La_Paz",
	}
	jwtManager := jwtauth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 5. Services. No mailer: password recovery is not exercised here.
	authSvc := authservice.NewService(logger, users, jwtManager, nil, authCfg)
	taskSvc := taskservice.NewService(logger, tasks, history, txManager, boardClock)
	historySvc := historyservice.NewService(logger, history)
	userSvc := userservice.NewService(logger, users)

	// 6. Transport, wired the same way the application assembles it.
	rateCfg := config.RateLimitConfig{Window: 60 * time.Second, MaxRequests: 3}
	registerLimiter := middleware.NewRateLimiter(rateCfg, middleware.NewMemoryCounterStore(rateCfg.Window))

	router := rest.NewRouter(rest.RouterDeps{
		Auth:            rest.NewAuthHandler(authSvc, logger, authCfg.AccessTokenTTL, false),
		Tasks:           rest.NewTaskHandler(taskSvc, boardClock, logger),
		History:         rest.NewHistoryHandler(historySvc, boardClock, logger),
		Users:           rest.NewUserHandler(userSvc, logger),
		Health:          rest.NewHealthHandler(pool, "test-version"),
		RegisterLimiter: registerLimiter.Limit(),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authSvc),
	)(router)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// do sends a JSON request and returns the raw response. Token, when not
// empty, rides in the Authorization header; cookies are attached as given.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, payload any, token string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err, "marshal request body")
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	return resp
}

// decodeObject decodes a JSON object response body and closes it.
func decodeObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out), "decode response object")
	return out
}

// decodeList decodes a JSON array response body and closes it.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out), "decode response list")
	return out
}

// ---------------------------------------------------------------------------
// registerAccount creates a fresh account through the public API and returns
// its credentials plus the issued token.
// ---------------------------------------------------------------------------

type account struct {
	ID       int64
	Email    string
	Password string
	Token    string
}

func registerAccount(t *testing.T, ts *testServer) account {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	password := "password123"

	resp := ts.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E User",
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s", email)

	body := decodeObject(t, resp)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token, "expected an access token")
	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user, "expected a user object")
	id, _ := user["id"].(float64)

	return account{
		ID:       int64(id),
		Email:    email,
		Password: password,
		Token:    token,
	}
}
