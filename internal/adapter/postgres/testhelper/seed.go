package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the "user" role.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an active user with the "admin" role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleAdmin)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		Role:         role,
		Active:       true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Email, user.Name, user.PasswordHash, user.Role.String(), user.Active,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTask creates a task owned by the given user. Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, ownerID int64) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	task := domain.Task{
		OwnerID:     ownerID,
		Title:       "Test Task " + suffix,
		Description: "Seeded for testing",
		Priority:    domain.TaskPriorityMedium,
		Status:      domain.TaskStatusTodo,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO tasks (owner_id, title, description, priority, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		task.OwnerID, task.Title, task.Description, task.Priority.String(), task.Status.String(),
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert task: %v", err)
	}

	return task
}

// SeedHistoryEntry creates a history entry recorded by the given actor.
func SeedHistoryEntry(t *testing.T, pool *pgxpool.Pool, taskID, actorID int64) domain.HistoryEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.HistoryEntry{
		TaskID:      taskID,
		ActorID:     actorID,
		OldStatus:   domain.TaskStatusTodo,
		NewStatus:   domain.TaskStatusInProgress,
		Action:      domain.HistoryActionStatusChanged,
		Description: "Tarea: Test Task con prioridad: Media",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO task_history (task_id, actor_id, old_status, new_status, action, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		entry.TaskID, entry.ActorID, entry.OldStatus.String(), entry.NewStatus.String(),
		string(entry.Action), entry.Description, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedHistoryEntry insert: %v", err)
	}

	return entry
}
