// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const table = "tasks"

var columns = []string{"id", "owner_id", "title", "description", "priority", "status", "started_at", "completed_at", "created_at"}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// taskRow mirrors the tasks table for scanning.
type taskRow struct {
	ID          int64      `db:"id"`
	OwnerID     int64      `db:"owner_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r taskRow) toDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.TaskPriority(r.Priority),
		Status:      domain.TaskStatus(r.Status),
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("task %d build query: %w", id, err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// ListByOwner returns all tasks owned by the given user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	return r.list(ctx, query)
}

// ListAll returns every task, newest first. Admin read path.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Task, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC")
	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Task, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list tasks build query: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", 0)
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = *row.toDomain()
	}
	return tasks, nil
}

// Create inserts a new task and returns the persisted domain.Task.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query := postgres.Builder.Insert(table).
		Columns("owner_id", "title", "description", "priority", "status", "started_at", "completed_at").
		Values(t.OwnerID, t.Title, t.Description, t.Priority.String(), t.Status.String(), t.StartedAt, t.CompletedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("create task build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", 0)
	}
	return row.toDomain(), nil
}

// UpdateDetails modifies title, description, and priority for the given task.
func (r *Repo) UpdateDetails(ctx context.Context, id int64, title, description string, priority domain.TaskPriority) (*domain.Task, error) {
	query := postgres.Builder.Update(table).
		Set("title", title).
		Set("description", description).
		Set("priority", priority.String()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update task build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// UpdateStatus transitions a task and stamps the lifecycle timestamps.
// Passing nil clears a timestamp; the service layer owns the stamping rules.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, startedAt, completedAt *time.Time) (*domain.Task, error) {
	query := postgres.Builder.Update(table).
		Set("status", status.String()).
		Set("started_at", startedAt).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update task status build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// Delete removes a task.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("delete task build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
