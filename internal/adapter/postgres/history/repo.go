// Package history implements the append-only task history repository.
//
// Entries are never updated: a mutation appends exactly one row, and the
// only destructive operations are retention deletes.
package history

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

const table = "task_history"

var columns = []string{"id", "task_id", "actor_id", "old_status", "new_status", "action", "description", "created_at"}

// Repo provides task history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// historyRow mirrors the task_history table for scanning.
type historyRow struct {
	ID          int64     `db:"id"`
	TaskID      int64     `db:"task_id"`
	ActorID     int64     `db:"actor_id"`
	OldStatus   string    `db:"old_status"`
	NewStatus   string    `db:"new_status"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r historyRow) toDomain() *domain.HistoryEntry {
	return &domain.HistoryEntry{
		ID:          r.ID,
		TaskID:      r.TaskID,
		ActorID:     r.ActorID,
		OldStatus:   domain.TaskStatus(r.OldStatus),
		NewStatus:   domain.TaskStatus(r.NewStatus),
		Action:      domain.HistoryAction(r.Action),
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Create appends a new history entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	query := postgres.Builder.Insert(table).
		Columns("task_id", "actor_id", "old_status", "new_status", "action", "description").
		Values(e.TaskID, e.ActorID, e.OldStatus.String(), e.NewStatus.String(), string(e.Action), e.Description).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("create history entry build query: %w", err)
	}

	var row historyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "history entry", 0)
	}
	return row.toDomain(), nil
}

// GetByID returns a single history entry.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.HistoryEntry, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("history entry %d build query: %w", id, err)
	}

	var row historyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "history entry", id)
	}
	return row.toDomain(), nil
}

// ListByActor returns the entries recorded by the given user, newest first.
func (r *Repo) ListByActor(ctx context.Context, actorID int64) ([]domain.HistoryEntry, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, query)
}

// ListByTask returns the entries describing the given task, newest first.
// The task itself may already be deleted.
func (r *Repo) ListByTask(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.HistoryEntry, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list history build query: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "history entry", 0)
	}

	entries := make([]domain.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = *row.toDomain()
	}
	return entries, nil
}

// DeleteOne removes a single history entry.
func (r *Repo) DeleteOne(ctx context.Context, id int64) error {
	query := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("delete history entry build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "history entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("history entry %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAllByActor removes every entry recorded by the given user.
// Deleting zero rows is not an error: the actor may simply have no history.
func (r *Repo) DeleteAllByActor(ctx context.Context, actorID int64) (int64, error) {
	query := postgres.Builder.Delete(table).Where(squirrel.Eq{"actor_id": actorID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("delete actor history build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "history entry", 0)
	}
	return tag.RowsAffected(), nil
}
