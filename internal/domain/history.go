package domain

import "time"

// HistoryAction is the human-readable label attached to a history entry.
type HistoryAction string

const (
	HistoryActionCreated       HistoryAction = "Tarea creada"
	HistoryActionEdited        HistoryAction = "Tarea editada"
	HistoryActionStatusChanged HistoryAction = "Estado cambiado"
	HistoryActionDeleted       HistoryAction = "Tarea eliminada"
)

func (a HistoryAction) String() string { return string(a) }

// HistoryEntry is one immutable audit record describing a single task
// mutation. Entries are attributed to the acting user, which is not
// necessarily the task owner (admins act on other users' tasks).
// History entries have no update path.
type HistoryEntry struct {
	ID          int64
	TaskID      int64
	ActorID     int64
	OldStatus   TaskStatus
	NewStatus   TaskStatus
	Action      HistoryAction
	Description string
	CreatedAt   time.Time
}
