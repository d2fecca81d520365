package domain

// Display labels shown to users and embedded in history descriptions.
// The UI is Spanish-language; the internal enum values stay English.
var (
	priorityLabels = map[TaskPriority]string{
		TaskPriorityLow:    "Baja",
		TaskPriorityMedium: "Media",
		TaskPriorityHigh:   "Alta",
	}

	statusLabels = map[TaskStatus]string{
		TaskStatusTodo:       "To-do",
		TaskStatusInProgress: "En progreso",
		TaskStatusDone:       "Completado",
	}
)

// DisplayLabel returns the Spanish display label for a priority.
// Unknown values are returned as-is.
func (p TaskPriority) DisplayLabel() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}

// DisplayLabel returns the Spanish display label for a status.
// Unknown values are returned as-is.
func (s TaskStatus) DisplayLabel() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
