package task

import (
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const maxTitleLength = 255

// CreateInput holds parameters for task creation.
type CreateInput struct {
	Title       string
	Description string
	Priority    domain.TaskPriority
	Status      domain.TaskStatus // optional, defaults to todo
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Priority == "" {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "required"})
	} else if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium or high"})
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be todo, in_progress or done"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for editing a task's details.
type UpdateInput struct {
	TaskID      int64
	Title       string
	Description string
	Priority    domain.TaskPriority
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Priority == "" {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "required"})
	} else if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium or high"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds parameters for a status transition.
type ChangeStatusInput struct {
	TaskID int64
	Status domain.TaskStatus
}

// Validate validates the change-status input.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be todo, in_progress or done"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
