// Package tasks provides repositories for task persistence. Every query that
// touches a single task is scoped by its owner.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	// GetByID returns the task regardless of owner so callers can tell
	// "missing" from "not yours".
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// ListByUser returns the user's tasks, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	// Update writes every mutable column of task. It returns
	// common.ErrorNotFound unless exactly one row with task.ID and
	// task.UserID was changed.
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, userID string) error
}
