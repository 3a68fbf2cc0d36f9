package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskService implements the task operations available to an authenticated
// user. Instance operations look the task up first, then apply
// AuthorizeOwner, and only then touch it.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

// WithClock replaces the time source used for CreatedAt and UpdatedAt.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// Create stores a new task owned by userID. Fields left nil in in take
// their defaults: empty description, pending status, no due date.
func (s *TaskService) Create(ctx context.Context, userID string, in models.TaskPatch) (*models.Task, error) {
	now := s.now().UTC()
	task := &models.Task{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(task)

	if err := s.repomanager.Tasks(s.db).Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// List returns the tasks owned by userID, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	list, err := s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return list, nil
}

// Get returns the task id when userID owns it.
func (s *TaskService) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	return s.load(ctx, userID, id)
}

// Update applies patch to the task id. The owner and CreatedAt never change.
func (s *TaskService) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(task)
	task.UpdatedAt = s.now().UTC()

	if err := s.repomanager.Tasks(s.db).Update(ctx, task); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return task, nil
}

// Delete removes the task id when userID owns it.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	task, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repomanager.Tasks(s.db).Delete(ctx, task.ID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}

// load resolves id to a task the caller may act on. A malformed id yields
// common.ErrInvalidID, a missing task common.ErrorNotFound and a task owned
// by someone else common.ErrForbidden.
func (s *TaskService) load(ctx context.Context, userID, id string) (*models.Task, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrInvalidID
	}

	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}

	if err := AuthorizeOwner(userID, task); err != nil {
		return nil, err
	}
	return task, nil
}
