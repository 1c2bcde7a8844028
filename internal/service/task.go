package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cobaltlane/taskhub/internal/domain"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/idx"
)

var ErrTitleRequired = errors.New("title_required")

// TaskService implements task CRUD for an already-authenticated identity.
// Every read or write of an existing task passes the ownership guard
// first; a denial is indistinguishable from a missing task.
type TaskService struct {
	Store store.Store
}

// Create inserts a new task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrTitleRequired
	}

	now := time.Now().UTC()
	t := domain.Task{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// List returns the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByOwner(ctx, ownerID)
}

// Get returns a single task after the ownership check.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.getOwned(ctx, ownerID, taskID)
}

// Update applies a partial patch to an owned task. Nil patch fields are
// left unchanged; an explicit empty title is rejected.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	t, err := s.getOwned(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Task{}, ErrTitleRequired
		}
		t.Title = title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}

	if err := s.Store.Tasks().UpdateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}

	// Re-read so the caller sees the store's updated_at.
	return s.Store.Tasks().GetTaskByID(ctx, taskID)
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.getOwned(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.Store.Tasks().DeleteTask(ctx, taskID)
}

// getOwned fetches a task and applies the ownership guard, mapping a
// denial onto store.ErrNotFound.
func (s *TaskService) getOwned(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !authorizeOwnership(ownerID, t) {
		return domain.Task{}, store.ErrNotFound
	}
	return t, nil
}
