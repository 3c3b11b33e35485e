package domain

import (
	"context"

	"github.com/google/uuid"
)

type TaskTag struct {
	ID     uuid.UUID `json:"id"`
	TaskID uuid.UUID `json:"task_id"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
}

type TagRepository interface {
	Create(ctx context.Context, t *TaskTag) error
	GetByID(ctx context.Context, taskID, id uuid.UUID) (*TaskTag, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*TaskTag, error)
	Delete(ctx context.Context, taskID, id uuid.UUID) error
}
