package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TaskComment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentRepository interface {
	Create(ctx context.Context, c *TaskComment) error
	// GetByID looks a comment up scoped to its task; a comment belonging to
	// a different task is not found.
	GetByID(ctx context.Context, taskID, id uuid.UUID) (*TaskComment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*TaskComment, error)
	Delete(ctx context.Context, taskID, id uuid.UUID) error
}
