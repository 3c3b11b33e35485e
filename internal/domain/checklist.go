package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChecklistItem is a position-ordered line item inside a task. New items
// append at the end of the task's checklist.
type ChecklistItem struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	Text        string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChecklistRepository interface {
	Create(ctx context.Context, item *ChecklistItem) error
	GetByID(ctx context.Context, taskID, id uuid.UUID) (*ChecklistItem, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*ChecklistItem, error)
	// MaxPosition returns the highest position among a task's checklist
	// items, or -1 when the task has none.
	MaxPosition(ctx context.Context, taskID uuid.UUID) (int, error)
	Update(ctx context.Context, item *ChecklistItem) error
	Delete(ctx context.Context, taskID, id uuid.UUID) error
}
