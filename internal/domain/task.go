package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is a card on the board. Position is the task's rank among its
// sibling tasks of the same column; it is dense (0..N-1) after any move
// but may contain gaps after deletions. TaskNumber is assigned per
// project and never reused.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	ColumnID    uuid.UUID  `json:"column_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Position    int        `json:"position"`
	TaskNumber  int        `json:"task_number"`
	CreatedByID uuid.UUID  `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	// ListByProject returns all tasks of a project ordered ascending by position.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Task, error)
	// ListByColumn returns all tasks of a column ordered ascending by position.
	ListByColumn(ctx context.Context, columnID uuid.UUID) ([]*Task, error)
	// MaxPosition returns the highest position among a column's tasks, or -1
	// when the column is empty.
	MaxPosition(ctx context.Context, columnID uuid.UUID) (int, error)
	// MaxTaskNumber returns the highest task number used in a project, or 0
	// when the project has no tasks.
	MaxTaskNumber(ctx context.Context, projectID uuid.UUID) (int, error)
	Update(ctx context.Context, t *Task) error
	// SavePositions persists the ColumnID and Position fields of every given task.
	SavePositions(ctx context.Context, tasks []*Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
